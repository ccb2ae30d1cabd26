package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aspirationRoute "tabunganku_backend/internals/features/aspiration/route"
	classRoute "tabunganku_backend/internals/features/classes/route"
	leaderboardRoute "tabunganku_backend/internals/features/leaderboard/route"
	schoolRoute "tabunganku_backend/internals/features/school/route"
	studentRoute "tabunganku_backend/internals/features/student/route"
	teacherRoute "tabunganku_backend/internals/features/teacher/route"
	transactionRoute "tabunganku_backend/internals/features/transaction/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up SchoolRoutes...")
	schoolRoute.SchoolRoutes(api, db)

	log.Println("[INFO] Setting up TeacherRoutes...")
	teacherRoute.TeacherRoutes(api, db)

	log.Println("[INFO] Setting up ClassRoutes...")
	classRoute.ClassRoutes(api, db)

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.StudentRoutes(api, db)

	log.Println("[INFO] Setting up TransactionRoutes...")
	transactionRoute.TransactionRoutes(api, db)

	log.Println("[INFO] Setting up StudentAspirationRoutes...")
	aspirationRoute.StudentAspirationRoutes(api, db)

	log.Println("[INFO] Setting up LeaderboardRoutes...")
	leaderboardRoute.LeaderboardRoutes(api, db)
}
