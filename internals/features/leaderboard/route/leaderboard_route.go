package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lbCtl "tabunganku_backend/internals/features/leaderboard/controller"
)

func LeaderboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lbCtl.NewLeaderboardController(db)

	grp := r.Group("/leaderboards")
	grp.Get("/students", ctl.Students)
	grp.Get("/students/class/:classId", ctl.StudentsByClass)
	grp.Get("/students/teacher/:teacherId", ctl.StudentsByTeacher)
	grp.Get("/classes", ctl.Classes)
}
