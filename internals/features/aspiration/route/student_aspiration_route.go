package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aCtl "tabunganku_backend/internals/features/aspiration/controller"
)

func StudentAspirationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := aCtl.NewStudentAspirationController(db)

	grp := r.Group("/aspirations")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/student/:id", ctl.ByStudent)
	grp.Get("/:id", ctl.Detail)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
