package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "tabunganku_backend/internals/features/student/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	grp := r.Group("/students")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.Detail)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
