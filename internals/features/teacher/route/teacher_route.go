package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherCtl "tabunganku_backend/internals/features/teacher/controller"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := teacherCtl.NewTeacherController(db)

	grp := r.Group("/teachers")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.Detail)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
