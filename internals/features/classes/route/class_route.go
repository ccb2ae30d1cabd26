package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtl "tabunganku_backend/internals/features/classes/controller"
)

func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classCtl.NewClassController(db)

	grp := r.Group("/classes")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.Detail)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
