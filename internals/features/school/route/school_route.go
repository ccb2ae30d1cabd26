package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolCtl "tabunganku_backend/internals/features/school/controller"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schoolCtl.NewSchoolController(db)

	grp := r.Group("/schools")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/current", ctl.Current)
	grp.Get("/:id", ctl.Detail)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
