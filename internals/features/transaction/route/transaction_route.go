package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trxCtl "tabunganku_backend/internals/features/transaction/controller"
)

func TransactionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := trxCtl.NewTransactionController(db)

	grp := r.Group("/transactions")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	// rute statis duluan agar tidak tertangkap /:id
	grp.Get("/student/:id", ctl.ByStudent)
	grp.Get("/class/:id", ctl.ByClass)
	grp.Get("/teacher/:id", ctl.ByTeacher)
	grp.Get("/:id", ctl.Detail)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)

	// saldo berjalan per siswa
	r.Get("/students/:id/balance", ctl.StudentBalance)

	rpt := r.Group("/reports")
	rpt.Get("/transactions", ctl.Report)
	rpt.Get("/summary", ctl.Summary)
}
