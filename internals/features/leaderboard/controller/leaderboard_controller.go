package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lbService "tabunganku_backend/internals/features/leaderboard/service"
	helper "tabunganku_backend/internals/helpers"
)

type LeaderboardController struct {
	DB      *gorm.DB
	Service *lbService.LeaderboardService
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{
		DB:      db,
		Service: lbService.NewLeaderboardService(),
	}
}

// GET /leaderboards/students?limit=
func (h *LeaderboardController) Students(c *fiber.Ctx) error {
	limit := helper.ParseLimit(c, 100)
	rows, err := h.Service.StudentLeaderboard(h.DB, lbService.StudentScope{}, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun peringkat")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}

// GET /leaderboards/students/class/:classId?limit=
// Kelas yang tidak dikenal menghasilkan peringkat kosong, bukan 404.
func (h *LeaderboardController) StudentsByClass(c *fiber.Ctx) error {
	classID, err := helper.ParseUintParam(c, "classId")
	if err != nil {
		return err
	}
	limit := helper.ParseLimit(c, 100)
	rows, err := h.Service.StudentLeaderboard(h.DB, lbService.StudentScope{ClassID: &classID}, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun peringkat")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}

// GET /leaderboards/students/teacher/:teacherId?limit=
func (h *LeaderboardController) StudentsByTeacher(c *fiber.Ctx) error {
	teacherID, err := helper.ParseUintParam(c, "teacherId")
	if err != nil {
		return err
	}
	limit := helper.ParseLimit(c, 100)
	rows, err := h.Service.StudentLeaderboard(h.DB, lbService.StudentScope{TeacherID: &teacherID}, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun peringkat")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}

// GET /leaderboards/classes?limit=
func (h *LeaderboardController) Classes(c *fiber.Ctx) error {
	limit := helper.ParseLimit(c, 100)
	rows, err := h.Service.ClassLeaderboard(h.DB, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun peringkat")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}
