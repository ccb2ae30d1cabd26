package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aDTO "tabunganku_backend/internals/features/aspiration/dto"
	aModel "tabunganku_backend/internals/features/aspiration/model"
	sModel "tabunganku_backend/internals/features/student/model"
	trxService "tabunganku_backend/internals/features/transaction/service"
	helper "tabunganku_backend/internals/helpers"
)

type StudentAspirationController struct {
	DB      *gorm.DB
	Reports *trxService.TransactionReportService
}

func NewStudentAspirationController(db *gorm.DB) *StudentAspirationController {
	return &StudentAspirationController{
		DB:      db,
		Reports: trxService.NewTransactionReportService(),
	}
}

var validate = validator.New()

// POST /aspirations
func (h *StudentAspirationController) Create(c *fiber.Ctx) error {
	var req aDTO.CreateStudentAspirationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := h.ensureStudentExists(req.StudentAspirationStudentID); err != nil {
		return err
	}

	m, err := req.ToModel()
	if err != nil {
		return err
	}
	if err := h.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cita-cita tabungan tersimpan", m)
}

// GET /aspirations
func (h *StudentAspirationController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&aModel.StudentAspirationModel{})
	if v := c.Query("student_id"); v != "" {
		q = q.Where("student_aspiration_student_id = ?", v)
	}

	var rows []aModel.StudentAspirationModel
	if err := q.Order("student_aspiration_id ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}

// GET /aspirations/:id
func (h *StudentAspirationController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Data berhasil diambil", m)
}

// GET /aspirations/student/:id
// Daftar cita-cita seorang siswa plus persentase progres dari saldo berjalan.
func (h *StudentAspirationController) ByStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.ensureStudentExists(id); err != nil {
		return err
	}

	balance, err := h.Reports.StudentBalance(h.DB, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung saldo")
	}

	var rows []aModel.StudentAspirationModel
	if err := h.DB.
		Where("student_aspiration_student_id = ?", id).
		Order("student_aspiration_id ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]*aDTO.AspirationProgressResponse, 0, len(rows))
	for i := range rows {
		out = append(out, aDTO.NewAspirationProgressResponse(&rows[i], balance))
	}
	return helper.Success(c, "Data berhasil diambil", out)
}

// PATCH /aspirations/:id
func (h *StudentAspirationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req aDTO.UpdateStudentAspirationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.StudentAspirationStudentID != nil {
		if err := h.ensureStudentExists(*req.StudentAspirationStudentID); err != nil {
			return err
		}
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := req.ApplyToModel(m); err != nil {
		return err
	}
	if err := h.DB.Save(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Cita-cita tabungan diperbarui", m)
}

// DELETE /aspirations/:id
func (h *StudentAspirationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&aModel.StudentAspirationModel{}, "student_aspiration_id = ?", m.StudentAspirationID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.Success(c, "Cita-cita tabungan dihapus", fiber.Map{"id": m.StudentAspirationID})
}

func (h *StudentAspirationController) findByID(id uint) (*aModel.StudentAspirationModel, error) {
	var m aModel.StudentAspirationModel
	if err := h.DB.Where("student_aspiration_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Cita-cita dengan id %d tidak ditemukan", id))
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

func (h *StudentAspirationController) ensureStudentExists(studentID uint) error {
	var cnt int64
	if err := h.DB.Model(&sModel.StudentModel{}).
		Where("student_id = ?", studentID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek siswa")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Siswa dengan id %d tidak ditemukan", studentID))
	}
	return nil
}
