package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cModel "tabunganku_backend/internals/features/classes/model"
	sDTO "tabunganku_backend/internals/features/student/dto"
	sModel "tabunganku_backend/internals/features/student/model"
	helper "tabunganku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

/* ===================== HANDLERS ===================== */

// POST /students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req sDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// kelas wajib ada — cek sebelum insert
	if err := h.ensureClassExists(req.StudentClassID); err != nil {
		return err
	}

	m := req.ToModel()
	// NISN/NIS unik — pelanggaran 23505 dipetakan ke 409
	if err := h.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil dibuat", m)
}

// GET /students?class_id=&status=
func (h *StudentController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&sModel.StudentModel{})
	if v := c.Query("class_id"); v != "" {
		q = q.Where("student_class_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("student_status = ?", v)
	}
	var rows []sModel.StudentModel
	if err := q.Order("student_id ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}

// GET /students/:id
func (h *StudentController) Detail(c *fiber.Ctx) error {
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

// PATCH /students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req sDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// pindah kelas → kelas tujuan harus ada
	if req.StudentClassID != nil {
		if err := h.ensureClassExists(*req.StudentClassID); err != nil {
			return err
		}
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)

	if err := h.DB.Save(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Siswa diperbarui", m)
}

// DELETE /students/:id
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&sModel.StudentModel{}, "student_id = ?", m.StudentID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Siswa dihapus", fiber.Map{"id": m.StudentID})
}

/* ===================== HELPERS ===================== */

func (h *StudentController) findByID(id uint) (*sModel.StudentModel, error) {
	var m sModel.StudentModel
	if err := h.DB.Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Siswa dengan id %d tidak ditemukan", id))
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

func (h *StudentController) ensureClassExists(classID uint) error {
	var cnt int64
	if err := h.DB.Model(&cModel.ClassModel{}).
		Where("class_id = ?", classID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kelas")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Kelas dengan id %d tidak ditemukan", classID))
	}
	return nil
}
