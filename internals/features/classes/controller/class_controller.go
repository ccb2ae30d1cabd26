package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cDTO "tabunganku_backend/internals/features/classes/dto"
	cModel "tabunganku_backend/internals/features/classes/model"
	tModel "tabunganku_backend/internals/features/teacher/model"
	helper "tabunganku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

/* ===================== HANDLERS ===================== */

// POST /classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req cDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// wali kelas (jika diisi) harus guru yang ada — cek sebelum insert
	if req.ClassHomeroomTeacherID != nil {
		if err := h.ensureTeacherExists(*req.ClassHomeroomTeacherID); err != nil {
			return err
		}
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kelas berhasil dibuat", m)
}

// GET /classes
func (h *ClassController) List(c *fiber.Ctx) error {
	var rows []cModel.ClassModel
	if err := h.DB.Order("class_id ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}

// GET /classes/:id
func (h *ClassController) Detail(c *fiber.Ctx) error {
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

// PATCH /classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req cDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.ClassHomeroomTeacherID != nil {
		if err := h.ensureTeacherExists(*req.ClassHomeroomTeacherID); err != nil {
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
	return helper.Success(c, "Kelas diperbarui", m)
}

// DELETE /classes/:id
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&cModel.ClassModel{}, "class_id = ?", m.ClassID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Kelas dihapus", fiber.Map{"id": m.ClassID})
}

/* ===================== HELPERS ===================== */

func (h *ClassController) findByID(id uint) (*cModel.ClassModel, error) {
	var m cModel.ClassModel
	if err := h.DB.Where("class_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Kelas dengan id %d tidak ditemukan", id))
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

func (h *ClassController) ensureTeacherExists(teacherID uint) error {
	var cnt int64
	if err := h.DB.Model(&tModel.TeacherModel{}).
		Where("teacher_id = ?", teacherID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek guru")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Guru dengan id %d tidak ditemukan", teacherID))
	}
	return nil
}
