package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tDTO "tabunganku_backend/internals/features/teacher/dto"
	tModel "tabunganku_backend/internals/features/teacher/model"
	helper "tabunganku_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

var validate = validator.New()

/* ===================== HANDLERS ===================== */

// POST /teachers
func (h *TeacherController) Create(c *fiber.Ctx) error {
	var req tDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	// email unik — pelanggaran 23505 dipetakan ke 409
	if err := h.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Guru berhasil dibuat", m)
}

// GET /teachers?role=
func (h *TeacherController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&tModel.TeacherModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("teacher_role = ?", role)
	}
	var rows []tModel.TeacherModel
	if err := q.Order("teacher_id ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}

// GET /teachers/:id
func (h *TeacherController) Detail(c *fiber.Ctx) error {
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

// PATCH /teachers/:id
func (h *TeacherController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req tDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)

	if err := h.DB.Save(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Guru diperbarui", m)
}

// DELETE /teachers/:id
func (h *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&tModel.TeacherModel{}, "teacher_id = ?", m.TeacherID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Guru dihapus", fiber.Map{"id": m.TeacherID})
}

/* ===================== HELPERS ===================== */

func (h *TeacherController) findByID(id uint) (*tModel.TeacherModel, error) {
	var m tModel.TeacherModel
	if err := h.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Guru dengan id %d tidak ditemukan", id))
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}
