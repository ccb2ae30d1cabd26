package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sDTO "tabunganku_backend/internals/features/school/dto"
	sModel "tabunganku_backend/internals/features/school/model"
	helper "tabunganku_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

var validate = validator.New()

/* ===================== HANDLERS ===================== */

// POST /schools
func (h *SchoolController) Create(c *fiber.Ctx) error {
	var req sDTO.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sekolah berhasil dibuat", m)
}

// GET /schools
func (h *SchoolController) List(c *fiber.Ctx) error {
	var rows []sModel.SchoolModel
	if err := h.DB.Order("school_id ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}

// GET /schools/current — baris pertama dipakai sebagai profil sekolah aktif.
func (h *SchoolController) Current(c *fiber.Ctx) error {
	var m sModel.SchoolModel
	if err := h.DB.Order("school_id ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Belum ada data sekolah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", m)
}

// GET /schools/:id
func (h *SchoolController) Detail(c *fiber.Ctx) error {
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

// PATCH /schools/:id
func (h *SchoolController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req sDTO.UpdateSchoolRequest
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
	return helper.Success(c, "Sekolah diperbarui", m)
}

// DELETE /schools/:id
func (h *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&sModel.SchoolModel{}, "school_id = ?", m.SchoolID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus sekolah")
	}
	return helper.Success(c, "Sekolah dihapus", fiber.Map{"id": m.SchoolID})
}

/* ===================== HELPERS ===================== */

func (h *SchoolController) findByID(id uint) (*sModel.SchoolModel, error) {
	var m sModel.SchoolModel
	if err := h.DB.Where("school_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}
