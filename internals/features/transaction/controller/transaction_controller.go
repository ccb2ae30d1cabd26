package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sModel "tabunganku_backend/internals/features/student/model"
	tModel "tabunganku_backend/internals/features/teacher/model"
	trxDTO "tabunganku_backend/internals/features/transaction/dto"
	trxModel "tabunganku_backend/internals/features/transaction/model"
	trxService "tabunganku_backend/internals/features/transaction/service"
	helper "tabunganku_backend/internals/helpers"
)

type TransactionController struct {
	DB      *gorm.DB
	Reports *trxService.TransactionReportService
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{
		DB:      db,
		Reports: trxService.NewTransactionReportService(),
	}
}

var validate = validator.New()

/* ===================== CRUD ===================== */

// POST /transactions
func (h *TransactionController) Create(c *fiber.Ctx) error {
	var req trxDTO.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// siswa wajib ada — cek sebelum tulis ledger
	if err := h.ensureStudentExists(req.TransactionStudentID); err != nil {
		return err
	}

	m, err := req.ToModel()
	if err != nil {
		return err
	}
	if err := h.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi berhasil dicatat", trxDTO.NewTransactionResponse(m))
}

// GET /transactions?student_id=&class_id=&type=&start_date=&end_date=
func (h *TransactionController) List(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return err
	}
	rows, err := h.Reports.ListTransactions(h.DB, f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", trxDTO.NewTransactionResponses(rows))
}

// GET /transactions/:id
func (h *TransactionController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Data berhasil diambil", trxDTO.NewTransactionResponse(m))
}

// PATCH /transactions/:id
func (h *TransactionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req trxDTO.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// pindah kepemilikan → siswa baru harus ada
	if req.TransactionStudentID != nil {
		if err := h.ensureStudentExists(*req.TransactionStudentID); err != nil {
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
	return helper.Success(c, "Transaksi diperbarui", trxDTO.NewTransactionResponse(m))
}

// DELETE /transactions/:id
func (h *TransactionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&trxModel.TransactionModel{}, "transaction_id = ?", m.TransactionID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus transaksi")
	}
	return helper.Success(c, "Transaksi dihapus", fiber.Map{"id": m.TransactionID})
}

/* ===================== SCOPED LISTS ===================== */

// GET /transactions/student/:id
func (h *TransactionController) ByStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.ensureStudentExists(id); err != nil {
		return err
	}
	f, err := h.parseFilter(c)
	if err != nil {
		return err
	}
	f.StudentID = &id
	rows, err := h.Reports.ListTransactions(h.DB, f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", trxDTO.NewTransactionResponses(rows))
}

// GET /transactions/class/:id
func (h *TransactionController) ByClass(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	var cnt int64
	if err := h.DB.Table("classes").Where("class_id = ?", id).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kelas")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Kelas dengan id %d tidak ditemukan", id))
	}
	f, err := h.parseFilter(c)
	if err != nil {
		return err
	}
	f.ClassID = &id
	rows, err := h.Reports.ListTransactions(h.DB, f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", trxDTO.NewTransactionResponses(rows))
}

// GET /transactions/teacher/:id
// Guru tanpa kelas binaan → list kosong, bukan error.
func (h *TransactionController) ByTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	var teacher tModel.TeacherModel
	if err := h.DB.Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Guru dengan id %d tidak ditemukan", id))
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	f, err := h.parseFilter(c)
	if err != nil {
		return err
	}
	rows, err := h.Reports.ListTransactionsByTeacher(h.DB, id, f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Data berhasil diambil", trxDTO.NewTransactionResponses(rows))
}

/* ===================== REPORTS ===================== */

// GET /students/:id/balance
func (h *TransactionController) StudentBalance(c *fiber.Ctx) error {
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
	return helper.Success(c, "Data berhasil diambil", fiber.Map{
		"student_id": id,
		"balance":    balance,
	})
}

// GET /reports/transactions?student_id=&class_id=&type=&start_date=&end_date=
func (h *TransactionController) Report(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return err
	}
	rows, err := h.Reports.TransactionReport(h.DB, f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}
	return helper.Success(c, "Data berhasil diambil", rows)
}

// GET /reports/summary
func (h *TransactionController) Summary(c *fiber.Ctx) error {
	out, err := h.Reports.Summary(h.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun rekap")
	}
	return helper.Success(c, "Data berhasil diambil", out)
}

/* ===================== HELPERS ===================== */

func (h *TransactionController) parseFilter(c *fiber.Ctx) (trxService.TransactionFilter, error) {
	var f trxService.TransactionFilter

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
		}
		id := uint(n)
		f.StudentID = &id
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
		}
		id := uint(n)
		f.ClassID = &id
	}
	if v := strings.TrimSpace(c.Query("type")); v != "" {
		t := trxModel.TransactionType(strings.ToLower(v))
		if !t.Valid() {
			return f, fiber.NewError(fiber.StatusBadRequest, "type harus deposit atau withdrawal")
		}
		f.Type = &t
	}
	start, err := helper.ParseDateQuery(c, "start_date")
	if err != nil {
		return f, err
	}
	f.StartDate = start
	end, err := helper.ParseDateQuery(c, "end_date")
	if err != nil {
		return f, err
	}
	f.EndDate = end

	return f, nil
}

func (h *TransactionController) findByID(id uint) (*trxModel.TransactionModel, error) {
	var m trxModel.TransactionModel
	if err := h.DB.Where("transaction_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Transaksi dengan id %d tidak ditemukan", id))
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

func (h *TransactionController) ensureStudentExists(studentID uint) error {
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
