package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	trxModel "tabunganku_backend/internals/features/transaction/model"
)

const dateLayout = "2006-01-02"

/* ===================== REQUESTS ===================== */

type CreateTransactionRequest struct {
	TransactionDate   string                   `json:"transaction_date" validate:"required"`
	TransactionType   trxModel.TransactionType `json:"transaction_type" validate:"required,oneof=deposit withdrawal"`
	TransactionAmount decimal.Decimal          `json:"transaction_amount" validate:"required"`
	TransactionNotes  *string                  `json:"transaction_notes" validate:"omitempty"`

	TransactionStudentID uint `json:"transaction_student_id" validate:"required,min=1"`
}

// ToModel memvalidasi tanggal & nominal (harus > 0) lalu membentuk model.
func (r *CreateTransactionRequest) ToModel() (*trxModel.TransactionModel, error) {
	date, err := time.Parse(dateLayout, r.TransactionDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Format transaction_date harus YYYY-MM-DD")
	}
	if r.TransactionAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Nominal transaksi harus lebih dari 0")
	}
	return &trxModel.TransactionModel{
		TransactionDate:      date,
		TransactionType:      r.TransactionType,
		TransactionAmount:    r.TransactionAmount,
		TransactionNotes:     r.TransactionNotes,
		TransactionStudentID: r.TransactionStudentID,
	}, nil
}

type UpdateTransactionRequest struct {
	TransactionDate   *string                   `json:"transaction_date" validate:"omitempty"`
	TransactionType   *trxModel.TransactionType `json:"transaction_type" validate:"omitempty,oneof=deposit withdrawal"`
	TransactionAmount *decimal.Decimal          `json:"transaction_amount" validate:"omitempty"`
	TransactionNotes  *string                   `json:"transaction_notes" validate:"omitempty"`

	TransactionStudentID *uint `json:"transaction_student_id" validate:"omitempty,min=1"`
}

// ApplyToModel hanya menimpa field yang dikirim; updated_at selalu di-refresh.
func (r *UpdateTransactionRequest) ApplyToModel(m *trxModel.TransactionModel) error {
	if r.TransactionDate != nil {
		date, err := time.Parse(dateLayout, *r.TransactionDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format transaction_date harus YYYY-MM-DD")
		}
		m.TransactionDate = date
	}
	if r.TransactionType != nil {
		m.TransactionType = *r.TransactionType
	}
	if r.TransactionAmount != nil {
		if r.TransactionAmount.LessThanOrEqual(decimal.Zero) {
			return fiber.NewError(fiber.StatusBadRequest, "Nominal transaksi harus lebih dari 0")
		}
		m.TransactionAmount = *r.TransactionAmount
	}
	if r.TransactionNotes != nil {
		m.TransactionNotes = r.TransactionNotes
	}
	if r.TransactionStudentID != nil {
		m.TransactionStudentID = *r.TransactionStudentID
	}
	now := time.Now()
	m.TransactionUpdatedAt = &now
	return nil
}

/* ===================== RESPONSES ===================== */

type TransactionResponse struct {
	TransactionID        uint                     `json:"transaction_id"`
	TransactionDate      string                   `json:"transaction_date"`
	TransactionType      trxModel.TransactionType `json:"transaction_type"`
	TransactionAmount    decimal.Decimal          `json:"transaction_amount"`
	TransactionNotes     *string                  `json:"transaction_notes,omitempty"`
	TransactionStudentID uint                     `json:"transaction_student_id"`

	TransactionCreatedAt time.Time  `json:"transaction_created_at"`
	TransactionUpdatedAt *time.Time `json:"transaction_updated_at,omitempty"`
}

func NewTransactionResponse(m *trxModel.TransactionModel) *TransactionResponse {
	if m == nil {
		return nil
	}
	return &TransactionResponse{
		TransactionID:        m.TransactionID,
		TransactionDate:      m.TransactionDate.Format(dateLayout),
		TransactionType:      m.TransactionType,
		TransactionAmount:    m.TransactionAmount,
		TransactionNotes:     m.TransactionNotes,
		TransactionStudentID: m.TransactionStudentID,
		TransactionCreatedAt: m.TransactionCreatedAt,
		TransactionUpdatedAt: m.TransactionUpdatedAt,
	}
}

func NewTransactionResponses(rows []trxModel.TransactionModel) []*TransactionResponse {
	items := make([]*TransactionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, NewTransactionResponse(&rows[i]))
	}
	return items
}

// TransactionReportRow adalah baris laporan hasil join transaksi → siswa → kelas.
type TransactionReportRow struct {
	TransactionID uint                     `gorm:"column:transaction_id" json:"transaction_id"`
	Date          time.Time                `gorm:"column:transaction_date" json:"-"`
	DateText      string                   `gorm:"-" json:"date"`
	Type          trxModel.TransactionType `gorm:"column:transaction_type" json:"type"`
	Amount        decimal.Decimal          `gorm:"column:transaction_amount" json:"amount"`
	Notes         *string                  `gorm:"column:transaction_notes" json:"notes,omitempty"`
	StudentName   string                   `gorm:"column:student_name" json:"student_name"`
	ClassName     string                   `gorm:"column:class_name" json:"class_name"`
}

// FormatDates mengisi DateText (YYYY-MM-DD) setelah scan dari DB.
func FormatDates(rows []TransactionReportRow) []TransactionReportRow {
	for i := range rows {
		rows[i].DateText = rows[i].Date.Format(dateLayout)
	}
	return rows
}

// SummaryResponse adalah rekap satu sekolah untuk dashboard admin.
type SummaryResponse struct {
	TotalStudents     int64           `json:"total_students"`
	ActiveStudents    int64           `json:"active_students"`
	TotalTransactions int64           `json:"total_transactions"`
	TotalDeposits     decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals  decimal.Decimal `json:"total_withdrawals"`
	TotalBalance      decimal.Decimal `json:"total_balance"`
}
