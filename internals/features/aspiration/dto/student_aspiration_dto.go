package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	aModel "tabunganku_backend/internals/features/aspiration/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentAspirationRequest struct {
	StudentAspirationDescription  string          `json:"student_aspiration_description" validate:"required"`
	StudentAspirationTargetAmount decimal.Decimal `json:"student_aspiration_target_amount" validate:"required"`
	StudentAspirationStudentID    uint            `json:"student_aspiration_student_id" validate:"required,min=1"`
}

func (r *CreateStudentAspirationRequest) ToModel() (*aModel.StudentAspirationModel, error) {
	if r.StudentAspirationTargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Target tabungan harus lebih dari 0")
	}
	return &aModel.StudentAspirationModel{
		StudentAspirationDescription:  r.StudentAspirationDescription,
		StudentAspirationTargetAmount: r.StudentAspirationTargetAmount,
		StudentAspirationStudentID:    r.StudentAspirationStudentID,
	}, nil
}

type UpdateStudentAspirationRequest struct {
	StudentAspirationDescription  *string          `json:"student_aspiration_description" validate:"omitempty"`
	StudentAspirationTargetAmount *decimal.Decimal `json:"student_aspiration_target_amount" validate:"omitempty"`
	StudentAspirationStudentID    *uint            `json:"student_aspiration_student_id" validate:"omitempty,min=1"`
}

func (r *UpdateStudentAspirationRequest) ApplyToModel(m *aModel.StudentAspirationModel) error {
	if r.StudentAspirationDescription != nil {
		m.StudentAspirationDescription = *r.StudentAspirationDescription
	}
	if r.StudentAspirationTargetAmount != nil {
		if r.StudentAspirationTargetAmount.LessThanOrEqual(decimal.Zero) {
			return fiber.NewError(fiber.StatusBadRequest, "Target tabungan harus lebih dari 0")
		}
		m.StudentAspirationTargetAmount = *r.StudentAspirationTargetAmount
	}
	if r.StudentAspirationStudentID != nil {
		m.StudentAspirationStudentID = *r.StudentAspirationStudentID
	}
	now := time.Now()
	m.StudentAspirationUpdatedAt = &now
	return nil
}

/* ===================== RESPONSES ===================== */

// AspirationProgressResponse menambahkan progres tabungan terhadap target.
type AspirationProgressResponse struct {
	StudentAspirationID           uint            `json:"student_aspiration_id"`
	StudentAspirationDescription  string          `json:"student_aspiration_description"`
	StudentAspirationTargetAmount decimal.Decimal `json:"student_aspiration_target_amount"`
	CurrentBalance                decimal.Decimal `json:"current_balance"`
	ProgressPercent               decimal.Decimal `json:"progress_percent"` // 0..100, dibulatkan 2 desimal
}

func NewAspirationProgressResponse(m *aModel.StudentAspirationModel, balance decimal.Decimal) *AspirationProgressResponse {
	pct := decimal.Zero
	if m.StudentAspirationTargetAmount.IsPositive() {
		pct = balance.Div(m.StudentAspirationTargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
		if pct.LessThan(decimal.Zero) {
			pct = decimal.Zero
		}
		hundred := decimal.NewFromInt(100)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
	}
	return &AspirationProgressResponse{
		StudentAspirationID:           m.StudentAspirationID,
		StudentAspirationDescription:  m.StudentAspirationDescription,
		StudentAspirationTargetAmount: m.StudentAspirationTargetAmount,
		CurrentBalance:                balance,
		ProgressPercent:               pct,
	}
}
