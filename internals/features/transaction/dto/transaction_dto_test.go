package dto

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	trxModel "tabunganku_backend/internals/features/transaction/model"
)

func TestCreateTransactionRequest_ToModel(t *testing.T) {
	req := CreateTransactionRequest{
		TransactionDate:      "2025-03-01",
		TransactionType:      trxModel.TransactionTypeDeposit,
		TransactionAmount:    decimal.RequireFromString("100000"),
		TransactionStudentID: 1,
	}
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.TransactionDate.Format("2006-01-02") != "2025-03-01" {
		t.Fatalf("tanggal = %s", m.TransactionDate)
	}
	if !m.TransactionAmount.Equal(decimal.RequireFromString("100000")) {
		t.Fatalf("nominal = %s", m.TransactionAmount)
	}
}

func TestCreateTransactionRequest_RejectsBadInput(t *testing.T) {
	base := CreateTransactionRequest{
		TransactionDate:      "2025-03-01",
		TransactionType:      trxModel.TransactionTypeDeposit,
		TransactionAmount:    decimal.RequireFromString("100000"),
		TransactionStudentID: 1,
	}

	bad := base
	bad.TransactionDate = "01-03-2025"
	if _, err := bad.ToModel(); !isFiberStatus(err, fiber.StatusBadRequest) {
		t.Fatalf("format tanggal salah lolos: %v", err)
	}

	bad = base
	bad.TransactionAmount = decimal.Zero
	if _, err := bad.ToModel(); !isFiberStatus(err, fiber.StatusBadRequest) {
		t.Fatalf("nominal 0 lolos: %v", err)
	}

	bad = base
	bad.TransactionAmount = decimal.RequireFromString("-5000")
	if _, err := bad.ToModel(); !isFiberStatus(err, fiber.StatusBadRequest) {
		t.Fatalf("nominal negatif lolos: %v", err)
	}
}

func TestUpdateTransactionRequest_PatchesOnlySentFields(t *testing.T) {
	m, err := (&CreateTransactionRequest{
		TransactionDate:      "2025-03-01",
		TransactionType:      trxModel.TransactionTypeDeposit,
		TransactionAmount:    decimal.RequireFromString("100000"),
		TransactionStudentID: 1,
	}).ToModel()
	if err != nil {
		t.Fatalf("seed model: %v", err)
	}

	amount := decimal.RequireFromString("75000")
	req := UpdateTransactionRequest{TransactionAmount: &amount}
	if err := req.ApplyToModel(m); err != nil {
		t.Fatalf("ApplyToModel: %v", err)
	}

	if !m.TransactionAmount.Equal(amount) {
		t.Fatalf("nominal = %s, mau 75000", m.TransactionAmount)
	}
	if m.TransactionType != trxModel.TransactionTypeDeposit || m.TransactionStudentID != 1 {
		t.Fatalf("field lain ikut berubah: %+v", m)
	}
	if m.TransactionUpdatedAt == nil {
		t.Fatalf("updated_at tidak di-refresh")
	}

	zero := decimal.Zero
	req = UpdateTransactionRequest{TransactionAmount: &zero}
	if err := req.ApplyToModel(m); !isFiberStatus(err, fiber.StatusBadRequest) {
		t.Fatalf("nominal 0 lolos saat patch: %v", err)
	}
}

func isFiberStatus(err error, code int) bool {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Code == code
}
