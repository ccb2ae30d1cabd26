package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

/*
Tipe transaksi tabungan (ENUM di DB):
- "deposit"    → setoran
- "withdrawal" → penarikan
*/
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

func (t *TransactionType) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*t = TransactionType(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*t = TransactionType(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*t = ""
	default:
		return fmt.Errorf("unsupported type for transaction_type: %T", value)
	}
	return nil
}
func (t TransactionType) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(t))), nil
}

func (t TransactionType) Valid() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdrawal
}

// TransactionModel adalah ledger tabungan append-only per siswa.
// Nominal pakai numeric(14,2) + shopspring/decimal supaya bebas drift float.
type TransactionModel struct {
	TransactionID   uint            `gorm:"primaryKey;autoIncrement;column:transaction_id" json:"transaction_id"`
	TransactionDate time.Time       `gorm:"type:date;not null;column:transaction_date" json:"transaction_date"`
	TransactionType TransactionType `gorm:"type:varchar(15);not null;column:transaction_type" json:"transaction_type"`

	TransactionAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;column:transaction_amount" json:"transaction_amount"`
	TransactionNotes  *string         `gorm:"column:transaction_notes" json:"transaction_notes,omitempty"`

	TransactionStudentID uint `gorm:"not null;column:transaction_student_id;index" json:"transaction_student_id"`

	TransactionCreatedAt time.Time  `gorm:"column:transaction_created_at;autoCreateTime" json:"transaction_created_at"`
	TransactionUpdatedAt *time.Time `gorm:"column:transaction_updated_at;autoUpdateTime" json:"transaction_updated_at,omitempty"`
}

func (TransactionModel) TableName() string { return "transactions" }
