package dto

import (
	"github.com/shopspring/decimal"
)

// StudentLeaderboardRow adalah satu baris ranking siswa.
// Siswa aktif tanpa transaksi tetap muncul dengan nilai 0 semua.
type StudentLeaderboardRow struct {
	StudentID        uint            `gorm:"column:student_id" json:"student_id"`
	StudentName      string          `gorm:"column:student_name" json:"student_name"`
	ClassName        string          `gorm:"column:class_name" json:"class_name"`
	TotalDeposits    decimal.Decimal `gorm:"column:total_deposits" json:"total_deposits"`
	TransactionCount int64           `gorm:"column:transaction_count" json:"transaction_count"`
	CurrentBalance   decimal.Decimal `gorm:"column:current_balance" json:"current_balance"`
}

// ClassLeaderboardRow adalah satu baris ranking kelas (agregat siswa aktif).
type ClassLeaderboardRow struct {
	ClassID        uint            `gorm:"column:class_id" json:"class_id"`
	ClassName      string          `gorm:"column:class_name" json:"class_name"`
	TotalDeposits  decimal.Decimal `gorm:"column:total_deposits" json:"total_deposits"`
	TotalStudents  int64           `gorm:"column:total_students" json:"total_students"`
	AverageBalance decimal.Decimal `gorm:"column:average_balance" json:"average_balance"`
}
