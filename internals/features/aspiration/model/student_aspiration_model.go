package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StudentAspirationModel adalah target/cita-cita menabung seorang siswa.
type StudentAspirationModel struct {
	StudentAspirationID          uint            `gorm:"primaryKey;autoIncrement;column:student_aspiration_id" json:"student_aspiration_id"`
	StudentAspirationDescription string          `gorm:"not null;column:student_aspiration_description" json:"student_aspiration_description"`
	StudentAspirationTargetAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;column:student_aspiration_target_amount" json:"student_aspiration_target_amount"`

	StudentAspirationStudentID uint `gorm:"not null;column:student_aspiration_student_id;index" json:"student_aspiration_student_id"`

	StudentAspirationCreatedAt time.Time  `gorm:"column:student_aspiration_created_at;autoCreateTime" json:"student_aspiration_created_at"`
	StudentAspirationUpdatedAt *time.Time `gorm:"column:student_aspiration_updated_at;autoUpdateTime" json:"student_aspiration_updated_at,omitempty"`
}

func (StudentAspirationModel) TableName() string { return "student_aspirations" }
