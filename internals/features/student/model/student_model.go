package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

/*
Status siswa (sesuai ENUM di DB):
- "active"      → masih menabung, masuk perhitungan leaderboard
- "graduated"
- "transferred"
*/
type StudentStatus string

const (
	StudentStatusActive      StudentStatus = "active"
	StudentStatusGraduated   StudentStatus = "graduated"
	StudentStatusTransferred StudentStatus = "transferred"
)

func (s *StudentStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = StudentStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = StudentStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		return fmt.Errorf("unsupported type for student_status: %T", value)
	}
	return nil
}
func (s StudentStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

func (s StudentStatus) Valid() bool {
	return s == StudentStatusActive || s == StudentStatusGraduated || s == StudentStatusTransferred
}

type StudentGender string

const (
	StudentGenderMale   StudentGender = "male"
	StudentGenderFemale StudentGender = "female"
)

func (g StudentGender) Valid() bool {
	return g == StudentGenderMale || g == StudentGenderFemale
}

type StudentModel struct {
	StudentID     uint          `gorm:"primaryKey;autoIncrement;column:student_id" json:"student_id"`
	StudentName   string        `gorm:"type:varchar(150);not null;column:student_name" json:"student_name"`
	StudentGender StudentGender `gorm:"type:varchar(10);not null;column:student_gender" json:"student_gender"`

	// NISN & NIS unik secara global
	StudentNISN string `gorm:"type:varchar(20);unique;not null;column:student_nisn" json:"student_nisn"`
	StudentNIS  string `gorm:"type:varchar(20);unique;not null;column:student_nis" json:"student_nis"`

	StudentClassID uint `gorm:"not null;column:student_class_id;index" json:"student_class_id"`

	// Kontak & rekening (opsional)
	StudentPhone         *string `gorm:"type:varchar(30);column:student_phone" json:"student_phone,omitempty"`
	StudentEmail         *string `gorm:"type:varchar(120);column:student_email" json:"student_email,omitempty"`
	StudentBankName      *string `gorm:"type:varchar(80);column:student_bank_name" json:"student_bank_name,omitempty"`
	StudentAccountNumber *string `gorm:"type:varchar(40);column:student_account_number" json:"student_account_number,omitempty"`

	StudentStatus StudentStatus `gorm:"type:varchar(20);not null;default:'active';column:student_status" json:"student_status"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
