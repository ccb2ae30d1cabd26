package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

/*
Role guru (sesuai ENUM di DB):
- "homeroom_teacher" → wali kelas
- "other"
*/
type TeacherRole string

const (
	TeacherRoleHomeroom TeacherRole = "homeroom_teacher"
	TeacherRoleOther    TeacherRole = "other"
)

// Pastikan selalu lower-case saat scan/save (aman bila sumbernya mixed-case)
func (r *TeacherRole) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*r = TeacherRole(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*r = TeacherRole(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*r = ""
	default:
		return fmt.Errorf("unsupported type for teacher_role: %T", value)
	}
	return nil
}
func (r TeacherRole) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(r))), nil
}

func (r TeacherRole) Valid() bool {
	return r == TeacherRoleHomeroom || r == TeacherRoleOther
}

type TeacherModel struct {
	TeacherID    uint        `gorm:"primaryKey;autoIncrement;column:teacher_id" json:"teacher_id"`
	TeacherName  string      `gorm:"type:varchar(150);not null;column:teacher_name" json:"teacher_name"`
	TeacherEmail string      `gorm:"type:varchar(120);unique;not null;column:teacher_email" json:"teacher_email"`
	TeacherRole  TeacherRole `gorm:"type:varchar(30);not null;default:'other';column:teacher_role" json:"teacher_role"`

	TeacherCreatedAt time.Time  `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt *time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
