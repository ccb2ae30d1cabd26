package model

import (
	"time"
)

type ClassModel struct {
	ClassID   uint   `gorm:"primaryKey;autoIncrement;column:class_id" json:"class_id"`
	ClassName string `gorm:"type:varchar(100);not null;column:class_name" json:"class_name"`

	// Wali kelas, boleh kosong. Validasi keberadaan guru dilakukan di controller,
	// FK di DB sebagai backstop.
	ClassHomeroomTeacherID *uint `gorm:"column:class_homeroom_teacher_id;index" json:"class_homeroom_teacher_id,omitempty"`

	ClassCreatedAt time.Time  `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt *time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
