package model

import (
	"time"
)

// SchoolModel menyimpan profil sekolah. Secara konvensi hanya satu baris
// yang dipakai sebagai "sekolah aktif" (baris pertama berdasarkan id).
type SchoolModel struct {
	SchoolID      uint    `gorm:"primaryKey;autoIncrement;column:school_id" json:"school_id"`
	SchoolName    string  `gorm:"type:varchar(150);not null;column:school_name" json:"school_name"`
	SchoolAddress string  `gorm:"not null;column:school_address" json:"school_address"`
	SchoolPhone   *string `gorm:"type:varchar(30);column:school_phone" json:"school_phone,omitempty"`
	SchoolEmail   *string `gorm:"type:varchar(120);column:school_email" json:"school_email,omitempty"`

	SchoolCreatedAt time.Time  `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt *time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
