package dto

import (
	"time"

	sModel "tabunganku_backend/internals/features/school/model"
)

/* ===================== REQUESTS ===================== */

type CreateSchoolRequest struct {
	SchoolName    string  `json:"school_name" validate:"required,min=2,max=150"`
	SchoolAddress string  `json:"school_address" validate:"required"`
	SchoolPhone   *string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail   *string `json:"school_email" validate:"omitempty,email,max=120"`
}

func (r *CreateSchoolRequest) ToModel() *sModel.SchoolModel {
	return &sModel.SchoolModel{
		SchoolName:    r.SchoolName,
		SchoolAddress: r.SchoolAddress,
		SchoolPhone:   r.SchoolPhone,
		SchoolEmail:   r.SchoolEmail,
	}
}

type UpdateSchoolRequest struct {
	SchoolName    *string `json:"school_name" validate:"omitempty,min=2,max=150"`
	SchoolAddress *string `json:"school_address" validate:"omitempty"`
	SchoolPhone   *string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail   *string `json:"school_email" validate:"omitempty,email,max=120"`
}

// ApplyToModel hanya menimpa field yang dikirim; updated_at selalu di-refresh.
func (r *UpdateSchoolRequest) ApplyToModel(m *sModel.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = *r.SchoolAddress
	}
	if r.SchoolPhone != nil {
		m.SchoolPhone = r.SchoolPhone
	}
	if r.SchoolEmail != nil {
		m.SchoolEmail = r.SchoolEmail
	}
	now := time.Now()
	m.SchoolUpdatedAt = &now
}
