package dto

import (
	"time"

	tModel "tabunganku_backend/internals/features/teacher/model"
)

/* ===================== REQUESTS ===================== */

type CreateTeacherRequest struct {
	TeacherName  string             `json:"teacher_name" validate:"required,min=2,max=150"`
	TeacherEmail string             `json:"teacher_email" validate:"required,email,max=120"`
	TeacherRole  tModel.TeacherRole `json:"teacher_role" validate:"required,oneof=homeroom_teacher other"`
}

func (r *CreateTeacherRequest) ToModel() *tModel.TeacherModel {
	return &tModel.TeacherModel{
		TeacherName:  r.TeacherName,
		TeacherEmail: r.TeacherEmail,
		TeacherRole:  r.TeacherRole,
	}
}

type UpdateTeacherRequest struct {
	TeacherName  *string             `json:"teacher_name" validate:"omitempty,min=2,max=150"`
	TeacherEmail *string             `json:"teacher_email" validate:"omitempty,email,max=120"`
	TeacherRole  *tModel.TeacherRole `json:"teacher_role" validate:"omitempty,oneof=homeroom_teacher other"`
}

func (r *UpdateTeacherRequest) ApplyToModel(m *tModel.TeacherModel) {
	if r.TeacherName != nil {
		m.TeacherName = *r.TeacherName
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = *r.TeacherEmail
	}
	if r.TeacherRole != nil {
		m.TeacherRole = *r.TeacherRole
	}
	now := time.Now()
	m.TeacherUpdatedAt = &now
}
