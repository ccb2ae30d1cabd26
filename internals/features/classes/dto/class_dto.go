package dto

import (
	"time"

	cModel "tabunganku_backend/internals/features/classes/model"
)

/* ===================== REQUESTS ===================== */

type CreateClassRequest struct {
	ClassName              string `json:"class_name" validate:"required,min=1,max=100"`
	ClassHomeroomTeacherID *uint  `json:"class_homeroom_teacher_id" validate:"omitempty,min=1"`
}

func (r *CreateClassRequest) ToModel() *cModel.ClassModel {
	return &cModel.ClassModel{
		ClassName:              r.ClassName,
		ClassHomeroomTeacherID: r.ClassHomeroomTeacherID,
	}
}

type UpdateClassRequest struct {
	ClassName              *string `json:"class_name" validate:"omitempty,min=1,max=100"`
	ClassHomeroomTeacherID *uint   `json:"class_homeroom_teacher_id" validate:"omitempty,min=1"`
}

func (r *UpdateClassRequest) ApplyToModel(m *cModel.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassHomeroomTeacherID != nil {
		m.ClassHomeroomTeacherID = r.ClassHomeroomTeacherID
	}
	now := time.Now()
	m.ClassUpdatedAt = &now
}
