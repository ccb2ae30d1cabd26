package dto

import (
	"time"

	sModel "tabunganku_backend/internals/features/student/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	StudentName   string               `json:"student_name" validate:"required,min=2,max=150"`
	StudentGender sModel.StudentGender `json:"student_gender" validate:"required,oneof=male female"`

	StudentNISN string `json:"student_nisn" validate:"required,max=20"`
	StudentNIS  string `json:"student_nis" validate:"required,max=20"`

	StudentClassID uint `json:"student_class_id" validate:"required,min=1"`

	StudentPhone         *string `json:"student_phone" validate:"omitempty,max=30"`
	StudentEmail         *string `json:"student_email" validate:"omitempty,email,max=120"`
	StudentBankName      *string `json:"student_bank_name" validate:"omitempty,max=80"`
	StudentAccountNumber *string `json:"student_account_number" validate:"omitempty,max=40"`

	// default "active" bila tidak dikirim
	StudentStatus *sModel.StudentStatus `json:"student_status" validate:"omitempty,oneof=active graduated transferred"`
}

func (r *CreateStudentRequest) ToModel() *sModel.StudentModel {
	m := &sModel.StudentModel{
		StudentName:   r.StudentName,
		StudentGender: r.StudentGender,
		StudentNISN:   r.StudentNISN,
		StudentNIS:    r.StudentNIS,

		StudentClassID: r.StudentClassID,

		StudentPhone:         r.StudentPhone,
		StudentEmail:         r.StudentEmail,
		StudentBankName:      r.StudentBankName,
		StudentAccountNumber: r.StudentAccountNumber,

		StudentStatus: sModel.StudentStatusActive,
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
	return m
}

type UpdateStudentRequest struct {
	StudentName   *string               `json:"student_name" validate:"omitempty,min=2,max=150"`
	StudentGender *sModel.StudentGender `json:"student_gender" validate:"omitempty,oneof=male female"`

	StudentNISN *string `json:"student_nisn" validate:"omitempty,max=20"`
	StudentNIS  *string `json:"student_nis" validate:"omitempty,max=20"`

	StudentClassID *uint `json:"student_class_id" validate:"omitempty,min=1"`

	StudentPhone         *string `json:"student_phone" validate:"omitempty,max=30"`
	StudentEmail         *string `json:"student_email" validate:"omitempty,email,max=120"`
	StudentBankName      *string `json:"student_bank_name" validate:"omitempty,max=80"`
	StudentAccountNumber *string `json:"student_account_number" validate:"omitempty,max=40"`

	StudentStatus *sModel.StudentStatus `json:"student_status" validate:"omitempty,oneof=active graduated transferred"`
}

// ApplyToModel hanya menimpa field yang dikirim; updated_at selalu di-refresh.
func (r *UpdateStudentRequest) ApplyToModel(m *sModel.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentNISN != nil {
		m.StudentNISN = *r.StudentNISN
	}
	if r.StudentNIS != nil {
		m.StudentNIS = *r.StudentNIS
	}
	if r.StudentClassID != nil {
		m.StudentClassID = *r.StudentClassID
	}
	if r.StudentPhone != nil {
		m.StudentPhone = r.StudentPhone
	}
	if r.StudentEmail != nil {
		m.StudentEmail = r.StudentEmail
	}
	if r.StudentBankName != nil {
		m.StudentBankName = r.StudentBankName
	}
	if r.StudentAccountNumber != nil {
		m.StudentAccountNumber = r.StudentAccountNumber
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
	now := time.Now()
	m.StudentUpdatedAt = &now
}
