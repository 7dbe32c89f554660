// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sukuu_backend/internals/features/school/students/model"
)

// =======================
// Request DTO
// =======================

type StudentCreateDTO struct {
	StudentCode     string     `json:"student_code" validate:"required,min=2,max=40"`
	StudentFullName string     `json:"student_full_name" validate:"required,min=2,max=160"`
	StudentGender   *string    `json:"student_gender,omitempty" validate:"omitempty,oneof=male female"`
	StudentDOB      *time.Time `json:"student_date_of_birth,omitempty"`
	StudentPhone    *string    `json:"student_phone,omitempty" validate:"omitempty,max=20"`
	GuardianName    *string    `json:"student_guardian_name,omitempty" validate:"omitempty,max=160"`
	GuardianPhone   *string    `json:"student_guardian_phone,omitempty" validate:"omitempty,max=20"`
	ClassID         *uuid.UUID `json:"student_class_id,omitempty"`
	DepartmentID    *uuid.UUID `json:"student_department_id,omitempty"`
}

type StudentUpdateDTO struct {
	StudentFullName *string    `json:"student_full_name,omitempty" validate:"omitempty,min=2,max=160"`
	StudentGender   *string    `json:"student_gender,omitempty" validate:"omitempty,oneof=male female"`
	StudentDOB      *time.Time `json:"student_date_of_birth,omitempty"`
	StudentPhone    *string    `json:"student_phone,omitempty" validate:"omitempty,max=20"`
	GuardianName    *string    `json:"student_guardian_name,omitempty" validate:"omitempty,max=160"`
	GuardianPhone   *string    `json:"student_guardian_phone,omitempty" validate:"omitempty,max=20"`
	ClassID         *uuid.UUID `json:"student_class_id,omitempty"`
	DepartmentID    *uuid.UUID `json:"student_department_id,omitempty"`
	HasLeft         *bool      `json:"student_has_left,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *StudentCreateDTO) Normalize() {
	p.StudentCode = strings.TrimSpace(p.StudentCode)
	p.StudentFullName = strings.Join(strings.Fields(p.StudentFullName), " ")
}

func (p *StudentCreateDTO) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentCode:          p.StudentCode,
		StudentFullName:      p.StudentFullName,
		StudentGender:        p.StudentGender,
		StudentDateOfBirth:   p.StudentDOB,
		StudentPhone:         p.StudentPhone,
		StudentGuardianName:  p.GuardianName,
		StudentGuardianPhone: p.GuardianPhone,
		StudentClassID:       p.ClassID,
		StudentDepartmentID:  p.DepartmentID,
	}
}

func (p *StudentUpdateDTO) ApplyUpdates(ent *model.StudentModel) {
	if p.StudentFullName != nil {
		ent.StudentFullName = strings.Join(strings.Fields(*p.StudentFullName), " ")
	}
	if p.StudentGender != nil {
		ent.StudentGender = p.StudentGender
	}
	if p.StudentDOB != nil {
		ent.StudentDateOfBirth = p.StudentDOB
	}
	if p.StudentPhone != nil {
		ent.StudentPhone = p.StudentPhone
	}
	if p.GuardianName != nil {
		ent.StudentGuardianName = p.GuardianName
	}
	if p.GuardianPhone != nil {
		ent.StudentGuardianPhone = p.GuardianPhone
	}
	if p.ClassID != nil {
		ent.StudentClassID = p.ClassID
	}
	if p.DepartmentID != nil {
		ent.StudentDepartmentID = p.DepartmentID
	}
	if p.HasLeft != nil {
		ent.StudentHasLeft = *p.HasLeft
	}
}
