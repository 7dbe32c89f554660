// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"sukuu_backend/internals/features/school/classes/model"
)

type ClassCreateDTO struct {
	ClassName         string     `json:"class_name" validate:"required,min=2,max=80"`
	ClassDepartmentID *uuid.UUID `json:"class_department_id,omitempty"`
}

type ClassUpdateDTO struct {
	ClassName         *string    `json:"class_name,omitempty" validate:"omitempty,min=2,max=80"`
	ClassDepartmentID *uuid.UUID `json:"class_department_id,omitempty"`
	ClassIsActive     *bool      `json:"class_is_active,omitempty"`
}

func (p *ClassCreateDTO) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassName:         strings.Join(strings.Fields(p.ClassName), " "),
		ClassDepartmentID: p.ClassDepartmentID,
		ClassIsActive:     true,
	}
}

func (p *ClassUpdateDTO) ApplyUpdates(ent *model.ClassModel) {
	if p.ClassName != nil {
		ent.ClassName = strings.Join(strings.Fields(*p.ClassName), " ")
	}
	if p.ClassDepartmentID != nil {
		ent.ClassDepartmentID = p.ClassDepartmentID
	}
	if p.ClassIsActive != nil {
		ent.ClassIsActive = *p.ClassIsActive
	}
}

type DepartmentCreateDTO struct {
	DepartmentName string `json:"department_name" validate:"required,min=2,max=80"`
}
