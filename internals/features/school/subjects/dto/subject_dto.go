// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"sukuu_backend/internals/features/school/subjects/model"
)

type SubjectCreateDTO struct {
	SubjectName string `json:"subject_name" validate:"required,min=2,max=120"`
	SubjectCode string `json:"subject_code" validate:"required,min=2,max=40"`
}

type SubjectUpdateDTO struct {
	SubjectName     *string `json:"subject_name,omitempty" validate:"omitempty,min=2,max=120"`
	SubjectCode     *string `json:"subject_code,omitempty" validate:"omitempty,min=2,max=40"`
	SubjectIsActive *bool   `json:"subject_is_active,omitempty"`
}

func (p *SubjectCreateDTO) ToModel() *model.SubjectModel {
	return &model.SubjectModel{
		SubjectName:     strings.Join(strings.Fields(p.SubjectName), " "),
		SubjectCode:     strings.ToUpper(strings.TrimSpace(p.SubjectCode)),
		SubjectIsActive: true,
	}
}

func (p *SubjectUpdateDTO) ApplyUpdates(ent *model.SubjectModel) {
	if p.SubjectName != nil {
		ent.SubjectName = strings.Join(strings.Fields(*p.SubjectName), " ")
	}
	if p.SubjectCode != nil {
		ent.SubjectCode = strings.ToUpper(strings.TrimSpace(*p.SubjectCode))
	}
	if p.SubjectIsActive != nil {
		ent.SubjectIsActive = *p.SubjectIsActive
	}
}
