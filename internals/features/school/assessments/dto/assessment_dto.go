// file: internals/features/school/assessments/dto/assessment_dto.go
package dto

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sukuu_backend/internals/features/school/assessments/model"
)

// =======================
// CA type
// =======================

type CATypeCreateDTO struct {
	CATypeName    string             `json:"ca_type_name" validate:"required,min=2,max=80"`
	CATypeWeights map[string]float64 `json:"ca_type_weights" validate:"required,min=1"`
}

// ValidateWeights enforces that component weights are sane and sum to 100.
// Components outside the known set are rejected so typos surface at save
// time rather than at import time.
func (p *CATypeCreateDTO) ValidateWeights() error {
	known := map[string]bool{"ca1": true, "ca2": true, "ca3": true, "ca4": true, "ca": true, "exam": true}
	var sum float64
	for k, w := range p.CATypeWeights {
		if !known[strings.ToLower(k)] {
			return fmt.Errorf("unknown component %q (expected ca1..ca4, ca or exam)", k)
		}
		if w < 0 {
			return fmt.Errorf("component %q has negative weight", k)
		}
		sum += w
	}
	if math.Abs(sum-100) > 0.01 {
		return fmt.Errorf("weights must sum to 100, got %g", sum)
	}
	return nil
}

func (p *CATypeCreateDTO) ToModel() *model.CATypeModel {
	weights := make(datatypes.JSONMap, len(p.CATypeWeights))
	for k, w := range p.CATypeWeights {
		weights[strings.ToLower(k)] = w
	}
	return &model.CATypeModel{
		CATypeName:     strings.Join(strings.Fields(p.CATypeName), " "),
		CATypeWeights:  weights,
		CATypeIsActive: true,
	}
}

// =======================
// Grade bands
// =======================

type GradeBandDTO struct {
	From   int    `json:"from" validate:"min=0,max=100"`
	To     int    `json:"to" validate:"min=0,max=100"`
	Grade  string `json:"grade" validate:"required,max=10"`
	Remark string `json:"remark" validate:"max=40"`
}

// GradeBandReplaceDTO replaces the whole band table for one scope in a
// single call, which is how the admin UI edits them.
type GradeBandReplaceDTO struct {
	DepartmentID *uuid.UUID     `json:"department_id,omitempty"`
	Term         string         `json:"term" validate:"required,max=20"`
	AcademicYear string         `json:"academic_year" validate:"required,max=9"`
	Bands        []GradeBandDTO `json:"bands" validate:"required,min=1,dive"`
}

// ValidateBands rejects inverted ranges and overlapping bands.
func (p *GradeBandReplaceDTO) ValidateBands() error {
	for i, b := range p.Bands {
		if b.From > b.To {
			return fmt.Errorf("band %d (%s): from %d exceeds to %d", i+1, b.Grade, b.From, b.To)
		}
		for j := i + 1; j < len(p.Bands); j++ {
			o := p.Bands[j]
			if b.From <= o.To && o.From <= b.To {
				return fmt.Errorf("bands %q and %q overlap", b.Grade, o.Grade)
			}
		}
	}
	return nil
}

func (p *GradeBandReplaceDTO) ToModels() []model.GradeBandModel {
	out := make([]model.GradeBandModel, 0, len(p.Bands))
	for _, b := range p.Bands {
		out = append(out, model.GradeBandModel{
			GradeBandID:           uuid.New(),
			GradeBandDepartmentID: p.DepartmentID,
			GradeBandTerm:         strings.TrimSpace(p.Term),
			GradeBandAcademicYear: strings.TrimSpace(p.AcademicYear),
			GradeBandFrom:         b.From,
			GradeBandTo:           b.To,
			GradeBandGrade:        strings.TrimSpace(b.Grade),
			GradeBandRemark:       strings.TrimSpace(b.Remark),
		})
	}
	return out
}
