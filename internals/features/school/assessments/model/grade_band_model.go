// file: internals/features/school/assessments/model/grade_band_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeBandModel is one row of the ordered percentage-band table used to
// translate a total score into a qualitative grade. Bands are scoped per
// department/term/year; a nil department means school-wide.
type GradeBandModel struct {
	GradeBandID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_band_id" json:"grade_band_id"`
	GradeBandDepartmentID *uuid.UUID `gorm:"type:uuid;column:grade_band_department_id;index"                     json:"grade_band_department_id,omitempty"`
	GradeBandTerm         string     `gorm:"type:varchar(20);not null;column:grade_band_term"                    json:"grade_band_term"`
	GradeBandAcademicYear string     `gorm:"type:varchar(9);not null;column:grade_band_academic_year"            json:"grade_band_academic_year"`

	GradeBandFrom   int    `gorm:"not null;column:grade_band_from"              json:"grade_band_from"`
	GradeBandTo     int    `gorm:"not null;column:grade_band_to"                json:"grade_band_to"`
	GradeBandGrade  string `gorm:"type:varchar(10);not null;column:grade_band_grade" json:"grade_band_grade"`
	GradeBandRemark string `gorm:"type:varchar(40);column:grade_band_remark"    json:"grade_band_remark"`

	GradeBandCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grade_band_created_at" json:"grade_band_created_at"`
	GradeBandUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grade_band_updated_at" json:"grade_band_updated_at"`
	GradeBandDeletedAt gorm.DeletedAt `gorm:"column:grade_band_deleted_at;index"                                   json:"grade_band_deleted_at,omitempty"`
}

func (GradeBandModel) TableName() string { return "grade_bands" }
