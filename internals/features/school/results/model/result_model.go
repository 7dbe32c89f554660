// file: internals/features/school/results/model/result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultModel is one student's report for a term/academic-year. Natural key:
// (student, term, academic_year).
type ResultModel struct {
	ResultID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:result_id" json:"result_id"`
	ResultStudentID    uuid.UUID  `gorm:"type:uuid;not null;column:result_student_id;index:idx_results_natural,unique,priority:1" json:"result_student_id"`
	ResultTerm         string     `gorm:"type:varchar(20);not null;column:result_term;index:idx_results_natural,unique,priority:2" json:"result_term"`
	ResultAcademicYear string     `gorm:"type:varchar(9);not null;column:result_academic_year;index:idx_results_natural,unique,priority:3" json:"result_academic_year"`
	ResultClassID      uuid.UUID  `gorm:"type:uuid;not null;column:result_class_id;index" json:"result_class_id"`
	ResultCATypeID     *uuid.UUID `gorm:"type:uuid;column:result_ca_type_id"              json:"result_ca_type_id,omitempty"`

	ResultCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:result_created_at" json:"result_created_at"`
	ResultUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:result_updated_at" json:"result_updated_at"`
	ResultDeletedAt gorm.DeletedAt `gorm:"column:result_deleted_at;index"                                   json:"result_deleted_at,omitempty"`

	// Nested marks
	SubjectMarks []SubjectMarkModel `gorm:"foreignKey:SubjectMarkResultID;references:ResultID" json:"subject_marks,omitempty"`
}

func (ResultModel) TableName() string { return "results" }

// SubjectMarkModel is one scored subject inside a result. Component scores
// are nullable: a nil component was not assessed, which is different from 0.
type SubjectMarkModel struct {
	SubjectMarkID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_mark_id" json:"subject_mark_id"`
	SubjectMarkResultID  uuid.UUID `gorm:"type:uuid;not null;column:subject_mark_result_id;index"                json:"subject_mark_result_id"`
	SubjectMarkSubjectID uuid.UUID `gorm:"type:uuid;not null;column:subject_mark_subject_id;index"               json:"subject_mark_subject_id"`

	SubjectMarkCA1  *float64 `gorm:"type:decimal(5,2);column:subject_mark_ca1"  json:"subject_mark_ca1,omitempty"`
	SubjectMarkCA2  *float64 `gorm:"type:decimal(5,2);column:subject_mark_ca2"  json:"subject_mark_ca2,omitempty"`
	SubjectMarkCA3  *float64 `gorm:"type:decimal(5,2);column:subject_mark_ca3"  json:"subject_mark_ca3,omitempty"`
	SubjectMarkCA4  *float64 `gorm:"type:decimal(5,2);column:subject_mark_ca4"  json:"subject_mark_ca4,omitempty"`
	SubjectMarkCA   *float64 `gorm:"type:decimal(5,2);column:subject_mark_ca"   json:"subject_mark_ca,omitempty"`
	SubjectMarkExam *float64 `gorm:"type:decimal(5,2);column:subject_mark_exam" json:"subject_mark_exam,omitempty"`

	SubjectMarkTotal  int     `gorm:"not null;default:0;column:subject_mark_total"   json:"subject_mark_total"`
	SubjectMarkGrade  string  `gorm:"type:varchar(10);column:subject_mark_grade"     json:"subject_mark_grade"`
	SubjectMarkRemark *string `gorm:"type:varchar(40);column:subject_mark_remark"    json:"subject_mark_remark,omitempty"`

	SubjectMarkCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:subject_mark_created_at" json:"subject_mark_created_at"`
	SubjectMarkUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:subject_mark_updated_at" json:"subject_mark_updated_at"`
}

func (SubjectMarkModel) TableName() string { return "subject_marks" }

// ComponentMap flattens the non-nil component scores keyed the way the
// weighting schemes name them.
func (m *SubjectMarkModel) ComponentMap() map[string]float64 {
	out := map[string]float64{}
	put := func(k string, v *float64) {
		if v != nil {
			out[k] = *v
		}
	}
	put("ca1", m.SubjectMarkCA1)
	put("ca2", m.SubjectMarkCA2)
	put("ca3", m.SubjectMarkCA3)
	put("ca4", m.SubjectMarkCA4)
	put("ca", m.SubjectMarkCA)
	put("exam", m.SubjectMarkExam)
	return out
}
