// file: internals/features/school/results/dto/result_dto.go
package dto

import (
	"github.com/google/uuid"

	scoring "sukuu_backend/internals/features/school/assessments/service"
)

// =======================
// Report card shapes
// =======================

type SubjectReportLine struct {
	SubjectID   uuid.UUID                `json:"subject_id"`
	SubjectName string                   `json:"subject_name"`
	SubjectCode string                   `json:"subject_code"`
	Total       int                      `json:"total"`
	Grade       string                   `json:"grade"`
	Remark      string                   `json:"remark,omitempty"`
	Breakdown   []scoring.ComponentShare `json:"breakdown,omitempty"`
}

type ReportCard struct {
	ResultID        uuid.UUID           `json:"result_id"`
	StudentID       uuid.UUID           `json:"student_id"`
	StudentCode     string              `json:"student_code"`
	StudentFullName string              `json:"student_full_name"`
	ClassName       string              `json:"class_name"`
	Term            string              `json:"term"`
	AcademicYear    string              `json:"academic_year"`
	Subjects        []SubjectReportLine `json:"subjects"`
	AggregateTotal  int                 `json:"aggregate_total"`
	AverageTotal    float64             `json:"average_total"`
}
