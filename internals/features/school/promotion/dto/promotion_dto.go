// file: internals/features/school/promotion/dto/promotion_dto.go
package dto

import "github.com/google/uuid"

type BulkPromotionRequest struct {
	StudentIDs   []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
	Term         string      `json:"term" validate:"required"`
	AcademicYear string      `json:"academic_year" validate:"required"`
}

const (
	PromotionOutcomePromoted  = "promoted"
	PromotionOutcomeGraduated = "graduated"
	PromotionOutcomeFailed    = "failed"
)

// PromotionResult is one student's outcome; one student's failure never
// blocks the others.
type PromotionResult struct {
	StudentID   uuid.UUID  `json:"student_id"`
	StudentCode string     `json:"student_code,omitempty"`
	Outcome     string     `json:"outcome"`
	FromClass   string     `json:"from_class,omitempty"`
	ToClass     string     `json:"to_class,omitempty"`
	ToClassID   *uuid.UUID `json:"to_class_id,omitempty"`
	Message     string     `json:"message,omitempty"`
}

type BulkPromotionReport struct {
	Success        bool              `json:"success"`
	TotalProcessed int               `json:"total_processed"`
	PromotedCount  int               `json:"promoted_count"`
	GraduatedCount int               `json:"graduated_count"`
	FailedCount    int               `json:"failed_count"`
	Results        []PromotionResult `json:"results"`
}

func (r *BulkPromotionReport) Finalize() {
	r.Success = r.FailedCount == 0 && r.TotalProcessed > 0
}
