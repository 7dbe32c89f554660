// file: internals/features/school/imports/dto/import_dto.go
package dto

// Import phases, reported in strict order and never revisited.
const (
	PhaseValidating       = "validating"
	PhaseMatchingStudents = "matching-students"
	PhaseMatchingSubjects = "matching-subjects"
	PhaseImporting        = "importing"
	PhaseComplete         = "complete"
)

// ProgressEvent is one tick of the progress callback.
type ProgressEvent struct {
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Phase   string `json:"phase"`
	Message string `json:"message,omitempty"`
}

// ProgressFunc receives progress ticks; nil means no reporting.
type ProgressFunc func(ProgressEvent)

// RowError is one row-level problem, attached to the source row number and
// the external identifier the operator will recognize.
type RowError struct {
	Row        int    `json:"row"`
	Identifier string `json:"identifier,omitempty"`
	Message    string `json:"message"`
}

// RowWarning is a soft row-level note: the row was still imported.
type RowWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportReport aggregates one batch run. Invariant:
// SuccessCount + FailedCount + SkippedCount + DuplicateCount == TotalProcessed.
// Success is true only when nothing failed AND something succeeded; a batch
// with zero valid rows is never successful.
type ImportReport struct {
	Success        bool `json:"success"`
	TotalProcessed int  `json:"total_processed"`
	SuccessCount   int  `json:"success_count"`
	FailedCount    int  `json:"failed_count"`
	SkippedCount   int  `json:"skipped_count"`
	DuplicateCount int  `json:"duplicate_count"`

	CreatedIDs []string     `json:"created_ids"`
	Errors     []RowError   `json:"errors"`
	Warnings   []RowWarning `json:"warnings,omitempty"`
}

func (r *ImportReport) Finalize() {
	r.Success = r.FailedCount == 0 && r.SuccessCount > 0
}

func (r *ImportReport) AddError(row int, identifier, message string) {
	r.FailedCount++
	r.Errors = append(r.Errors, RowError{Row: row, Identifier: identifier, Message: message})
}
