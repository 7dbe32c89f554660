// file: internals/features/school/imports/service/store.go
package service

import (
	"context"

	"github.com/google/uuid"

	assessmentModel "sukuu_backend/internals/features/school/assessments/model"
	importModel "sukuu_backend/internals/features/school/imports/model"
	"sukuu_backend/internals/features/school/imports/resolve"
	resultModel "sukuu_backend/internals/features/school/results/model"
	studentModel "sukuu_backend/internals/features/school/students/model"
)

// RosterStore is everything the roster importer needs from the backing
// store. The snapshot is loaded once per import, never per row.
type RosterStore interface {
	LoadSnapshot(ctx context.Context) (*resolve.Snapshot, error)
	CreateStudent(ctx context.Context, s *studentModel.StudentModel) error
	UpdateStudent(ctx context.Context, s *studentModel.StudentModel) error
	FindStudentByCode(ctx context.Context, code string) (*studentModel.StudentModel, error)
	SaveImportLog(ctx context.Context, l *importModel.ImportLogModel) error
}

// ResultsStore adds what the results importer needs on top of the snapshot:
// the weighting scheme, the band table, and result upserts.
type ResultsStore interface {
	LoadSnapshot(ctx context.Context) (*resolve.Snapshot, error)
	FindCAType(ctx context.Context, id uuid.UUID) (*assessmentModel.CATypeModel, error)
	LoadGradeBands(ctx context.Context, departmentID *uuid.UUID, term, academicYear string) ([]assessmentModel.GradeBandModel, error)
	FindResult(ctx context.Context, studentID uuid.UUID, term, academicYear string) (*resultModel.ResultModel, error)
	CreateResult(ctx context.Context, r *resultModel.ResultModel) error
	ReplaceSubjectMarks(ctx context.Context, resultID uuid.UUID, marks []resultModel.SubjectMarkModel) error
	SaveImportLog(ctx context.Context, l *importModel.ImportLogModel) error
}
