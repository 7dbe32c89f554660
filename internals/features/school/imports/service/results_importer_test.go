// file: internals/features/school/imports/service/results_importer_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	assessmentModel "sukuu_backend/internals/features/school/assessments/model"
	"sukuu_backend/internals/features/school/imports/dto"
	"sukuu_backend/internals/features/school/imports/excel"
	importModel "sukuu_backend/internals/features/school/imports/model"
	"sukuu_backend/internals/features/school/imports/resolve"
	resultModel "sukuu_backend/internals/features/school/results/model"
)

// fakeResultsStore holds results keyed by (student, term, year).
type fakeResultsStore struct {
	students []resolve.StudentRef
	subjects []resolve.SubjectRef
	classes  []resolve.ClassRef
	caTypes  map[uuid.UUID]*assessmentModel.CATypeModel
	bands    []assessmentModel.GradeBandModel

	results       map[string]*resultModel.ResultModel
	replacedMarks map[uuid.UUID][]resultModel.SubjectMarkModel
	logs          []*importModel.ImportLogModel
}

func newFakeResultsStore() *fakeResultsStore {
	return &fakeResultsStore{
		caTypes:       map[uuid.UUID]*assessmentModel.CATypeModel{},
		results:       map[string]*resultModel.ResultModel{},
		replacedMarks: map[uuid.UUID][]resultModel.SubjectMarkModel{},
	}
}

func resultKey(studentID uuid.UUID, term, year string) string {
	return studentID.String() + "|" + term + "|" + year
}

func (f *fakeResultsStore) LoadSnapshot(context.Context) (*resolve.Snapshot, error) {
	return resolve.NewSnapshot(f.students, f.subjects, f.classes, nil), nil
}

func (f *fakeResultsStore) FindCAType(_ context.Context, id uuid.UUID) (*assessmentModel.CATypeModel, error) {
	ct, ok := f.caTypes[id]
	if !ok {
		return nil, errors.New("ca type not found")
	}
	return ct, nil
}

func (f *fakeResultsStore) LoadGradeBands(context.Context, *uuid.UUID, string, string) ([]assessmentModel.GradeBandModel, error) {
	return f.bands, nil
}

func (f *fakeResultsStore) FindResult(_ context.Context, studentID uuid.UUID, term, year string) (*resultModel.ResultModel, error) {
	r, ok := f.results[resultKey(studentID, term, year)]
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (f *fakeResultsStore) CreateResult(_ context.Context, r *resultModel.ResultModel) error {
	f.results[resultKey(r.ResultStudentID, r.ResultTerm, r.ResultAcademicYear)] = r
	return nil
}

func (f *fakeResultsStore) ReplaceSubjectMarks(_ context.Context, resultID uuid.UUID, marks []resultModel.SubjectMarkModel) error {
	f.replacedMarks[resultID] = marks
	return nil
}

func (f *fakeResultsStore) SaveImportLog(_ context.Context, l *importModel.ImportLogModel) error {
	f.logs = append(f.logs, l)
	return nil
}

// seedStore registers two students and two subjects.
func seedStore() (*fakeResultsStore, map[string]uuid.UUID) {
	store := newFakeResultsStore()
	ids := map[string]uuid.UUID{
		"STU001":  uuid.New(),
		"STU002":  uuid.New(),
		"math":    uuid.New(),
		"english": uuid.New(),
	}
	store.students = []resolve.StudentRef{
		{ID: ids["STU001"], Code: "STU001"},
		{ID: ids["STU002"], Code: "STU002"},
	}
	store.subjects = []resolve.SubjectRef{
		{ID: ids["math"], Name: "Mathematics", Code: "MATH"},
		{ID: ids["english"], Name: "English Language", Code: "ENG"},
	}
	return store, ids
}

func caExamOptions(store *fakeResultsStore) ResultsImportOptions {
	caTypeID := uuid.New()
	store.caTypes[caTypeID] = &assessmentModel.CATypeModel{
		CATypeID:      caTypeID,
		CATypeName:    "CA 30 / Exam 70",
		CATypeWeights: datatypes.JSONMap{"ca": 30.0, "exam": 70.0},
	}
	return ResultsImportOptions{
		FileName:     "results.xlsx",
		ClassID:      uuid.New(),
		Term:         "Term 1",
		AcademicYear: "2025/2026",
		CATypeID:     &caTypeID,
	}
}

var resultsHeaders = []string{
	"Student ID", "Full Name", "Mathematics - CA", "Mathematics - Exam",
}

func TestResultsImportScoresAndGrades(t *testing.T) {
	store, ids := seedStore()
	imp := &ResultsImporter{Store: store}
	opts := caExamOptions(store)

	file := sheetBytes(t, [][]string{
		resultsHeaders,
		{"STU001", "Ama Serwaa", "80", "60"},
	})

	report, err := imp.Import(context.Background(), file, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Success || report.SuccessCount != 1 {
		t.Fatalf("report = %+v", report)
	}

	result := store.results[resultKey(ids["STU001"], opts.Term, opts.AcademicYear)]
	if result == nil {
		t.Fatal("result not stored")
	}
	if len(result.SubjectMarks) != 1 {
		t.Fatalf("marks = %+v", result.SubjectMarks)
	}
	mark := result.SubjectMarks[0]
	if mark.SubjectMarkSubjectID != ids["math"] {
		t.Errorf("subject id = %s", mark.SubjectMarkSubjectID)
	}
	// 80*0.3 + 60*0.7 = 66, WAEC C4
	if mark.SubjectMarkTotal != 66 {
		t.Errorf("total = %d, want 66", mark.SubjectMarkTotal)
	}
	if mark.SubjectMarkGrade != "C4" {
		t.Errorf("grade = %q, want C4", mark.SubjectMarkGrade)
	}
	if mark.SubjectMarkCA == nil || *mark.SubjectMarkCA != 80 {
		t.Errorf("raw ca = %v", mark.SubjectMarkCA)
	}
}

func TestResultsImportUnweightedFallback(t *testing.T) {
	store, ids := seedStore()
	imp := &ResultsImporter{Store: store}
	opts := ResultsImportOptions{
		ClassID:      uuid.New(),
		Term:         "Term 1",
		AcademicYear: "2025/2026",
		// no CA type: plain sum
	}

	file := sheetBytes(t, [][]string{
		resultsHeaders,
		{"STU001", "Ama Serwaa", "25", "60"},
	})
	if _, err := imp.Import(context.Background(), file, opts); err != nil {
		t.Fatal(err)
	}

	result := store.results[resultKey(ids["STU001"], opts.Term, opts.AcademicYear)]
	if result.SubjectMarks[0].SubjectMarkTotal != 85 {
		t.Errorf("total = %d, want 85", result.SubjectMarks[0].SubjectMarkTotal)
	}
}

func TestResultsImportUnknownStudentFailsRow(t *testing.T) {
	store, _ := seedStore()
	imp := &ResultsImporter{Store: store}
	opts := caExamOptions(store)

	file := sheetBytes(t, [][]string{
		resultsHeaders,
		{"STU001", "Ama Serwaa", "80", "60"},
		{"STU999", "Ghost Student", "50", "50"},
	})
	report, err := imp.Import(context.Background(), file, opts)
	if err != nil {
		t.Fatal(err)
	}
	if report.SuccessCount != 1 || report.FailedCount != 1 {
		t.Errorf("counts = %+v", report)
	}
	if len(report.Errors) != 1 || report.Errors[0].Identifier != "STU999" {
		t.Errorf("errors = %+v", report.Errors)
	}
	checkConservation(t, report.TotalProcessed, report.SuccessCount,
		report.FailedCount, report.SkippedCount, report.DuplicateCount)
}

func TestResultsImportUnknownSubjectFailsRow(t *testing.T) {
	store, _ := seedStore()
	imp := &ResultsImporter{Store: store}
	opts := caExamOptions(store)

	file := sheetBytes(t, [][]string{
		{"Student ID", "Full Name", "Ancient Runes - CA", "Ancient Runes - Exam"},
		{"STU001", "Ama Serwaa", "80", "60"},
	})
	report, err := imp.Import(context.Background(), file, opts)
	if err != nil {
		t.Fatal(err)
	}
	if report.FailedCount != 1 || report.SuccessCount != 0 {
		t.Errorf("counts = %+v", report)
	}
	if len(store.results) != 0 {
		t.Error("no result may be written for a failed row")
	}
}

func TestResultsImportAllBlankScoresSkipsRow(t *testing.T) {
	store, _ := seedStore()
	imp := &ResultsImporter{Store: store}
	opts := caExamOptions(store)

	file := sheetBytes(t, [][]string{
		resultsHeaders,
		{"STU001", "Ama Serwaa", "", ""},
	})
	report, err := imp.Import(context.Background(), file, opts)
	if err != nil {
		t.Fatal(err)
	}
	if report.SkippedCount != 1 || report.SuccessCount != 0 || report.FailedCount != 0 {
		t.Errorf("counts = %+v", report)
	}
	if report.Success {
		t.Error("a batch with nothing imported must not report success")
	}
	checkConservation(t, report.TotalProcessed, report.SuccessCount,
		report.FailedCount, report.SkippedCount, report.DuplicateCount)
}

func TestResultsImportOutOfRangeScoreDroppedWithWarning(t *testing.T) {
	store, ids := seedStore()
	imp := &ResultsImporter{Store: store}
	opts := caExamOptions(store)

	file := sheetBytes(t, [][]string{
		resultsHeaders,
		{"STU001", "Ama Serwaa", "105", "60"},
	})
	report, err := imp.Import(context.Background(), file, opts)
	if err != nil {
		t.Fatal(err)
	}
	if report.SuccessCount != 1 {
		t.Fatalf("row should still import: %+v", report)
	}
	if len(report.Warnings) == 0 {
		t.Error("dropped score must leave a warning")
	}

	result := store.results[resultKey(ids["STU001"], opts.Term, opts.AcademicYear)]
	mark := result.SubjectMarks[0]
	if mark.SubjectMarkCA != nil {
		t.Errorf("out-of-range ca must be nil, got %v", *mark.SubjectMarkCA)
	}
	// only exam counts: 60*0.7 = 42, never clamped to 100*0.3+...
	if mark.SubjectMarkTotal != 42 {
		t.Errorf("total = %d, want 42", mark.SubjectMarkTotal)
	}
}

func TestResultsImportReimportUpdatesInPlace(t *testing.T) {
	store, ids := seedStore()
	imp := &ResultsImporter{Store: store}
	opts := caExamOptions(store)

	rows := [][]string{
		resultsHeaders,
		{"STU001", "Ama Serwaa", "80", "60"},
	}
	first, err := imp.Import(context.Background(), sheetBytes(t, rows), opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.CreatedIDs) != 1 {
		t.Fatalf("first run created ids = %v", first.CreatedIDs)
	}

	second, err := imp.Import(context.Background(), sheetBytes(t, rows), opts)
	if err != nil {
		t.Fatal(err)
	}
	if second.SuccessCount != 1 || len(second.CreatedIDs) != 0 {
		t.Errorf("second run = %+v", second)
	}

	result := store.results[resultKey(ids["STU001"], opts.Term, opts.AcademicYear)]
	if _, ok := store.replacedMarks[result.ResultID]; !ok {
		t.Error("re-import must replace the nested marks")
	}
}

func TestResultsImportNoSubjectColumnsRejectsFile(t *testing.T) {
	store, _ := seedStore()
	imp := &ResultsImporter{Store: store}

	file := sheetBytes(t, [][]string{
		{"Student ID", "Full Name"},
		{"STU001", "Ama Serwaa"},
	})
	_, err := imp.Import(context.Background(), file, caExamOptions(store))
	var pe *excel.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *excel.ParseError, got %v", err)
	}
}

func TestResultsImportPhaseOrder(t *testing.T) {
	store, _ := seedStore()
	var phases []string
	imp := &ResultsImporter{
		Store: store,
		Progress: func(ev dto.ProgressEvent) {
			if len(phases) == 0 || phases[len(phases)-1] != ev.Phase {
				phases = append(phases, ev.Phase)
			}
		},
	}

	file := sheetBytes(t, [][]string{
		resultsHeaders,
		{"STU001", "Ama Serwaa", "80", "60"},
	})
	if _, err := imp.Import(context.Background(), file, caExamOptions(store)); err != nil {
		t.Fatal(err)
	}

	want := []string{
		dto.PhaseValidating, dto.PhaseMatchingStudents, dto.PhaseMatchingSubjects,
		dto.PhaseImporting, dto.PhaseComplete,
	}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phases = %v, want %v", phases, want)
		}
	}
}
