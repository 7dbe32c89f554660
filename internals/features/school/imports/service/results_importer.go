// file: internals/features/school/imports/service/results_importer.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	assessmentService "sukuu_backend/internals/features/school/assessments/service"
	"sukuu_backend/internals/features/school/imports/dto"
	"sukuu_backend/internals/features/school/imports/excel"
	importModel "sukuu_backend/internals/features/school/imports/model"
	"sukuu_backend/internals/features/school/imports/normalize"
	"sukuu_backend/internals/features/school/imports/resolve"
	resultModel "sukuu_backend/internals/features/school/results/model"
)

// ResultsImporter bulk-creates/updates exam results and their nested subject
// marks from a results sheet, scoring each mark through the configured
// weighting scheme.
type ResultsImporter struct {
	Store    ResultsStore
	Progress dto.ProgressFunc
}

// ResultsImportOptions is the target context for a results sheet. Class,
// term and academic year are mandatory: a result row cannot exist without
// them.
type ResultsImportOptions struct {
	FileName     string
	ClassID      uuid.UUID
	Term         string
	AcademicYear string
	CATypeID     *uuid.UUID // nil = no weighting scheme, unweighted sum fallback
}

func (imp *ResultsImporter) Import(ctx context.Context, file io.Reader, opts ResultsImportOptions) (*dto.ImportReport, error) {
	table, err := excel.ReadWorkbook(file)
	if err != nil {
		return nil, err
	}

	fm := excel.BuildFieldMap(table.Headers, excel.ResultsAliases)
	if perr := fm.Require(excel.FieldStudentID); perr != nil {
		return nil, perr
	}
	subjectCols := excel.DiscoverSubjectColumns(table.Headers)
	if len(subjectCols) == 0 {
		return nil, excel.NewParseError("no subject score columns found (expected headers like \"Mathematics - CA1\" or \"Mathematics - Exam\")")
	}

	report := &dto.ImportReport{CreatedIDs: []string{}, Errors: []dto.RowError{}}
	total := len(table.Rows)

	// ---- validating ----
	imp.emit(dto.ProgressEvent{Current: 0, Total: total, Phase: dto.PhaseValidating})
	recs := make([]*normalize.ResultsRecord, 0, total)
	hardErrs := make([][]string, 0, total)
	for _, raw := range table.Rows {
		rec, errsFor := normalize.ResultsRow(raw, fm, subjectCols)
		recs = append(recs, rec)
		hardErrs = append(hardErrs, errsFor)
		if rec != nil {
			for _, w := range rec.Warnings {
				report.Warnings = append(report.Warnings, dto.RowWarning{Row: raw.SourceRow, Message: w})
			}
		}
	}

	// ---- matching-students ----
	imp.emit(dto.ProgressEvent{Current: 0, Total: total, Phase: dto.PhaseMatchingStudents})
	snapshot, err := imp.Store.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store snapshot: %w", err)
	}

	// ---- matching-subjects ----
	// Subject columns are fixed per sheet, so each is resolved once; rows
	// carrying scores for an unresolved subject fail individually below.
	imp.emit(dto.ProgressEvent{Current: 0, Total: total, Phase: dto.PhaseMatchingSubjects})
	subjectRefs := map[string]resolve.SubjectRef{}
	unresolvedSubjects := map[string]bool{}
	for _, sc := range subjectCols {
		if ref, ok := snapshot.Subject(sc.SubjectName); ok {
			subjectRefs[sc.SubjectName] = ref
		} else {
			unresolvedSubjects[sc.SubjectName] = true
		}
	}

	weights, err := imp.loadWeights(ctx, opts.CATypeID)
	if err != nil {
		return nil, err
	}
	bands, err := imp.loadBands(ctx, snapshot, opts)
	if err != nil {
		return nil, err
	}

	// ---- importing ----
	imp.emit(dto.ProgressEvent{Current: 0, Total: total, Phase: dto.PhaseImporting})
	for i, raw := range table.Rows {
		report.TotalProcessed++
		rec := recs[i]

		if rec == nil {
			report.AddError(raw.SourceRow, "", joinMessages(hardErrs[i]))
			continue
		}

		student, ok := snapshot.Student(rec.StudentCode)
		if !ok {
			report.AddError(rec.SourceRow, rec.StudentCode, fmt.Sprintf("Student with ID %s not found", rec.StudentCode))
			continue
		}

		marks, rowErr := imp.buildMarks(rec, subjectRefs, unresolvedSubjects, weights, bands)
		if rowErr != "" {
			report.AddError(rec.SourceRow, rec.StudentCode, rowErr)
			continue
		}
		if len(marks) == 0 {
			report.SkippedCount++
			continue
		}

		if err := imp.upsertResult(ctx, student.ID, opts, marks, report); err != nil {
			report.AddError(rec.SourceRow, rec.StudentCode, err.Error())
		}

		imp.emit(dto.ProgressEvent{
			Current: i + 1,
			Total:   total,
			Phase:   dto.PhaseImporting,
			Message: fmt.Sprintf("processed %d of %d result rows", i+1, total),
		})
	}

	report.Finalize()
	imp.emit(dto.ProgressEvent{Current: total, Total: total, Phase: dto.PhaseComplete})
	imp.saveLog(ctx, opts.FileName, report)
	return report, nil
}

func (imp *ResultsImporter) loadWeights(ctx context.Context, caTypeID *uuid.UUID) (map[string]float64, error) {
	if caTypeID == nil {
		return nil, nil
	}
	caType, err := imp.Store.FindCAType(ctx, *caTypeID)
	if err != nil {
		return nil, fmt.Errorf("load CA type: %w", err)
	}
	return caType.WeightMap(), nil
}

func (imp *ResultsImporter) loadBands(ctx context.Context, snapshot *resolve.Snapshot, opts ResultsImportOptions) ([]assessmentService.Band, error) {
	var departmentID *uuid.UUID
	if class, ok := snapshot.ClassByID(opts.ClassID); ok {
		departmentID = class.DepartmentID
	}
	rows, err := imp.Store.LoadGradeBands(ctx, departmentID, opts.Term, opts.AcademicYear)
	if err != nil {
		return nil, fmt.Errorf("load grade bands: %w", err)
	}
	if len(rows) == 0 {
		// no configured table for this context: WAEC scale default
		return assessmentService.WAECBands, nil
	}
	return assessmentService.BandsFromModels(rows), nil
}

func (imp *ResultsImporter) buildMarks(
	rec *normalize.ResultsRecord,
	subjectRefs map[string]resolve.SubjectRef,
	unresolvedSubjects map[string]bool,
	weights map[string]float64,
	bands []assessmentService.Band,
) ([]resultModel.SubjectMarkModel, string) {
	var marks []resultModel.SubjectMarkModel
	for _, sub := range rec.Subjects {
		if unresolvedSubjects[sub.SubjectName] {
			return nil, fmt.Sprintf("Subject %q not found", sub.SubjectName)
		}
		ref, ok := subjectRefs[sub.SubjectName]
		if !ok {
			return nil, fmt.Sprintf("Subject %q not found", sub.SubjectName)
		}

		total := assessmentService.ComputeTotal(weights, sub.Components)
		mark := resultModel.SubjectMarkModel{
			SubjectMarkSubjectID: ref.ID,
			SubjectMarkTotal:     total,
		}
		setComponent := func(dst **float64, key string) {
			if v, ok := sub.Components[key]; ok {
				val := v
				*dst = &val
			}
		}
		setComponent(&mark.SubjectMarkCA1, excel.ComponentCA1)
		setComponent(&mark.SubjectMarkCA2, excel.ComponentCA2)
		setComponent(&mark.SubjectMarkCA3, excel.ComponentCA3)
		setComponent(&mark.SubjectMarkCA4, excel.ComponentCA4)
		setComponent(&mark.SubjectMarkCA, excel.ComponentCA)
		setComponent(&mark.SubjectMarkExam, excel.ComponentExam)

		if band, ok := assessmentService.GradeFor(total, bands); ok {
			mark.SubjectMarkGrade = band.Grade
			if band.Remark != "" {
				remark := band.Remark
				mark.SubjectMarkRemark = &remark
			}
		}
		marks = append(marks, mark)
	}
	return marks, ""
}

// upsertResult routes the row to update or insert on its natural key
// (student, term, academic_year). Updates replace the nested subject marks
// wholesale.
func (imp *ResultsImporter) upsertResult(ctx context.Context, studentID uuid.UUID, opts ResultsImportOptions, marks []resultModel.SubjectMarkModel, report *dto.ImportReport) error {
	existing, err := imp.Store.FindResult(ctx, studentID, opts.Term, opts.AcademicYear)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("result lookup failed: %v", err)
	}

	if existing != nil {
		for i := range marks {
			marks[i].SubjectMarkResultID = existing.ResultID
		}
		if err := imp.Store.ReplaceSubjectMarks(ctx, existing.ResultID, marks); err != nil {
			return fmt.Errorf("update failed: %v", err)
		}
		report.SuccessCount++
		return nil
	}

	ent := &resultModel.ResultModel{
		ResultID:           uuid.New(),
		ResultStudentID:    studentID,
		ResultClassID:      opts.ClassID,
		ResultTerm:         opts.Term,
		ResultAcademicYear: opts.AcademicYear,
		ResultCATypeID:     opts.CATypeID,
		ResultCreatedAt:    time.Now(),
		ResultUpdatedAt:    time.Now(),
	}
	for i := range marks {
		marks[i].SubjectMarkResultID = ent.ResultID
	}
	ent.SubjectMarks = marks
	if err := imp.Store.CreateResult(ctx, ent); err != nil {
		return fmt.Errorf("insert failed: %v", err)
	}
	report.SuccessCount++
	report.CreatedIDs = append(report.CreatedIDs, ent.ResultID.String())
	return nil
}

func (imp *ResultsImporter) emit(ev dto.ProgressEvent) {
	if imp.Progress != nil {
		imp.Progress(ev)
	}
}

func (imp *ResultsImporter) saveLog(ctx context.Context, fileName string, report *dto.ImportReport) {
	payload, _ := json.Marshal(report.Errors)
	entry := &importModel.ImportLogModel{
		ImportLogKind:           importModel.ImportKindResults,
		ImportLogFileName:       fileName,
		ImportLogTotalProcessed: report.TotalProcessed,
		ImportLogSuccessCount:   report.SuccessCount,
		ImportLogFailedCount:    report.FailedCount,
		ImportLogSkippedCount:   report.SkippedCount,
		ImportLogDuplicateCount: report.DuplicateCount,
		ImportLogCreatedIDs:     pq.StringArray(report.CreatedIDs),
		ImportLogErrors:         payload,
	}
	if err := imp.Store.SaveImportLog(ctx, entry); err != nil {
		log.Printf("[WARN] import log save failed: %v", err)
	}
}
