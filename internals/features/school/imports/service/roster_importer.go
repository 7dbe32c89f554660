// file: internals/features/school/imports/service/roster_importer.go
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

	"sukuu_backend/internals/features/school/imports/dto"
	"sukuu_backend/internals/features/school/imports/excel"
	importModel "sukuu_backend/internals/features/school/imports/model"
	"sukuu_backend/internals/features/school/imports/normalize"
	"sukuu_backend/internals/features/school/imports/resolve"
	studentModel "sukuu_backend/internals/features/school/students/model"
)

const defaultProgressEvery = 50

// RosterImporter bulk-creates/updates students from a spreadsheet. One bad
// row never aborts the batch; only file-level problems are returned as
// errors.
type RosterImporter struct {
	Store    RosterStore
	Progress dto.ProgressFunc

	// DefaultGenderWhenMissing is applied on the insert path only, when a
	// roster row carries no usable gender. Nil leaves gender unset. This is
	// a named, visible policy knob rather than a buried constant.
	DefaultGenderWhenMissing *string

	// ProgressEvery batches progress ticks during the importing phase;
	// zero means every 50 rows.
	ProgressEvery int
}

// RosterImportOptions is the operator-supplied target context.
type RosterImportOptions struct {
	FileName     string
	ClassID      *uuid.UUID // fallback placement when a row has no resolvable class
	DepartmentID *uuid.UUID
}

type rosterRow struct {
	sourceRow int
	rec       *normalize.RosterRecord
	hardErrs  []string
}

func (imp *RosterImporter) Import(ctx context.Context, file io.Reader, opts RosterImportOptions) (*dto.ImportReport, error) {
	table, err := excel.ReadWorkbook(file)
	if err != nil {
		return nil, err
	}

	fm := excel.BuildFieldMap(table.Headers, excel.RosterAliases)
	if perr := fm.Require(excel.FieldStudentID, excel.FieldFullName); perr != nil {
		return nil, perr
	}

	report := &dto.ImportReport{CreatedIDs: []string{}, Errors: []dto.RowError{}}
	total := len(table.Rows)

	// ---- validating ----
	imp.emit(dto.ProgressEvent{Current: 0, Total: total, Phase: dto.PhaseValidating})
	rows := make([]rosterRow, 0, total)
	for _, raw := range table.Rows {
		rec, hardErrs := normalize.RosterRow(raw, fm)
		rows = append(rows, rosterRow{sourceRow: raw.SourceRow, rec: rec, hardErrs: hardErrs})
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

	// ---- importing ----
	every := imp.ProgressEvery
	if every <= 0 {
		every = defaultProgressEvery
	}
	imp.emit(dto.ProgressEvent{Current: 0, Total: total, Phase: dto.PhaseImporting})

	for i, row := range rows {
		report.TotalProcessed++

		if row.rec == nil {
			report.AddError(row.sourceRow, "", joinMessages(row.hardErrs))
			continue
		}
		rec := row.rec

		existing, err := imp.Store.FindStudentByCode(ctx, rec.StudentCode)
		switch {
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			report.AddError(row.sourceRow, rec.StudentCode, fmt.Sprintf("lookup failed: %v", err))
		case existing != nil:
			// Already on the roster: update in place, reported as duplicate
			// so a re-import of the same file reads as "nothing new".
			applyRosterRecord(existing, rec, snapshotClass(snapshot, rec, opts), nil)
			existing.StudentUpdatedAt = time.Now()
			if err := imp.Store.UpdateStudent(ctx, existing); err != nil {
				report.AddError(row.sourceRow, rec.StudentCode, fmt.Sprintf("update failed: %v", err))
			} else {
				report.DuplicateCount++
			}
		default:
			ent := &studentModel.StudentModel{
				StudentID:   uuid.New(),
				StudentCode: rec.StudentCode,
			}
			applyRosterRecord(ent, rec, snapshotClass(snapshot, rec, opts), imp.DefaultGenderWhenMissing)
			if err := imp.Store.CreateStudent(ctx, ent); err != nil {
				report.AddError(row.sourceRow, rec.StudentCode, fmt.Sprintf("insert failed: %v", err))
			} else {
				report.SuccessCount++
				report.CreatedIDs = append(report.CreatedIDs, ent.StudentID.String())
			}
		}

		if (i+1)%every == 0 || i+1 == total {
			imp.emit(dto.ProgressEvent{
				Current: i + 1,
				Total:   total,
				Phase:   dto.PhaseImporting,
				Message: fmt.Sprintf("processed %d of %d students", i+1, total),
			})
		}
	}

	report.Finalize()
	imp.emit(dto.ProgressEvent{Current: total, Total: total, Phase: dto.PhaseComplete})
	imp.saveLog(ctx, opts.FileName, report)
	return report, nil
}

type placement struct {
	classID      *uuid.UUID
	departmentID *uuid.UUID
}

// snapshotClass resolves the row's class/department references, falling back
// to the operator-supplied target context. An unresolvable class is not a
// failure for roster rows; the student is imported for later assignment.
func snapshotClass(snap *resolve.Snapshot, rec *normalize.RosterRecord, opts RosterImportOptions) placement {
	p := placement{classID: opts.ClassID, departmentID: opts.DepartmentID}
	if id, ok := snap.Class(rec.ClassRef); ok {
		p.classID = &id
	}
	if id, ok := snap.Department(rec.DepartmentRef); ok {
		p.departmentID = &id
	}
	return p
}

func applyRosterRecord(ent *studentModel.StudentModel, rec *normalize.RosterRecord, p placement, defaultGender *string) {
	ent.StudentFullName = rec.FullName
	if rec.Gender != nil {
		ent.StudentGender = rec.Gender
	} else if ent.StudentGender == nil && defaultGender != nil {
		g := *defaultGender
		ent.StudentGender = &g
	}
	if rec.DateOfBirth != nil {
		if t, err := time.Parse("2006-01-02", *rec.DateOfBirth); err == nil {
			ent.StudentDateOfBirth = &t
		}
	}
	if rec.Phone != nil {
		ent.StudentPhone = rec.Phone
	}
	if rec.Guardian != nil {
		ent.StudentGuardianName = rec.Guardian
	}
	if rec.GuardianTel != nil {
		ent.StudentGuardianPhone = rec.GuardianTel
	}
	if p.classID != nil {
		ent.StudentClassID = p.classID
	}
	if p.departmentID != nil {
		ent.StudentDepartmentID = p.departmentID
	}
}

func (imp *RosterImporter) emit(ev dto.ProgressEvent) {
	if imp.Progress != nil {
		imp.Progress(ev)
	}
}

func (imp *RosterImporter) saveLog(ctx context.Context, fileName string, report *dto.ImportReport) {
	payload, _ := json.Marshal(report.Errors)
	entry := &importModel.ImportLogModel{
		ImportLogKind:           importModel.ImportKindStudents,
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

func joinMessages(msgs []string) string {
	out := ""
	for i, m := range msgs {
		if i > 0 {
			out += "; "
		}
		out += m
	}
	return out
}
