// file: internals/features/school/imports/normalize/records.go
package normalize

import (
	"fmt"

	"sukuu_backend/internals/features/school/imports/excel"
)

// RosterRecord is a roster row with canonical names and typed values,
// pre-resolution. Optional fields are nil when the cell was blank.
type RosterRecord struct {
	SourceRow int

	StudentCode string
	FullName    string
	Gender      *string
	DateOfBirth *string // YYYY-MM-DD
	Phone       *string
	Guardian    *string
	GuardianTel *string

	// Raw class/department references for the resolver; may be a UUID or a
	// display name.
	ClassRef      string
	DepartmentRef string

	Warnings []string
}

// RosterRow normalizes one raw roster row. The returned error message list is
// non-empty only when a required field is unusable; warnings ride along on
// the record without dropping it.
func RosterRow(row excel.RawRow, fm excel.FieldMap) (*RosterRecord, []string) {
	rec := &RosterRecord{SourceRow: row.SourceRow}

	rec.StudentCode = Clean(row.Cell(fm.Index(excel.FieldStudentID)))
	rec.FullName = Clean(row.Cell(fm.Index(excel.FieldFullName)))

	var hardErrs []string
	if rec.StudentCode == "" {
		hardErrs = append(hardErrs, "student ID is required")
	}
	if rec.FullName == "" {
		hardErrs = append(hardErrs, "full name is required")
	}
	if len(hardErrs) > 0 {
		return nil, hardErrs
	}

	rec.Gender = Gender(row.Cell(fm.Index(excel.FieldGender)))

	if raw := row.Cell(fm.Index(excel.FieldDateOfBirth)); raw != "" {
		if d, ok := Date(raw); ok {
			rec.DateOfBirth = &d
		} else {
			rec.Warnings = append(rec.Warnings, fmt.Sprintf("unrecognized date of birth %q", raw))
		}
	}
	if raw := row.Cell(fm.Index(excel.FieldPhone)); raw != "" {
		p := Phone(raw)
		rec.Phone = &p
	}
	if raw := Clean(row.Cell(fm.Index(excel.FieldGuardianName))); raw != "" {
		rec.Guardian = &raw
	}
	if raw := row.Cell(fm.Index(excel.FieldGuardianPhone)); raw != "" {
		p := Phone(raw)
		rec.GuardianTel = &p
	}

	rec.ClassRef = Clean(row.Cell(fm.Index(excel.FieldClass)))
	rec.DepartmentRef = Clean(row.Cell(fm.Index(excel.FieldDepartment)))

	return rec, nil
}

// SubjectScores is one subject's raw component values off a results row.
// Absent components are simply missing from the map ("not assessed").
type SubjectScores struct {
	SubjectName string
	Components  map[string]float64
}

// ResultsRecord is a results row with every scored subject attached.
type ResultsRecord struct {
	SourceRow   int
	StudentCode string
	Subjects    []SubjectScores
	Warnings    []string
}

// ResultsRow normalizes one raw results row against the discovered subject
// columns. Out-of-range and non-numeric scores become warnings with the
// value dropped.
func ResultsRow(row excel.RawRow, fm excel.FieldMap, subjects []excel.SubjectColumns) (*ResultsRecord, []string) {
	rec := &ResultsRecord{SourceRow: row.SourceRow}

	rec.StudentCode = Clean(row.Cell(fm.Index(excel.FieldStudentID)))
	if rec.StudentCode == "" {
		return nil, []string{"student ID is required"}
	}

	for _, sc := range subjects {
		scores := SubjectScores{SubjectName: sc.SubjectName, Components: map[string]float64{}}
		for component, col := range sc.Components {
			v, warn := Score(row.Cell(col))
			if warn != "" {
				rec.Warnings = append(rec.Warnings, fmt.Sprintf("%s %s: %s", sc.SubjectName, component, warn))
				continue
			}
			if v != nil {
				scores.Components[component] = *v
			}
		}
		if len(scores.Components) > 0 {
			rec.Subjects = append(rec.Subjects, scores)
		}
	}

	return rec, nil
}
