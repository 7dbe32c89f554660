// file: internals/features/school/imports/excel/fieldmap.go
package excel

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical field names used by both import shapes.
const (
	FieldStudentID     = "student_id"
	FieldFullName      = "full_name"
	FieldGender        = "gender"
	FieldDateOfBirth   = "date_of_birth"
	FieldPhone         = "phone"
	FieldGuardianName  = "guardian_name"
	FieldGuardianPhone = "guardian_phone"
	FieldClass         = "class"
	FieldDepartment    = "department"
)

// RosterAliases maps canonical roster fields to header spellings an operator
// might actually type. Matching is case-insensitive substring containment.
var RosterAliases = map[string][]string{
	FieldStudentID:     {"student id", "student_id", "student number", "student no", "id"},
	FieldFullName:      {"full name", "full_name", "student name", "name"},
	FieldGender:        {"gender", "sex"},
	FieldDateOfBirth:   {"date of birth", "dob", "birth date", "birthdate"},
	FieldPhone:         {"phone", "contact", "telephone"},
	FieldGuardianName:  {"guardian name", "guardian", "parent name", "parent"},
	FieldGuardianPhone: {"guardian phone", "guardian contact", "parent phone", "parent contact"},
	FieldClass:         {"class", "grade level"},
	FieldDepartment:    {"department", "programme", "program"},
}

// ResultsAliases covers the fixed (non-subject) columns of a results sheet.
var ResultsAliases = map[string][]string{
	FieldStudentID: {"student id", "student_id", "student number", "student no", "id"},
	FieldFullName:  {"full name", "full_name", "student name", "name"},
}

// FieldMap resolves canonical field names to column indexes for one import.
type FieldMap map[string]int

// BuildFieldMap scans the header row once per canonical field; the first
// header containing one of the field's aliases wins.
func BuildFieldMap(headers []string, aliases map[string][]string) FieldMap {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	fm := FieldMap{}
	// deterministic field order
	fields := make([]string, 0, len(aliases))
	for f := range aliases {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	taken := map[int]bool{}
	for _, field := range fields {
	aliasScan:
		for _, alias := range aliases[field] {
			for i, h := range normalized {
				if h == "" || taken[i] {
					continue
				}
				if strings.Contains(h, alias) {
					fm[field] = i
					taken[i] = true
					break aliasScan
				}
			}
		}
	}
	return fm
}

// Index returns the column for a canonical field, or -1.
func (fm FieldMap) Index(field string) int {
	if i, ok := fm[field]; ok {
		return i
	}
	return -1
}

// Require rejects the whole file when any required field is unmapped; the
// error lists every missing column so the operator fixes the sheet once.
func (fm FieldMap) Require(fields ...string) *ParseError {
	var missing []string
	for _, f := range fields {
		if _, ok := fm[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return NewParseError(fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
}
