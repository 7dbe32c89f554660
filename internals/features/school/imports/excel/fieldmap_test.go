// file: internals/features/school/imports/excel/fieldmap_test.go
package excel

import (
	"strings"
	"testing"
)

func TestBuildFieldMapRoster(t *testing.T) {
	headers := []string{
		"Student ID", "Full Name", "Sex", "Date of Birth",
		"Phone", "Guardian Name", "Guardian Contact", "Class", "Programme",
	}
	fm := BuildFieldMap(headers, RosterAliases)

	want := map[string]int{
		FieldStudentID:     0,
		FieldFullName:      1,
		FieldGender:        2,
		FieldDateOfBirth:   3,
		FieldPhone:         4,
		FieldGuardianName:  5,
		FieldGuardianPhone: 6,
		FieldClass:         7,
		FieldDepartment:    8,
	}
	for field, idx := range want {
		if got := fm.Index(field); got != idx {
			t.Errorf("Index(%s) = %d, want %d", field, got, idx)
		}
	}
}

func TestBuildFieldMapCaseAndSpacing(t *testing.T) {
	headers := []string{"STUDENT   id", "  full NAME "}
	fm := BuildFieldMap(headers, ResultsAliases)
	if fm.Index(FieldStudentID) != 0 {
		t.Errorf("student_id not matched: %v", fm)
	}
	if fm.Index(FieldFullName) != 1 {
		t.Errorf("full_name not matched: %v", fm)
	}
}

func TestBuildFieldMapColumnTakenOnce(t *testing.T) {
	// "Guardian Name" contains both the guardian_name alias and the
	// full_name alias "name"; each column may serve only one field.
	headers := []string{"Student ID", "Guardian Name"}
	fm := BuildFieldMap(headers, RosterAliases)

	if got := fm.Index(FieldFullName); got != -1 {
		t.Errorf("full_name grabbed column %d, want unmapped", got)
	}
	if got := fm.Index(FieldGuardianName); got != 1 {
		t.Errorf("guardian_name = %d, want 1", got)
	}
}

func TestRequireListsAllMissing(t *testing.T) {
	fm := BuildFieldMap([]string{"Remarks"}, ResultsAliases)
	err := fm.Require(FieldStudentID, FieldFullName)
	if err == nil {
		t.Fatal("expected parse error")
	}
	msg := err.Error()
	if !strings.Contains(msg, FieldStudentID) || !strings.Contains(msg, FieldFullName) {
		t.Errorf("error should list every missing column, got %q", msg)
	}
}

func TestRequireOK(t *testing.T) {
	fm := BuildFieldMap([]string{"Student ID", "Full Name"}, ResultsAliases)
	if err := fm.Require(FieldStudentID, FieldFullName); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
