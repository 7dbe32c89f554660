// file: internals/features/school/imports/excel/subject_columns_test.go
package excel

import "testing"

func TestDiscoverSubjectColumns(t *testing.T) {
	headers := []string{
		"Student ID", "Full Name",
		"Mathematics - CA1", "Mathematics - CA2", "Mathematics - Exam",
		"English Language - CA1", "English Language - Exam",
		"Remarks",
	}
	subjects := DiscoverSubjectColumns(headers)
	if len(subjects) != 2 {
		t.Fatalf("got %d subjects, want 2", len(subjects))
	}

	math := subjects[0]
	if math.SubjectName != "Mathematics" {
		t.Errorf("first subject = %q, want Mathematics", math.SubjectName)
	}
	if math.Components[ComponentCA1] != 2 || math.Components[ComponentCA2] != 3 || math.Components[ComponentExam] != 4 {
		t.Errorf("Mathematics components = %v", math.Components)
	}

	eng := subjects[1]
	if eng.SubjectName != "English Language" {
		t.Errorf("second subject = %q, want English Language", eng.SubjectName)
	}
	if len(eng.Components) != 2 {
		t.Errorf("English components = %v", eng.Components)
	}
}

func TestDiscoverSubjectColumnsPlainCA(t *testing.T) {
	headers := []string{"Student ID", "Science - CA", "Science - Exam"}
	subjects := DiscoverSubjectColumns(headers)
	if len(subjects) != 1 {
		t.Fatalf("got %d subjects, want 1", len(subjects))
	}
	if subjects[0].Components[ComponentCA] != 1 || subjects[0].Components[ComponentExam] != 2 {
		t.Errorf("components = %v", subjects[0].Components)
	}
}

func TestDiscoverSubjectColumnsGroupsCaseInsensitively(t *testing.T) {
	headers := []string{"MATHEMATICS - ca1", "Mathematics - EXAM"}
	subjects := DiscoverSubjectColumns(headers)
	if len(subjects) != 1 {
		t.Fatalf("case variants should group into one subject, got %d", len(subjects))
	}
	if len(subjects[0].Components) != 2 {
		t.Errorf("components = %v", subjects[0].Components)
	}
}

func TestDiscoverSubjectColumnsIgnoresUnsuffixed(t *testing.T) {
	headers := []string{"Student ID", "Full Name", "Class", "Attendance"}
	if subjects := DiscoverSubjectColumns(headers); len(subjects) != 0 {
		t.Errorf("expected no subjects, got %v", subjects)
	}
}
