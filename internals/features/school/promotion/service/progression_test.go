// file: internals/features/school/promotion/service/progression_test.go
package service

import "testing"

func TestNormalizeClassName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"KG 1", "KG 1"},
		{"kindergarten 2", "KG 2"},
		{"p1", "Class 1"},
		{"P 3", "Class 3"},
		{"Primary 6", "Class 6"},
		{"basic 5", "Class 5"},
		{"class 2", "Class 2"},
		{"jhs1", "JHS 1"},
		{"JSS 2", "JHS 2"},
		{"junior high 3", "JHS 3"},
		{"junior high school 1", "JHS 1"},
		{"shs 1", "SHS 1"},
		{"SSS3", "SHS 3"},
		{"senior high school 2", "SHS 2"},
		{"  shs   2  ", "SHS 2"},
		{"Form 1", ""},
		{"Class 7", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeClassName(tt.in); got != tt.want {
			t.Errorf("NormalizeClassName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNextClassName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"KG 1", "KG 2"},
		{"KG 2", "Class 1"},
		{"Class 6", "JHS 1"},
		{"jss 3", "SHS 1"},
		{"SHS 1", "SHS 2"},
		{"SHS 3", ""}, // terminal: graduation, not another class
		{"unknown", ""},
	}
	for _, tt := range tests {
		if got := NextClassName(tt.in); got != tt.want {
			t.Errorf("NextClassName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShouldGraduate(t *testing.T) {
	if !ShouldGraduate("SHS 3") {
		t.Error("SHS 3 should graduate")
	}
	if !ShouldGraduate("sss3") {
		t.Error("sss3 should graduate")
	}
	if ShouldGraduate("SHS 2") {
		t.Error("SHS 2 should not graduate")
	}
	if ShouldGraduate("nonsense") {
		t.Error("unknown class should not graduate")
	}
}

func TestProgressionIndex(t *testing.T) {
	if got := ProgressionIndex("KG 1"); got != 0 {
		t.Errorf("KG 1 index = %d", got)
	}
	if got := ProgressionIndex("SHS 3"); got != 13 {
		t.Errorf("SHS 3 index = %d", got)
	}
	if got := ProgressionIndex("Form 2"); got != -1 {
		t.Errorf("unknown index = %d", got)
	}
}
