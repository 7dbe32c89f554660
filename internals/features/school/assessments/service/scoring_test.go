// file: internals/features/school/assessments/service/scoring_test.go
package service

import (
	"testing"

	"sukuu_backend/internals/features/school/assessments/model"
)

func TestComputeTotalWeighted(t *testing.T) {
	tests := []struct {
		name    string
		weights map[string]float64
		raw     map[string]float64
		want    int
	}{
		{
			name:    "ca exam split",
			weights: map[string]float64{"ca": 30, "exam": 70},
			raw:     map[string]float64{"ca": 80, "exam": 60},
			want:    66, // 80*0.3 + 60*0.7
		},
		{
			name:    "multi ca scheme",
			weights: map[string]float64{"ca1": 10, "ca2": 10, "ca3": 10, "ca4": 10, "exam": 60},
			raw:     map[string]float64{"ca1": 100, "ca2": 100, "ca3": 100, "ca4": 100, "exam": 50},
			want:    70,
		},
		{
			name:    "missing component counts as zero",
			weights: map[string]float64{"ca": 30, "exam": 70},
			raw:     map[string]float64{"exam": 60},
			want:    42,
		},
		{
			name:    "raw component outside scheme ignored",
			weights: map[string]float64{"exam": 100},
			raw:     map[string]float64{"exam": 55, "ca1": 90},
			want:    55,
		},
		{
			name:    "rounding",
			weights: map[string]float64{"ca": 30, "exam": 70},
			raw:     map[string]float64{"ca": 55, "exam": 55},
			want:    55,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTotal(tt.weights, tt.raw); got != tt.want {
				t.Errorf("ComputeTotal = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeTotalUnweightedFallback(t *testing.T) {
	raw := map[string]float64{"ca": 25.4, "exam": 60.4}
	if got := ComputeTotal(nil, raw); got != 86 {
		t.Errorf("unweighted sum = %d, want 86", got)
	}
	if got := ComputeTotal(map[string]float64{}, nil); got != 0 {
		t.Errorf("empty everything = %d, want 0", got)
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		total     int
		bands     []Band
		wantGrade string
		wantOK    bool
	}{
		{80, WAECBands, "A1", true},
		{79, WAECBands, "B2", true},
		{66, WAECBands, "C4", true},
		{44, WAECBands, "F9", true},
		{0, WAECBands, "F9", true},
		{100, WAECBands, "A1", true},
		{85, LetterBands, "A", true},
		{49, LetterBands, "F", true},
		// gap in a custom table leaves the grade unresolved
		{50, []Band{{From: 60, To: 100, Grade: "P"}}, "", false},
	}
	for _, tt := range tests {
		band, ok := GradeFor(tt.total, tt.bands)
		if ok != tt.wantOK || band.Grade != tt.wantGrade {
			t.Errorf("GradeFor(%d) = (%q, %v), want (%q, %v)",
				tt.total, band.Grade, ok, tt.wantGrade, tt.wantOK)
		}
	}
}

func TestGradeForUnsortedTable(t *testing.T) {
	bands := []Band{
		{From: 0, To: 49, Grade: "F"},
		{From: 50, To: 100, Grade: "P"},
	}
	if band, ok := GradeFor(75, bands); !ok || band.Grade != "P" {
		t.Errorf("got (%q, %v)", band.Grade, ok)
	}
}

func TestBreakdownClampsRawAtRenderTime(t *testing.T) {
	weights := map[string]float64{"ca": 30, "exam": 70}
	raw := map[string]float64{"ca": 120, "exam": -5}

	shares := Breakdown(weights, raw)
	if len(shares) != 2 {
		t.Fatalf("got %d shares", len(shares))
	}
	// sorted by component name: ca then exam
	if shares[0].Component != "ca" || shares[0].Raw != 100 || shares[0].Weighted != 30 {
		t.Errorf("ca share = %+v", shares[0])
	}
	if shares[1].Component != "exam" || shares[1].Raw != 0 || shares[1].Weighted != 0 {
		t.Errorf("exam share = %+v", shares[1])
	}
}

func TestBandsFromModels(t *testing.T) {
	rows := []model.GradeBandModel{
		{GradeBandFrom: 50, GradeBandTo: 100, GradeBandGrade: "P", GradeBandRemark: "Pass"},
		{GradeBandFrom: 0, GradeBandTo: 49, GradeBandGrade: "F", GradeBandRemark: "Fail"},
	}
	bands := BandsFromModels(rows)
	if len(bands) != 2 {
		t.Fatalf("got %d bands", len(bands))
	}
	if band, ok := GradeFor(50, bands); !ok || band.Grade != "P" {
		t.Errorf("boundary lookup = (%q, %v)", band.Grade, ok)
	}
}
