// file: internals/features/school/imports/normalize/normalize_test.go
package normalize

import "testing"

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"local 10 digit", "0241234567", "+233241234567"},
		{"local with spaces", "024 123 4567", "+233241234567"},
		{"local with dashes", "024-123-4567", "+233241234567"},
		{"already e164", "+233241234567", "+233241234567"},
		{"country code no plus", "233241234567", "+233241234567"},
		{"empty", "", ""},
		{"unrecognized passes through", "12345", "12345"},
		{"foreign number passes through", "+44 20 7946 0958", "+44 20 7946 0958"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phone(tt.in); got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"day first", "15/06/2010", "2010-06-15", true},
		{"ambiguous reads day first", "05/06/2010", "2010-06-05", true},
		{"typo month first swapped", "06/15/2010", "2010-06-15", true},
		{"iso passthrough", "2010-06-15", "2010-06-15", true},
		{"single digit parts", "5/6/2010", "2010-06-05", true},
		{"long form", "15 June 2010", "2010-06-15", true},
		{"impossible date", "32/13/2010", "", false},
		{"not a date", "soon", "", false},
		{"blank", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Date(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGender(t *testing.T) {
	tests := []struct {
		in   string
		want string // "" means nil
	}{
		{"M", GenderMale},
		{"male", GenderMale},
		{" MALE ", GenderMale},
		{"f", GenderFemale},
		{"Female", GenderFemale},
		{"", ""},
		{"unknown", ""},
		{"x", ""},
	}
	for _, tt := range tests {
		got := Gender(tt.in)
		if tt.want == "" {
			if got != nil {
				t.Errorf("Gender(%q) = %q, want nil", tt.in, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("Gender(%q) = %v, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantVal  *float64
		wantWarn bool
	}{
		{"blank is not assessed", "", nil, false},
		{"zero is a real score", "0", f(0), false},
		{"plain", "85", f(85), false},
		{"decimal", "72.5", f(72.5), false},
		{"upper bound", "100", f(100), false},
		{"over range dropped", "105", nil, true},
		{"negative dropped", "-3", nil, true},
		{"non numeric dropped", "absent", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warn := Score(tt.in)
			if (warn != "") != tt.wantWarn {
				t.Fatalf("Score(%q) warning = %q, wantWarn=%v", tt.in, warn, tt.wantWarn)
			}
			switch {
			case tt.wantVal == nil && got != nil:
				t.Errorf("Score(%q) = %v, want nil", tt.in, *got)
			case tt.wantVal != nil && (got == nil || *got != *tt.wantVal):
				t.Errorf("Score(%q) = %v, want %v", tt.in, got, *tt.wantVal)
			}
		})
	}
}

func TestClean(t *testing.T) {
	if got := Clean("  Ama   Serwaa  "); got != "Ama Serwaa" {
		t.Errorf("Clean = %q", got)
	}
}

func f(v float64) *float64 { return &v }
