// file: internals/features/school/imports/normalize/normalize.go
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Clean trims and collapses internal whitespace.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var nonDigitRe = regexp.MustCompile(`\D`)

// Phone normalizes a Ghanaian phone number to an E.164-ish +233 shape.
// Anything that does not fit a known shape passes through unchanged; a bad
// phone is never a reason to drop a row.
func Phone(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	digits := nonDigitRe.ReplaceAllString(s, "")
	switch {
	case len(digits) == 10 && strings.HasPrefix(digits, "0"):
		return "+233" + digits[1:]
	case (len(digits) == 12 || len(digits) == 13) && strings.HasPrefix(digits, "233"):
		return "+" + digits
	default:
		return s
	}
}

var slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// Date normalizes a birth/issue date to YYYY-MM-DD. Tries DD/MM/YYYY first,
// then YYYY-MM-DD, then a lenient last-resort parse. Ambiguous NN/NN/YYYY is
// read day-first (Ghana convention); a first number above 12 is always the
// day.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month > 12 && day <= 12 {
			day, month = month, day
		}
		if validDate(year, month, day) {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
		}
		return "", false
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), true
	}

	// last resort: common long-form locale spellings
	for _, layout := range []string{"2 January 2006", "January 2, 2006", "02-01-2006", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month && t.Year() == year
}

// Gender maps free-text gender to male/female; anything else is nil. The
// insert-path default for missing gender is an explicit importer option, not
// something hidden here.
func Gender(s string) *string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		g := GenderMale
		return &g
	case "f", "female":
		g := GenderFemale
		return &g
	default:
		return nil
	}
}

// Score parses a raw component cell. Blank means "not assessed" (nil, no
// warning). Non-numeric or out-of-range values are dropped with a warning,
// never silently clamped.
func Score(cell string) (*float64, string) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, ""
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, fmt.Sprintf("score %q is not a number", cell)
	}
	if v < 0 || v > 100 {
		return nil, fmt.Sprintf("score %v is outside 0-100", v)
	}
	return &v, ""
}
