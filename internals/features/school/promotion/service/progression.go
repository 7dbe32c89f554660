// file: internals/features/school/promotion/service/progression.go
package service

import (
	"regexp"
	"strings"
)

// ProgressionSequence is the canonical ordered curriculum ladder. The last
// real class is SHS 3; the promotion target beyond it is graduation, not a
// class row.
var ProgressionSequence = []string{
	"KG 1", "KG 2",
	"Class 1", "Class 2", "Class 3", "Class 4", "Class 5", "Class 6",
	"JHS 1", "JHS 2", "JHS 3",
	"SHS 1", "SHS 2", "SHS 3",
}

const graduationIndex = 13 // SHS 3

type classPattern struct {
	re     *regexp.Regexp
	prefix string // canonical stage name; the captured digit is appended
}

// Real-world spellings seen in store data: "p1", "Primary 3", "basic 5",
// "jss2", "junior high 1", "sss 3", etc.
var classPatterns = []classPattern{
	{regexp.MustCompile(`^(?:kg|kindergarten)\s*([12])$`), "KG"},
	{regexp.MustCompile(`^(?:p|primary|basic|class)\s*([1-6])$`), "Class"},
	{regexp.MustCompile(`^(?:jhs|jss|junior high(?: school)?)\s*([1-3])$`), "JHS"},
	{regexp.MustCompile(`^(?:shs|sss|senior high(?: school)?)\s*([1-3])$`), "SHS"},
}

// NormalizeClassName lowercases, collapses whitespace, and maps common
// variants onto the canonical spelling. Returns "" when the name cannot be
// placed on the ladder.
func NormalizeClassName(name string) string {
	n := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	if n == "" {
		return ""
	}
	for _, p := range classPatterns {
		if m := p.re.FindStringSubmatch(n); m != nil {
			return p.prefix + " " + m[1]
		}
	}
	// already canonical?
	for _, canonical := range ProgressionSequence {
		if strings.EqualFold(canonical, n) {
			return canonical
		}
	}
	return ""
}

// ProgressionIndex places a class name on the ladder; -1 when unrecognized.
func ProgressionIndex(name string) int {
	canonical := NormalizeClassName(name)
	if canonical == "" {
		return -1
	}
	for i, c := range ProgressionSequence {
		if c == canonical {
			return i
		}
	}
	return -1
}

// NextClassName returns the class one rung up, or "" when the student is at
// the terminal class (graduation instead) or the name is unrecognized.
func NextClassName(name string) string {
	idx := ProgressionIndex(name)
	if idx < 0 || idx+1 >= len(ProgressionSequence) {
		return ""
	}
	return ProgressionSequence[idx+1]
}

// ShouldGraduate is true exactly when the class sits at the top of the
// ladder.
func ShouldGraduate(name string) bool {
	return ProgressionIndex(name) == graduationIndex
}
