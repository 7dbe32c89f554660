// file: internals/features/school/imports/excel/subject_columns.go
package excel

import (
	"regexp"
	"strings"
)

// Component keys as the weighting schemes name them.
const (
	ComponentCA1  = "ca1"
	ComponentCA2  = "ca2"
	ComponentCA3  = "ca3"
	ComponentCA4  = "ca4"
	ComponentCA   = "ca"
	ComponentExam = "exam"
)

// A results sheet scores a subject through suffixed headers like
// "Mathematics - CA1" or "integrated science - Exam". Columns sharing the
// same subject prefix are grouped into one entry.
type SubjectColumns struct {
	SubjectName string
	// component key -> column index
	Components map[string]int
}

var subjectSuffixRe = regexp.MustCompile(`(?i)^(.+?)\s*-\s*(ca1|ca2|ca3|ca4|ca|exam)\s*$`)

// DiscoverSubjectColumns walks the header row and groups scored component
// columns per subject, preserving the order subjects first appear in.
func DiscoverSubjectColumns(headers []string) []SubjectColumns {
	var order []string
	bySubject := map[string]*SubjectColumns{}

	for i, h := range headers {
		m := subjectSuffixRe.FindStringSubmatch(strings.TrimSpace(h))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		component := strings.ToLower(m[2])
		key := normalizeHeader(name)

		sc, ok := bySubject[key]
		if !ok {
			sc = &SubjectColumns{SubjectName: name, Components: map[string]int{}}
			bySubject[key] = sc
			order = append(order, key)
		}
		if _, dup := sc.Components[component]; !dup {
			sc.Components[component] = i
		}
	}

	out := make([]SubjectColumns, 0, len(order))
	for _, key := range order {
		out = append(out, *bySubject[key])
	}
	return out
}
