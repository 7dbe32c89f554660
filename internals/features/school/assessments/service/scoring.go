// file: internals/features/school/assessments/service/scoring.go
package service

import (
	"math"
	"sort"

	"sukuu_backend/internals/features/school/assessments/model"
)

// Band is one in-memory grade band. Tables are injected per call site; the
// two hard-coded defaults below are deliberately kept separate (WAEC scale
// for results import, letter scale for report rendering) pending product
// sign-off on unifying them.
type Band struct {
	From   int
	To     int
	Grade  string
	Remark string
}

// WAECBands is the A1..F9 scale used when a results import context has no
// band table of its own.
var WAECBands = []Band{
	{From: 80, To: 100, Grade: "A1", Remark: "Excellent"},
	{From: 75, To: 79, Grade: "B2", Remark: "Very Good"},
	{From: 70, To: 74, Grade: "B3", Remark: "Good"},
	{From: 65, To: 69, Grade: "C4", Remark: "Credit"},
	{From: 60, To: 64, Grade: "C5", Remark: "Credit"},
	{From: 55, To: 59, Grade: "C6", Remark: "Credit"},
	{From: 50, To: 54, Grade: "D7", Remark: "Pass"},
	{From: 45, To: 49, Grade: "E8", Remark: "Pass"},
	{From: 0, To: 44, Grade: "F9", Remark: "Fail"},
}

// LetterBands is the simple A..F scale used by the report-card path.
var LetterBands = []Band{
	{From: 80, To: 100, Grade: "A", Remark: "Excellent"},
	{From: 70, To: 79, Grade: "B", Remark: "Very Good"},
	{From: 60, To: 69, Grade: "C", Remark: "Good"},
	{From: 50, To: 59, Grade: "D", Remark: "Pass"},
	{From: 0, To: 49, Grade: "F", Remark: "Fail"},
}

// ComputeTotal applies a weighting scheme to raw component scores and returns
// the rounded 0-100 total. With a scheme, components absent from the raw map
// count as 0 and raw components outside the scheme are ignored. With no
// scheme (nil/empty weights) the total is the plain unweighted sum of
// whatever raw values are present.
func ComputeTotal(weights map[string]float64, raw map[string]float64) int {
	var total float64
	if len(weights) == 0 {
		for _, v := range raw {
			total += v
		}
		return int(math.Round(total))
	}
	for component, weight := range weights {
		total += raw[component] * weight / 100
	}
	return int(math.Round(total))
}

// GradeFor scans bands by descending From and returns the first band whose
// [From, To] contains total. A gap in the table leaves the grade unresolved.
func GradeFor(total int, bands []Band) (Band, bool) {
	ordered := make([]Band, len(bands))
	copy(ordered, bands)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].From > ordered[j].From })

	for _, b := range ordered {
		if total >= b.From && total <= b.To {
			return b, true
		}
	}
	return Band{}, false
}

// ComponentShare is one component's weighted contribution for report-card
// breakdowns.
type ComponentShare struct {
	Component string  `json:"component"`
	Raw       float64 `json:"raw"`
	Weight    float64 `json:"weight"`
	Weighted  float64 `json:"weighted"`
}

// Breakdown computes per-component weighted contributions for rendering.
// Raw inputs are clamped to [0,100] at render time only; import-time scoring
// rejects out-of-range raw scores instead of clamping them.
func Breakdown(weights map[string]float64, raw map[string]float64) []ComponentShare {
	components := make([]string, 0, len(weights))
	for c := range weights {
		components = append(components, c)
	}
	sort.Strings(components)

	out := make([]ComponentShare, 0, len(components))
	for _, c := range components {
		r := clamp(raw[c], 0, 100)
		w := weights[c]
		out = append(out, ComponentShare{
			Component: c,
			Raw:       r,
			Weight:    w,
			Weighted:  r * w / 100,
		})
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BandsFromModels maps stored grade-band rows into the in-memory shape.
func BandsFromModels(rows []model.GradeBandModel) []Band {
	out := make([]Band, 0, len(rows))
	for _, r := range rows {
		out = append(out, Band{
			From:   r.GradeBandFrom,
			To:     r.GradeBandTo,
			Grade:  r.GradeBandGrade,
			Remark: r.GradeBandRemark,
		})
	}
	return out
}
