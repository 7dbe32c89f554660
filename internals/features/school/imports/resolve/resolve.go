// file: internals/features/school/imports/resolve/resolve.go
package resolve

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Snapshot is the store state fetched once per import - students and subjects
// are never queried per row.
type Snapshot struct {
	studentsByCode map[string]StudentRef
	subjects       []SubjectRef
	classes        []ClassRef
	departments    []DepartmentRef
}

type StudentRef struct {
	ID           uuid.UUID
	Code         string
	ClassID      *uuid.UUID
	DepartmentID *uuid.UUID
}

type SubjectRef struct {
	ID   uuid.UUID
	Name string
	Code string
}

type ClassRef struct {
	ID           uuid.UUID
	Name         string
	DepartmentID *uuid.UUID
}

type DepartmentRef struct {
	ID   uuid.UUID
	Name string
}

func NewSnapshot(students []StudentRef, subjects []SubjectRef, classes []ClassRef, departments []DepartmentRef) *Snapshot {
	s := &Snapshot{
		studentsByCode: make(map[string]StudentRef, len(students)),
		subjects:       subjects,
		classes:        classes,
		departments:    departments,
	}
	for _, st := range students {
		s.studentsByCode[foldKey(st.Code)] = st
	}
	return s
}

// Student is an exact match on the external student code. No fuzzy pass:
// student identifiers are authoritative, so a miss is a hard per-row failure
// at the caller.
func (s *Snapshot) Student(code string) (StudentRef, bool) {
	st, ok := s.studentsByCode[foldKey(code)]
	return st, ok
}

// Subject runs the three-tier match: exact name, exact code, then
// bidirectional substring containment. Tier-3 ties are broken
// deterministically: longest contained overlap first, then alphabetical.
func (s *Snapshot) Subject(name string) (SubjectRef, bool) {
	want := foldKey(name)
	if want == "" {
		return SubjectRef{}, false
	}

	for _, sub := range s.subjects {
		if foldKey(sub.Name) == want {
			return sub, true
		}
	}
	for _, sub := range s.subjects {
		if sub.Code != "" && foldKey(sub.Code) == want {
			return sub, true
		}
	}

	type candidate struct {
		ref     SubjectRef
		overlap int
	}
	var cands []candidate
	for _, sub := range s.subjects {
		have := foldKey(sub.Name)
		if have == "" {
			continue
		}
		if strings.Contains(have, want) || strings.Contains(want, have) {
			overlap := len(have)
			if len(want) < overlap {
				overlap = len(want)
			}
			cands = append(cands, candidate{ref: sub, overlap: overlap})
		}
	}
	if len(cands) == 0 {
		return SubjectRef{}, false
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].overlap != cands[j].overlap {
			return cands[i].overlap > cands[j].overlap
		}
		return cands[i].ref.Name < cands[j].ref.Name
	})
	return cands[0].ref, true
}

// Class resolves a class reference that may already be a primary key or a
// display name. A miss returns false; whether that fails the row is the
// caller's call (results rows need a class, roster rows do not).
func (s *Snapshot) Class(ref string) (uuid.UUID, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return uuid.Nil, false
	}
	if id, err := uuid.Parse(ref); err == nil {
		return id, true
	}
	want := foldKey(ref)
	for _, c := range s.classes {
		if foldKey(c.Name) == want {
			return c.ID, true
		}
	}
	return uuid.Nil, false
}

func (s *Snapshot) Department(ref string) (uuid.UUID, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return uuid.Nil, false
	}
	if id, err := uuid.Parse(ref); err == nil {
		return id, true
	}
	want := foldKey(ref)
	for _, d := range s.departments {
		if foldKey(d.Name) == want {
			return d.ID, true
		}
	}
	return uuid.Nil, false
}

// ClassByID is used by the results importer to recover the department that
// scopes the grade-band table.
func (s *Snapshot) ClassByID(id uuid.UUID) (ClassRef, bool) {
	for _, c := range s.classes {
		if c.ID == id {
			return c, true
		}
	}
	return ClassRef{}, false
}

func foldKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
