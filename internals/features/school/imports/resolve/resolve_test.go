// file: internals/features/school/imports/resolve/resolve_test.go
package resolve

import (
	"testing"

	"github.com/google/uuid"
)

func snapshotWithSubjects(names ...string) (*Snapshot, map[string]uuid.UUID) {
	ids := map[string]uuid.UUID{}
	subjects := make([]SubjectRef, 0, len(names))
	for _, n := range names {
		id := uuid.New()
		ids[n] = id
		subjects = append(subjects, SubjectRef{ID: id, Name: n})
	}
	return NewSnapshot(nil, subjects, nil, nil), ids
}

func TestStudentExactMatchOnly(t *testing.T) {
	id := uuid.New()
	snap := NewSnapshot([]StudentRef{{ID: id, Code: "STU001"}}, nil, nil, nil)

	if got, ok := snap.Student("stu001"); !ok || got.ID != id {
		t.Errorf("case-insensitive exact match failed: %v %v", got, ok)
	}
	if got, ok := snap.Student("  STU001  "); !ok || got.ID != id {
		t.Errorf("whitespace-folded match failed: %v %v", got, ok)
	}
	if _, ok := snap.Student("STU00"); ok {
		t.Error("prefix must not match: student codes are exact only")
	}
	if _, ok := snap.Student("STU0011"); ok {
		t.Error("superstring must not match")
	}
}

func TestSubjectExactNameBeatsCode(t *testing.T) {
	mathID := uuid.New()
	snap := NewSnapshot(nil, []SubjectRef{
		{ID: uuid.New(), Name: "English", Code: "MATH"},
		{ID: mathID, Name: "Math", Code: "MTH"},
	}, nil, nil)

	got, ok := snap.Subject("Math")
	if !ok || got.ID != mathID {
		t.Errorf("exact name should win over another subject's code, got %v", got)
	}
}

func TestSubjectCodeMatch(t *testing.T) {
	id := uuid.New()
	snap := NewSnapshot(nil, []SubjectRef{
		{ID: id, Name: "Integrated Science", Code: "SCI"},
	}, nil, nil)

	got, ok := snap.Subject("sci")
	if !ok || got.ID != id {
		t.Errorf("code match failed: %v %v", got, ok)
	}
}

func TestSubjectSubstringBothDirections(t *testing.T) {
	snap, ids := snapshotWithSubjects("Mathematics")

	// sheet header shorter than stored name
	if got, ok := snap.Subject("Math"); !ok || got.ID != ids["Mathematics"] {
		t.Errorf("contained-in-stored failed: %v %v", got, ok)
	}
	// sheet header longer than stored name
	snap2, ids2 := snapshotWithSubjects("Science")
	if got, ok := snap2.Subject("Integrated Science"); !ok || got.ID != ids2["Science"] {
		t.Errorf("stored-contained-in-wanted failed: %v %v", got, ok)
	}
}

func TestSubjectTieBreakDeterministic(t *testing.T) {
	// "Science" is contained in both; the longer overlap wins.
	snap, ids := snapshotWithSubjects("Integrated Science", "Sci")
	got, ok := snap.Subject("Science")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.ID != ids["Integrated Science"] {
		t.Errorf("longest overlap should win, got %q", got.Name)
	}

	// equal overlap falls back to alphabetical order
	snap2, ids2 := snapshotWithSubjects("Science B", "Science A")
	got2, ok := snap2.Subject("Science")
	if !ok {
		t.Fatal("expected a match")
	}
	if got2.ID != ids2["Science A"] {
		t.Errorf("alphabetical tie-break failed, got %q", got2.Name)
	}
}

func TestSubjectNoMatch(t *testing.T) {
	snap, _ := snapshotWithSubjects("Mathematics", "English Language")
	if _, ok := snap.Subject("French"); ok {
		t.Error("unrelated subject must not match")
	}
	if _, ok := snap.Subject(""); ok {
		t.Error("blank must not match")
	}
}

func TestClassAcceptsIDOrName(t *testing.T) {
	classID := uuid.New()
	snap := NewSnapshot(nil, nil, []ClassRef{{ID: classID, Name: "JHS 2"}}, nil)

	if got, ok := snap.Class(classID.String()); !ok || got != classID {
		t.Errorf("uuid ref failed: %v %v", got, ok)
	}
	if got, ok := snap.Class("jhs 2"); !ok || got != classID {
		t.Errorf("name ref failed: %v %v", got, ok)
	}
	if _, ok := snap.Class("JHS 3"); ok {
		t.Error("unknown class must not resolve")
	}
}

func TestDepartmentLookup(t *testing.T) {
	depID := uuid.New()
	snap := NewSnapshot(nil, nil, nil, []DepartmentRef{{ID: depID, Name: "General Science"}})

	if got, ok := snap.Department("general   science"); !ok || got != depID {
		t.Errorf("name fold failed: %v %v", got, ok)
	}
}

func TestClassByID(t *testing.T) {
	depID := uuid.New()
	classID := uuid.New()
	snap := NewSnapshot(nil, nil, []ClassRef{{ID: classID, Name: "SHS 1", DepartmentID: &depID}}, nil)

	got, ok := snap.ClassByID(classID)
	if !ok || got.DepartmentID == nil || *got.DepartmentID != depID {
		t.Errorf("ClassByID = %v %v", got, ok)
	}
	if _, ok := snap.ClassByID(uuid.New()); ok {
		t.Error("unknown id must not resolve")
	}
}
