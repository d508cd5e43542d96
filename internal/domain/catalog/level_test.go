package catalog

import "testing"

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"primary":   LevelPrimary,
		"secondary": LevelSecondary,
		"higher":    LevelHigher,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q)=%q,%v want %q", in, got, ok, want)
		}
	}
	for _, in := range []string{"", "tertiary", "primary-course-details", "PRIMARY", " primary ", "Secondary"} {
		if got, ok := ParseLevel(in); ok || got != LevelNone {
			t.Fatalf("ParseLevel(%q)=%q,%v want none", in, got, ok)
		}
	}
}

func TestValid(t *testing.T) {
	for _, l := range Levels {
		if !l.Valid() {
			t.Fatalf("%q should be valid", l)
		}
	}
	for _, l := range []Level{LevelNone, "PRIMARY", "tertiary"} {
		if l.Valid() {
			t.Fatalf("%q should be invalid", l)
		}
	}
}

func TestContainerID(t *testing.T) {
	if got := LevelHigher.ContainerID(); got != "higher-course-details" {
		t.Fatalf("got=%q", got)
	}
	if got := LevelNone.ContainerID(); got != "" {
		t.Fatalf("got=%q", got)
	}
}

func TestSubjectHelpers(t *testing.T) {
	s := Subject{Name: "Physics", Courses: []string{"1. Mechanics"}, Levels: []Level{LevelHigher}}
	if c, ok := s.FirstCourse(); !ok || c != "1. Mechanics" {
		t.Fatalf("first=%q ok=%v", c, ok)
	}
	if _, ok := (Subject{}).FirstCourse(); ok {
		t.Fatalf("empty subject has no first course")
	}
	if !s.ListedIn(LevelHigher) || s.ListedIn(LevelPrimary) {
		t.Fatalf("ListedIn mismatch")
	}
	if !s.HasCourse("1. Mechanics") || s.HasCourse("2. Thermodynamics") {
		t.Fatalf("HasCourse mismatch")
	}
}
