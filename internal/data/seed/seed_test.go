package seed

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yungbote/learnhub/internal/domain/catalog"
)

func TestDefaultCatalog(t *testing.T) {
	subjects, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(subjects) != 13 {
		t.Fatalf("subjects=%d", len(subjects))
	}
	if subjects[0].Name != "Mathematics" || subjects[len(subjects)-1].Name != "Primary Science" {
		t.Fatalf("unexpected order: first=%q last=%q", subjects[0].Name, subjects[len(subjects)-1].Name)
	}
	for _, s := range subjects {
		if len(s.Courses) != 4 {
			t.Fatalf("%s has %d courses", s.Name, len(s.Courses))
		}
		if len(s.Levels) == 0 {
			t.Fatalf("%s is not listed in any level", s.Name)
		}
	}

	var web catalog.Subject
	for _, s := range subjects {
		if s.Name == "Web Development" {
			web = s
		}
	}
	want := []string{
		"1. HTML: Structuring the Web",
		"2. CSS: Styling Websites",
		"3. JavaScript: Making Pages Interactive",
		"4. Introduction to React Framework",
	}
	if diff := cmp.Diff(want, web.Courses); diff != "" {
		t.Fatalf("web courses mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsBadSeeds(t *testing.T) {
	cases := map[string]string{
		"duplicate":     "subjects:\n  - name: A\n  - name: A\n",
		"missing name":  "subjects:\n  - description: x\n",
		"unknown level": "subjects:\n  - name: A\n    levels: [college]\n",
		"unknown field": "subjects:\n  - name: A\n    instructor: B\n",
	}
	for name, doc := range cases {
		if _, err := Parse(strings.NewReader(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	subjects, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(subjects) != 13 {
		t.Fatalf("subjects=%d", len(subjects))
	}
}
