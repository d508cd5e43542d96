package catalog

import (
	"context"
	"testing"

	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/platform/dbctx"
)

func TestMemorySubjectRepo(t *testing.T) {
	subjects := defaultSubjects(t)
	repo := NewMemorySubjectRepo(subjects)
	dbc := dbctx.New(context.Background())

	// Mutating the source must not leak into the repo.
	subjects[0].Courses[0] = "changed"

	all, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 13 {
		t.Fatalf("subjects=%d", len(all))
	}
	if all[0].Courses[0] != "1. Algebra Basics" {
		t.Fatalf("repo observed caller mutation: %q", all[0].Courses[0])
	}

	s, ok, err := repo.GetByName(dbc, "Web Development")
	if err != nil || !ok || len(s.Courses) != 4 {
		t.Fatalf("get: %+v ok=%v err=%v", s, ok, err)
	}
	if _, ok, _ := repo.GetByName(dbc, "web development"); ok {
		t.Fatalf("lookup must be exact")
	}

	higher, _ := repo.ListByLevel(dbc, catalog.LevelHigher)
	for _, h := range higher {
		if !h.ListedIn(catalog.LevelHigher) {
			t.Fatalf("%s not listed in higher", h.Name)
		}
	}
	if none, _ := repo.ListByLevel(dbc, catalog.LevelNone); len(none) != 0 {
		t.Fatalf("no subject belongs to the none level")
	}

	owner, ok, _ := repo.FindByCourse(dbc, "2. Algorithms")
	if !ok || owner.Name != "Introduction to Programming" {
		t.Fatalf("owner=%q ok=%v", owner.Name, ok)
	}
}
