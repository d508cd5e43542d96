package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gorm.io/gorm"

	"github.com/yungbote/learnhub/internal/data/db"
	"github.com/yungbote/learnhub/internal/data/seed"
	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/platform/dbctx"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

// openSQLite returns a migrated in-memory database, skipping when the sqlite
// driver is unavailable in this build.
func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	svc, err := db.Open(logger.Nop(), db.DriverSQLite, dsn)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return svc.DB()
}

func defaultSubjects(t *testing.T) []catalog.Subject {
	t.Helper()
	subjects, err := seed.Default()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return subjects
}

func TestGormSubjectRepoMatchesSeed(t *testing.T) {
	gdb := openSQLite(t)
	subjects := defaultSubjects(t)
	dbc := dbctx.New(context.Background())

	if err := Seed(dbc, gdb, subjects); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Second run must not duplicate anything.
	if err := Seed(dbc, gdb, subjects); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	repo := NewSubjectRepo(gdb, logger.Nop())
	got, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff(subjects, got); diff != "" {
		t.Fatalf("catalog mismatch (-seed +db):\n%s", diff)
	}

	math, ok, err := repo.GetByName(dbc, "Mathematics")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if first, _ := math.FirstCourse(); first != "1. Algebra Basics" {
		t.Fatalf("first course=%q", first)
	}
	if _, ok, err := repo.GetByName(dbc, "Astronomy"); ok || err != nil {
		t.Fatalf("unknown subject: ok=%v err=%v", ok, err)
	}

	owner, ok, err := repo.FindByCourse(dbc, "3. Basics of Physics")
	if err != nil || !ok || owner.Name != "Science" {
		t.Fatalf("find by course: %+v ok=%v err=%v", owner, ok, err)
	}

	primary, err := repo.ListByLevel(dbc, catalog.LevelPrimary)
	if err != nil {
		t.Fatalf("by level: %v", err)
	}
	if len(primary) != 4 {
		t.Fatalf("primary subjects=%d", len(primary))
	}
}

func TestSeedDropsRemovedSubjects(t *testing.T) {
	gdb := openSQLite(t)
	dbc := dbctx.New(context.Background())
	subjects := defaultSubjects(t)

	if err := Seed(dbc, gdb, subjects); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Seed(dbc, gdb, subjects[:2]); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	got, err := NewSubjectRepo(gdb, logger.Nop()).List(dbc)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("subjects=%d", len(got))
	}
	var courses int64
	if err := gdb.Model(&catalog.CourseRecord{}).Count(&courses).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if courses != 8 {
		t.Fatalf("orphan courses left: %d", courses)
	}
}
