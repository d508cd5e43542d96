package services

import (
	"testing"
	"time"

	"github.com/yungbote/learnhub/internal/data/repos/catalog"
	"github.com/yungbote/learnhub/internal/data/seed"
	domain "github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/session"
)

type fixture struct {
	subjects []domain.Subject
	catalog  CatalogService
	sessions *session.MemoryStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	subjects, err := seed.Default()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	log := logger.Nop()
	return fixture{
		subjects: subjects,
		catalog:  NewCatalogService(log, catalog.NewMemorySubjectRepo(subjects)),
		sessions: session.NewMemoryStore(log, time.Hour),
	}
}
