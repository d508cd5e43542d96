package app

import (
	"context"
	"fmt"

	"github.com/yungbote/learnhub/internal/config"
	"github.com/yungbote/learnhub/internal/data/db"
	catalogrepo "github.com/yungbote/learnhub/internal/data/repos/catalog"
	"github.com/yungbote/learnhub/internal/data/seed"
	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/platform/dbctx"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

type Repos struct {
	Subjects catalogrepo.SubjectRepo
}

// loadSeed reads the configured catalog file, or the built-in catalog.
func loadSeed(cfg *config.Config) ([]catalog.Subject, error) {
	return seed.Load(cfg.Catalog.SeedPath)
}

// wireRepos builds the catalog store. With a database driver the tables are
// migrated and reseeded on every start; the returned service must be closed.
func wireRepos(ctx context.Context, log *logger.Logger, cfg *config.Config) (Repos, *db.Service, error) {
	log.Info("Wiring repos...", "catalog_driver", cfg.Catalog.Driver)
	subjects, err := loadSeed(cfg)
	if err != nil {
		return Repos{}, nil, fmt.Errorf("load catalog seed: %w", err)
	}

	switch cfg.Catalog.Driver {
	case "", "memory":
		return Repos{Subjects: catalogrepo.NewMemorySubjectRepo(subjects)}, nil, nil
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return Repos{}, nil, fmt.Errorf("unsupported catalog driver %q", cfg.Catalog.Driver)
	}

	svc, err := db.Open(log, cfg.Catalog.Driver, cfg.Catalog.DSN)
	if err != nil {
		return Repos{}, nil, fmt.Errorf("open catalog db: %w", err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		_ = svc.Close()
		return Repos{}, nil, fmt.Errorf("catalog automigrate: %w", err)
	}
	if err := catalogrepo.Seed(dbctx.New(ctx), svc.DB(), subjects); err != nil {
		_ = svc.Close()
		return Repos{}, nil, fmt.Errorf("seed catalog: %w", err)
	}
	return Repos{Subjects: catalogrepo.NewSubjectRepo(svc.DB(), log)}, svc, nil
}
