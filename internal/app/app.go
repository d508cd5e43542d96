package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/learnhub/internal/config"
	"github.com/yungbote/learnhub/internal/data/db"
	apphttp "github.com/yungbote/learnhub/internal/http"
	"github.com/yungbote/learnhub/internal/observability"
	"github.com/yungbote/learnhub/internal/platform/logger"
	"github.com/yungbote/learnhub/internal/services"
	"github.com/yungbote/learnhub/internal/session"
)

type App struct {
	Log      *logger.Logger
	Cfg      *config.Config
	DB       *db.Service
	Repos    Repos
	Services Services
	Sessions session.Store
	Metrics  *observability.Metrics
	Router   *gin.Engine

	server       *apphttp.Server
	memSessions  *session.MemoryStore
	closers      []func() error
	otelShutdown func(context.Context) error
}

// New wires the whole service from cfg. On error everything opened so far is
// released.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (_ *App, err error) {
	a := &App{Log: log, Cfg: cfg}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.otelShutdown = observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.OTel.ServiceName,
		Environment: cfg.Env,
		Version:     cfg.OTel.Version,
	})
	a.Metrics = observability.Init()

	a.Repos, a.DB, err = wireRepos(ctx, log, cfg)
	if err != nil {
		return nil, err
	}
	if a.DB != nil {
		a.closers = append(a.closers, a.DB.Close)
	}

	if err := a.wireSessions(ctx); err != nil {
		return nil, err
	}

	a.Services, err = wireServices(ctx, log, cfg, a.Repos, a.Sessions, a.Metrics)
	if err != nil {
		return nil, err
	}
	handlers, err := wireHandlers(log, cfg, a.Services)
	if err != nil {
		return nil, err
	}
	a.Router = wireRouter(log, cfg, handlers, a.Metrics)
	a.server = apphttp.NewServer(apphttp.ServerConfig{
		Addr:              cfg.HTTP.Addr,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout.Duration,
		IdleTimeout:       cfg.HTTP.IdleTimeout.Duration,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout.Duration,
	}, a.Router)
	return a, nil
}

func (a *App) wireSessions(ctx context.Context) error {
	sc := a.Cfg.Session
	a.Log.Info("Wiring session store...", "store", sc.Store)
	switch sc.Store {
	case "redis":
		rdb, err := session.DialRedis(ctx, sc.RedisAddr, sc.RedisPassword, sc.RedisDB)
		if err != nil {
			return fmt.Errorf("init redis sessions: %w", err)
		}
		store := session.NewRedisStore(a.Log, rdb, sc.RedisPrefix, sc.TTL.Duration)
		a.closers = append(a.closers, store.Close)
		a.Sessions = store
	default:
		a.memSessions = session.NewMemoryStore(a.Log, sc.TTL.Duration)
		a.Sessions = a.memSessions
	}
	return nil
}

// Run serves HTTP until ctx is cancelled. The memory session janitor runs
// alongside the server and stops with it.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return errors.New("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.HTTP.Addr)
		return a.server.Run(gctx)
	})
	if a.memSessions != nil {
		g.Go(func() error {
			return a.memSessions.RunJanitor(gctx, a.Cfg.Session.SweepInterval.Duration)
		})
	}
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Log.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
		a.otelShutdown = nil
	}
	a.Log.Sync()
}

// OpenCatalog builds only the catalog, for commands that do not serve HTTP.
func OpenCatalog(ctx context.Context, cfg *config.Config, log *logger.Logger) (services.CatalogService, func(), error) {
	repos, svc, err := wireRepos(ctx, log, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if svc != nil {
			_ = svc.Close()
		}
	}
	return services.NewCatalogService(log, repos.Subjects), closeFn, nil
}
