package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/interviewpro/modules/reports"
	"github.com/dmitrymomot/interviewpro/modules/reports/views"
	"github.com/dmitrymomot/interviewpro/pkg/config"
	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
	"github.com/dmitrymomot/interviewpro/pkg/environment"
	"github.com/dmitrymomot/interviewpro/pkg/httpserver"
	"github.com/dmitrymomot/interviewpro/pkg/logger"
	"github.com/dmitrymomot/interviewpro/pkg/requestid"
	"github.com/dmitrymomot/interviewpro/pkg/session"
	entitlementsvc "github.com/dmitrymomot/interviewpro/svc/entitlement"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"interviewpro"`
	// PlansFile replaces the embedded plan catalog when set.
	PlansFile string `env:"PLANS_FILE"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("interviewpro stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg     appConfig
		httpCfg    httpserver.Config
		sessionCfg session.Config
	)
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&httpCfg),
		config.Load(&sessionCfg),
	); err != nil {
		return err
	}

	env, err := environment.Parse(appCfg.Env)
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	catalog, err := loadCatalog(appCfg.PlansFile)
	if err != nil {
		return err
	}

	registry := entitlementsvc.NewRegistry(entitlementsvc.WithLogger(log))
	store := session.NewMemoryStore(sessionCfg.CleanupInterval, registry.OnSessionExpire)
	sessions := session.NewFromConfig(sessionCfg, session.WithStore(store))

	reportsSvc := reports.NewService(catalog, registry, reports.StaticReports{}, views.Default(),
		reports.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.RealIP,
		middleware.Recoverer,
		environment.Middleware(env),
	)
	r.Get("/health", httpserver.Health)
	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)
		r.Mount("/", reportsSvc.Handle())
	})

	srv := httpserver.New(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithOnShutdown(func(context.Context) error {
			return store.Close()
		}),
	)

	log.InfoContext(ctx, "starting interviewpro",
		slog.String("addr", httpCfg.Addr),
		slog.Int("plans", len(catalog.ListPlans())),
	)
	return srv.Run(ctx, r)
}

func loadCatalog(path string) (*entitlement.Catalog, error) {
	if path == "" {
		return entitlement.DefaultCatalog(), nil
	}
	catalog, err := entitlement.LoadCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("load plans from %s: %w", path, err)
	}
	return catalog, nil
}
