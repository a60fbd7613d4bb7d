package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	gridbus "mostar/contexts/grid-exchange/grid-bus"
	buspostgres "mostar/contexts/grid-exchange/grid-bus/adapters/postgres"
	soulregistry "mostar/contexts/grid-exchange/soul-registry"
	soulpostgres "mostar/contexts/grid-exchange/soul-registry/adapters/postgres"
	covenantgate "mostar/contexts/sovereignty-trust/covenant-gate"
	gatepostgres "mostar/contexts/sovereignty-trust/covenant-gate/adapters/postgres"
	resonanceresolver "mostar/contexts/sovereignty-trust/resonance-resolver"
	"mostar/internal/platform/config"
	"mostar/internal/platform/db"
	"mostar/internal/platform/httpserver"
	"mostar/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	resolver, err := resonanceresolver.NewModule(resonanceresolver.Dependencies{
		Patterns: cfg.ResolverPatterns,
		Contexts: cfg.ResolverContexts,
		Seed:     cfg.ResolverSeed,
		TopK:     cfg.ResolverTopK,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	broadcaster := messaging.NewBroadcaster(logger)

	var (
		pg    *db.Postgres
		gate  covenantgate.Module
		souls soulregistry.Module
		bus   gridbus.Module
	)
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(
			gatepostgres.Migrate,
			soulpostgres.Migrate,
			buspostgres.Migrate,
		); err != nil {
			_ = pg.Close()
			return nil, err
		}

		gateRepo := gatepostgres.NewRepository(pg.DB, logger)
		gate = covenantgate.NewModule(covenantgate.Dependencies{
			Actors:      gateRepo,
			Ledger:      gateRepo,
			Resonance:   resolver.Service,
			Clock:       gatepostgres.SystemClock{},
			IDGenerator: gatepostgres.UUIDGenerator{},
			Logger:      logger,
		})
		souls = soulregistry.NewModule(soulregistry.Dependencies{
			Repo:   soulpostgres.NewRepository(pg.DB, logger),
			Clock:  soulpostgres.SystemClock{},
			Logger: logger,
		})
		bus = gridbus.NewModule(gridbus.Dependencies{
			Store:       buspostgres.NewStore(pg.DB, logger),
			Directory:   souls.Service,
			Broadcaster: broadcaster,
			Logger:      logger,
		})
	} else {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory stores",
			"event", "bootstrap_memory_mode",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		souls = soulregistry.NewInMemoryModule(logger)
		gate = covenantgate.NewInMemoryModule(resolver.Service, logger)
		bus = gridbus.NewInMemoryModule(souls.Service, broadcaster, logger)
	}

	server := httpserver.New(resolver, gate, souls, bus, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
