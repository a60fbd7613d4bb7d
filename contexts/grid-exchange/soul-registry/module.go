package soulregistry

import (
	"log/slog"

	httpadapter "mostar/contexts/grid-exchange/soul-registry/adapters/http"
	"mostar/contexts/grid-exchange/soul-registry/adapters/memory"
	"mostar/contexts/grid-exchange/soul-registry/application"
	"mostar/contexts/grid-exchange/soul-registry/ports"
)

// Module is the soul-registry composition root exposed to runtime wiring. The
// Service is handed to the bus so it can gate publishes on identity.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Repo   ports.SoulprintRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	return NewModule(Dependencies{
		Repo:   store,
		Clock:  store,
		Logger: logger,
	})
}
