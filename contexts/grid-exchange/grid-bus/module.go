package gridbus

import (
	"log/slog"

	httpadapter "mostar/contexts/grid-exchange/grid-bus/adapters/http"
	"mostar/contexts/grid-exchange/grid-bus/adapters/memory"
	"mostar/contexts/grid-exchange/grid-bus/application"
	"mostar/contexts/grid-exchange/grid-bus/ports"
	"mostar/internal/platform/messaging"
)

// Module is the grid-bus composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Store       ports.EventStore
	Directory   ports.IdentityDirectory
	Broadcaster *messaging.Broadcaster
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Store:       deps.Store,
		Directory:   deps.Directory,
		Broadcaster: deps.Broadcaster,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

func NewInMemoryModule(directory ports.IdentityDirectory, broadcaster *messaging.Broadcaster, logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Store:       memory.NewStore(),
		Directory:   directory,
		Broadcaster: broadcaster,
		Logger:      logger,
	})
}
