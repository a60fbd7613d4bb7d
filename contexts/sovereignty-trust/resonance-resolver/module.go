package resonanceresolver

import (
	"log/slog"

	httpadapter "mostar/contexts/sovereignty-trust/resonance-resolver/adapters/http"
	"mostar/contexts/sovereignty-trust/resonance-resolver/application"
	"mostar/contexts/sovereignty-trust/resonance-resolver/domain/services"
)

// Module is the resonance-resolver composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

// Dependencies captures the fixed resolver configuration. The same patterns,
// contexts, and seed always produce the same resolutions.
type Dependencies struct {
	Patterns int
	Contexts int
	Seed     int64
	TopK     int
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) (Module, error) {
	resolver, err := services.NewResolver(deps.Patterns, deps.Contexts, deps.Seed)
	if err != nil {
		return Module{}, err
	}

	service := application.Service{
		Resolver: resolver,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, TopK: deps.TopK, Logger: deps.Logger},
		Service: service,
	}, nil
}
