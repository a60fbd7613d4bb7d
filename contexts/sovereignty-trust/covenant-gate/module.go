package covenantgate

import (
	"log/slog"

	httpadapter "mostar/contexts/sovereignty-trust/covenant-gate/adapters/http"
	"mostar/contexts/sovereignty-trust/covenant-gate/adapters/memory"
	"mostar/contexts/sovereignty-trust/covenant-gate/application/commands"
	"mostar/contexts/sovereignty-trust/covenant-gate/application/queries"
	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
)

// Module is the covenant-gate composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Actors      ports.ActorRepository
	Ledger      ports.TrustLedger
	Resonance   ports.ResonanceSource
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			RegisterActor: commands.RegisterActorUseCase{
				Actors: deps.Actors,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Bow: commands.BowUseCase{
				Ledger:      deps.Ledger,
				Resonance:   deps.Resonance,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			ExecuteScroll: commands.ExecuteScrollUseCase{
				Ledger:      deps.Ledger,
				Resonance:   deps.Resonance,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			GetActor: queries.GetActorUseCase{
				Actors: deps.Actors,
				Logger: deps.Logger,
			},
			SovereigntyState: queries.SovereigntyStateUseCase{
				Ledger: deps.Ledger,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule wires the gate against a single in-memory store acting as
// repository, ledger, clock, and id generator at once.
func NewInMemoryModule(resonance ports.ResonanceSource, logger *slog.Logger) Module {
	store := memory.NewStore()
	return NewModule(Dependencies{
		Actors:      store,
		Ledger:      store,
		Resonance:   resonance,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
}
