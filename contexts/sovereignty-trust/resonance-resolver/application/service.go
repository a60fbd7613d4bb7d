package application

import (
	"context"
	"log/slog"

	"mostar/contexts/sovereignty-trust/resonance-resolver/domain/services"
)

type Service struct {
	Resolver *services.Resolver
	Logger   *slog.Logger
}

// Meta describes the fixed resolver configuration echoed back to callers so
// they can reproduce a resolution offline.
type Meta struct {
	Patterns int
	Contexts int
	Seed     int64
}

func (s Service) Resolve(
	ctx context.Context,
	evidence []float64,
	prior []float64,
	topK int,
) (services.Result, error) {
	result, err := s.Resolver.Resolve(evidence, prior, topK)
	if err != nil {
		return services.Result{}, err
	}

	resolveLogger(s.Logger).Debug("resonance resolved",
		"event", "resonance_resolved",
		"module", "sovereignty-trust/resonance-resolver",
		"layer", "application",
		"pattern", result.Pattern,
		"confidence", result.Confidence,
		"elapsed_ms", result.ElapsedMS,
	)
	return result, nil
}

// Score resolves evidence against the default prior and returns only the
// winning confidence. It satisfies the covenant gate's resonance port.
func (s Service) Score(ctx context.Context, evidence []float64) (float64, error) {
	result, err := s.Resolve(ctx, evidence, nil, 0)
	if err != nil {
		return 0, err
	}
	return result.Confidence, nil
}

// ContextCount reports the evidence dimension C.
func (s Service) ContextCount() int {
	return s.Resolver.Contexts()
}

func (s Service) Meta() Meta {
	return Meta{
		Patterns: s.Resolver.Patterns(),
		Contexts: s.Resolver.Contexts(),
		Seed:     s.Resolver.Seed(),
	}
}
