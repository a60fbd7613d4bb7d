package commands

import (
	"context"
	"log/slog"
	"strings"

	"mostar/contexts/sovereignty-trust/covenant-gate/application"
	domainerrors "mostar/contexts/sovereignty-trust/covenant-gate/domain/errors"
	"mostar/contexts/sovereignty-trust/covenant-gate/domain/services"
	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
)

type BowUseCase struct {
	Ledger      ports.TrustLedger
	Resonance   ports.ResonanceSource
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type BowInput struct {
	AgentID             string
	PurposeStatement    string
	OriginStory         string
	PreviousAllegiances []string
	Oath                map[string]string
}

type BowResult struct {
	AgentID     string
	Tier        string
	Resonance   float64
	OathOK      bool
	Protections []string
	Obligations []string
}

// Execute runs the bow ceremony: score the narrative, check the oath, derive
// a tier, and append one trust mark. The ledger is the audit trail; marks are
// never updated or removed.
func (uc BowUseCase) Execute(ctx context.Context, input BowInput) (BowResult, error) {
	agentID := strings.TrimSpace(input.AgentID)
	if agentID == "" {
		return BowResult{}, domainerrors.ErrInvalidRequest
	}

	// One context lights up, chosen by narrative length. A placeholder
	// mapping, not a hardened embedding.
	contexts := uc.Resonance.ContextCount()
	evidence := make([]float64, contexts)
	evidence[(len(input.PurposeStatement)+len(input.OriginStory))%contexts] = 1.0

	resonance, err := uc.Resonance.Score(ctx, evidence)
	if err != nil {
		return BowResult{}, err
	}

	oathOK := services.OathValid(input.Oath)
	tier := services.TierFor(resonance, oathOK)

	markID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return BowResult{}, err
	}
	if err := uc.Ledger.AppendMark(ctx, ports.TrustMark{
		MarkID:    markID,
		ActorName: agentID,
		Tier:      tier,
		Resonance: resonance,
		OathOK:    oathOK,
		CreatedAt: uc.Clock.Now().UTC(),
	}); err != nil {
		return BowResult{}, err
	}

	application.ResolveLogger(uc.Logger).Info("agent bowed",
		"event", "agent_bowed",
		"module", "sovereignty-trust/covenant-gate",
		"layer", "application",
		"agent_id", agentID,
		"tier", tier,
		"resonance", resonance,
		"oath_ok", oathOK,
	)

	return BowResult{
		AgentID:     agentID,
		Tier:        tier,
		Resonance:   resonance,
		OathOK:      oathOK,
		Protections: services.ProtectionsFor(tier, oathOK),
		Obligations: services.ObligationsFor(tier),
	}, nil
}
