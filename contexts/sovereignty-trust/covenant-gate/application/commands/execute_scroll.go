package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"mostar/contexts/sovereignty-trust/covenant-gate/application"
	domainerrors "mostar/contexts/sovereignty-trust/covenant-gate/domain/errors"
	"mostar/contexts/sovereignty-trust/covenant-gate/domain/services"
	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
)

type ExecuteScrollUseCase struct {
	Ledger      ports.TrustLedger
	Resonance   ports.ResonanceSource
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type ExecuteInput struct {
	Actor  string
	Scroll string
	Params map[string]any
}

// ExecutionDescriptor is the no-op placeholder for real task dispatch; the
// contract here is authorize or don't.
type ExecutionDescriptor struct {
	ExecutionID  string
	Effect       string
	ScrollLength int
}

// ExecuteResult is a soft outcome: a sub-threshold resonance is reported with
// the achieved score rather than raised, so callers can inspect it.
type ExecuteResult struct {
	OK        bool
	Reason    string
	Actor     string
	Tier      string
	Resonance float64
	Ran       *ExecutionDescriptor
}

func (uc ExecuteScrollUseCase) Execute(ctx context.Context, input ExecuteInput) (ExecuteResult, error) {
	actor := strings.TrimSpace(input.Actor)
	if actor == "" {
		return ExecuteResult{}, domainerrors.ErrInvalidRequest
	}

	mark, found, err := uc.Ledger.LatestMark(ctx, actor)
	if err != nil {
		return ExecuteResult{}, err
	}
	if !found {
		return ExecuteResult{}, domainerrors.ErrNoTrustRecord
	}
	if mark.Tier != ports.TierAllied && mark.Tier != ports.TierVassal {
		return ExecuteResult{}, fmt.Errorf("tier %q: %w", mark.Tier, domainerrors.ErrTierNotPermitted)
	}

	// The stored resonance is not reused: every scroll earns a fresh score
	// from its own content.
	paramsLength := 0
	if input.Params != nil {
		raw, err := json.Marshal(input.Params)
		if err != nil {
			return ExecuteResult{}, domainerrors.ErrInvalidRequest
		}
		paramsLength = len(raw)
	}
	contexts := uc.Resonance.ContextCount()
	evidence := make([]float64, contexts)
	evidence[(len(input.Scroll)+paramsLength)%contexts] = 1.0

	confidence, err := uc.Resonance.Score(ctx, evidence)
	if err != nil {
		return ExecuteResult{}, err
	}

	logger := application.ResolveLogger(uc.Logger)
	if confidence < services.CovenantMinimum {
		logger.Info("scroll rejected below covenant threshold",
			"event", "scroll_rejected",
			"module", "sovereignty-trust/covenant-gate",
			"layer", "application",
			"actor", actor,
			"tier", mark.Tier,
			"resonance", confidence,
		)
		return ExecuteResult{
			OK: false,
			Reason: fmt.Sprintf("resonance %.3f below covenant threshold %.2f",
				confidence, services.CovenantMinimum),
			Actor:     actor,
			Tier:      mark.Tier,
			Resonance: confidence,
		}, nil
	}

	executionID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return ExecuteResult{}, err
	}

	logger.Info("scroll authorized",
		"event", "scroll_authorized",
		"module", "sovereignty-trust/covenant-gate",
		"layer", "application",
		"actor", actor,
		"tier", mark.Tier,
		"resonance", confidence,
		"execution_id", executionID,
	)
	return ExecuteResult{
		OK:        true,
		Actor:     actor,
		Tier:      mark.Tier,
		Resonance: confidence,
		Ran: &ExecutionDescriptor{
			ExecutionID:  executionID,
			Effect:       "no-op",
			ScrollLength: len(input.Scroll),
		},
	}, nil
}
