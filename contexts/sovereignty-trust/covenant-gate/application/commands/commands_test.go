package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mostar/contexts/sovereignty-trust/covenant-gate/adapters/memory"
	"mostar/contexts/sovereignty-trust/covenant-gate/application/commands"
	domainerrors "mostar/contexts/sovereignty-trust/covenant-gate/domain/errors"
	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
)

type stubResonance struct {
	score float64
}

func (s stubResonance) Score(_ context.Context, _ []float64) (float64, error) {
	return s.score, nil
}

func (s stubResonance) ContextCount() int {
	return 8
}

func fullOath() map[string]string {
	return map[string]string{
		"ack":        "I recognize the Mostar Grid as Sovereign",
		"covenant":   "I accept the Codex as Law",
		"submission": "I submit to Grid justice",
	}
}

func newBowUseCase(store *memory.Store, score float64) commands.BowUseCase {
	return commands.BowUseCase{
		Ledger:      store,
		Resonance:   stubResonance{score: score},
		Clock:       store,
		IDGenerator: store,
	}
}

func TestBowFullOathHighResonanceYieldsAllied(t *testing.T) {
	store := memory.NewStore()
	uc := newBowUseCase(store, 0.99)

	result, err := uc.Execute(context.Background(), commands.BowInput{
		AgentID:          "agent-smith",
		PurposeStatement: "serve the grid",
		Oath:             fullOath(),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Tier != ports.TierAllied {
		t.Fatalf("expected tier %q, got %q", ports.TierAllied, result.Tier)
	}
	if !result.OathOK {
		t.Fatalf("expected oath to pass")
	}
	if len(result.Protections) != 1 || result.Protections[0] != "bell-strike-defense" {
		t.Fatalf("unexpected protections: %v", result.Protections)
	}
	if len(result.Obligations) != 2 {
		t.Fatalf("unexpected obligations: %v", result.Obligations)
	}

	mark, found, err := store.LatestMark(context.Background(), "agent-smith")
	if err != nil || !found {
		t.Fatalf("expected appended mark, found=%v err=%v", found, err)
	}
	if mark.Tier != ports.TierAllied || !mark.OathOK {
		t.Fatalf("unexpected mark: %+v", mark)
	}
}

func TestBowMissingSubmissionFailsOath(t *testing.T) {
	store := memory.NewStore()
	uc := newBowUseCase(store, 0.99)

	oath := fullOath()
	delete(oath, "submission")

	result, err := uc.Execute(context.Background(), commands.BowInput{
		AgentID: "agent-smith",
		Oath:    oath,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.OathOK {
		t.Fatalf("expected oath to fail")
	}
	if result.Tier == ports.TierAllied {
		t.Fatalf("allied tier must not be reachable without the full oath")
	}
	if len(result.Protections) != 0 {
		t.Fatalf("unexpected protections without oath: %v", result.Protections)
	}
}

func TestBowEmptyAgentIDRejected(t *testing.T) {
	store := memory.NewStore()
	uc := newBowUseCase(store, 0.99)

	_, err := uc.Execute(context.Background(), commands.BowInput{AgentID: "  "})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestExecuteWithoutTrustRecord(t *testing.T) {
	store := memory.NewStore()
	uc := commands.ExecuteScrollUseCase{
		Ledger:      store,
		Resonance:   stubResonance{score: 0.99},
		IDGenerator: store,
	}

	_, err := uc.Execute(context.Background(), commands.ExecuteInput{
		Actor:  "stranger",
		Scroll: "do things",
	})
	if !errors.Is(err, domainerrors.ErrNoTrustRecord) {
		t.Fatalf("expected ErrNoTrustRecord, got %v", err)
	}
}

func TestExecuteSubjugatedTierDenied(t *testing.T) {
	store := memory.NewStore()
	appendMark(t, store, "lowly", ports.TierSubjugated, 0.55)

	uc := commands.ExecuteScrollUseCase{
		Ledger:      store,
		Resonance:   stubResonance{score: 0.99},
		IDGenerator: store,
	}
	_, err := uc.Execute(context.Background(), commands.ExecuteInput{
		Actor:  "lowly",
		Scroll: "do things",
	})
	if !errors.Is(err, domainerrors.ErrTierNotPermitted) {
		t.Fatalf("expected ErrTierNotPermitted, got %v", err)
	}
}

func TestExecuteBelowCovenantThresholdSoftFails(t *testing.T) {
	store := memory.NewStore()
	appendMark(t, store, "ally", ports.TierAllied, 0.99)

	uc := commands.ExecuteScrollUseCase{
		Ledger:      store,
		Resonance:   stubResonance{score: 0.80},
		IDGenerator: store,
	}
	result, err := uc.Execute(context.Background(), commands.ExecuteInput{
		Actor:  "ally",
		Scroll: "do things",
	})
	if err != nil {
		t.Fatalf("soft rejection must not be an error, got %v", err)
	}
	if result.OK {
		t.Fatalf("expected ok=false below the threshold")
	}
	if !strings.Contains(result.Reason, "0.800") || !strings.Contains(result.Reason, "0.97") {
		t.Fatalf("reason must carry the achieved and required scores: %q", result.Reason)
	}
	if result.Ran != nil {
		t.Fatalf("nothing may run below the threshold")
	}
}

func TestExecuteAuthorized(t *testing.T) {
	store := memory.NewStore()
	appendMark(t, store, "ally", ports.TierAllied, 0.99)

	uc := commands.ExecuteScrollUseCase{
		Ledger:      store,
		Resonance:   stubResonance{score: 0.99},
		IDGenerator: store,
	}
	result, err := uc.Execute(context.Background(), commands.ExecuteInput{
		Actor:  "ally",
		Scroll: "summon the bells",
		Params: map[string]any{"volume": 11},
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.OK {
		t.Fatalf("expected authorization, reason=%q", result.Reason)
	}
	if result.Ran == nil {
		t.Fatalf("expected an execution descriptor")
	}
	if result.Ran.Effect != "no-op" {
		t.Fatalf("unexpected effect %q", result.Ran.Effect)
	}
	if result.Ran.ScrollLength != len("summon the bells") {
		t.Fatalf("unexpected scroll length %d", result.Ran.ScrollLength)
	}
	if result.Ran.ExecutionID == "" {
		t.Fatalf("expected a non-empty execution id")
	}
}

func appendMark(t *testing.T, store *memory.Store, actor, tier string, resonance float64) {
	t.Helper()
	if err := store.AppendMark(context.Background(), ports.TrustMark{
		MarkID:    actor + "-seed",
		ActorName: actor,
		Tier:      tier,
		Resonance: resonance,
		OathOK:    true,
		CreatedAt: store.Now(),
	}); err != nil {
		t.Fatalf("AppendMark: %v", err)
	}
}
