package ports

import (
	"context"
	"time"
)

const (
	TierAllied     = "allied"
	TierVassal     = "vassal"
	TierSubjugated = "subjugated"
	TierExiled     = "exiled"
)

// TierRank orders tiers for monotonicity checks: exiled < subjugated <
// vassal < allied.
func TierRank(tier string) int {
	switch tier {
	case TierAllied:
		return 3
	case TierVassal:
		return 2
	case TierSubjugated:
		return 1
	default:
		return 0
	}
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Actor struct {
	Name             string
	PublicKey        string
	Capabilities     map[string]any
	Commitments      []string
	PolicyHash       string
	ModelFingerprint string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TrustMark is one append-only ledger entry. The current tier for an actor is
// its most recent mark.
type TrustMark struct {
	MarkID    string
	ActorName string
	Tier      string
	Resonance float64
	OathOK    bool
	CreatedAt time.Time
}

type TierCounts struct {
	Allied     int
	Vassal     int
	Subjugated int
	Exiled     int
}

type ActorRepository interface {
	UpsertActor(ctx context.Context, actor Actor, now time.Time) (Actor, error)
	GetActor(ctx context.Context, name string) (Actor, error)
}

type TrustLedger interface {
	AppendMark(ctx context.Context, mark TrustMark) error
	LatestMark(ctx context.Context, actorName string) (TrustMark, bool, error)
	TierCounts(ctx context.Context) (TierCounts, error)
}

// ResonanceSource scores a single evidence vector; the resolver module's
// application service satisfies it.
type ResonanceSource interface {
	Score(ctx context.Context, evidence []float64) (float64, error)
	ContextCount() int
}
