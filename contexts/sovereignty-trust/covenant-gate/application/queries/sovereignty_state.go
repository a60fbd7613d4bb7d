package queries

import (
	"context"
	"log/slog"

	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
)

type SovereigntyStateUseCase struct {
	Ledger ports.TrustLedger
	Logger *slog.Logger
}

// Execute aggregates the whole ledger, counting every mark ever appended per
// tier. The state is a census of ceremonies, not of current standings.
func (uc SovereigntyStateUseCase) Execute(ctx context.Context) (ports.TierCounts, error) {
	return uc.Ledger.TierCounts(ctx)
}
