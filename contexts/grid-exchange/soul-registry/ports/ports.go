package ports

import (
	"context"
	"time"
)

// Soulprint is a registered grid identity. The slug is the stable key; every
// other field may change on re-registration.
type Soulprint struct {
	Slug             string
	DisplayName      string
	PublicKey        string
	ProvenanceSHA256 string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type SoulprintRepository interface {
	Upsert(ctx context.Context, soulprint Soulprint, now time.Time) (Soulprint, error)
	Get(ctx context.Context, slug string) (Soulprint, error)
	List(ctx context.Context) ([]Soulprint, error)
}

type Clock interface {
	Now() time.Time
}
