package ports

import (
	"context"

	"mostar/internal/shared/events"
)

// TopicCount pairs a topic with the number of events ever appended to it.
type TopicCount struct {
	Topic string
	Count int64
}

// EventStore is the durable log. Append assigns the monotonic event id and the
// timestamp; callers never choose either.
type EventStore interface {
	Append(ctx context.Context, event events.Envelope) (events.Envelope, error)
	History(ctx context.Context, topic string, limit int) ([]events.Envelope, error)
	TopicCounts(ctx context.Context, limit int) ([]TopicCount, error)
}

// IdentityDirectory answers whether a slug names a live grid identity. It is
// satisfied by the soul-registry application service.
type IdentityDirectory interface {
	IsActive(ctx context.Context, slug string) (bool, error)
}
