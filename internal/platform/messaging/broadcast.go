package messaging

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"mostar/internal/shared/events"
)

// ErrSubscriptionClosed is returned by Next once a subscription is closed and
// its queue is drained. Closed is terminal.
var ErrSubscriptionClosed = errors.New("subscription closed")

// Broadcaster is the live fan-out layer behind the grid bus. Publish enqueues
// one envelope onto every open subscription under a single lock, so every
// subscriber observes envelopes in append order. Per-subscription queues are
// unbounded; publish volume is assumed low, so a slow consumer costs memory,
// never ordering.
type Broadcaster struct {
	mu        sync.Mutex
	subs      map[*Subscription]struct{}
	published uint64
	logger    *slog.Logger
}

// Stats are observability counters only; they never gate delivery.
type Stats struct {
	Subscribers int
	Published   uint64
}

func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{
		subs:   make(map[*Subscription]struct{}),
		logger: logger,
	}
}

func (b *Broadcaster) Publish(event events.Envelope) {
	b.mu.Lock()
	b.published++
	for sub := range b.subs {
		sub.enqueue(event)
	}
	b.mu.Unlock()

	b.logger.Debug("bus event broadcast",
		"event", "bus_broadcast",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"topic", event.Topic,
		"event_id", event.ID,
	)
}

// Subscribe opens a live, forward-only subscription. Envelopes published
// before the call are never delivered; use the durable history for backfill.
// An empty topic set means unfiltered.
func (b *Broadcaster) Subscribe(topics []string) *Subscription {
	sub := &Subscription{broadcaster: b}
	sub.cond = sync.NewCond(&sub.mu)
	if len(topics) > 0 {
		sub.filter = make(map[string]struct{}, len(topics))
		for _, topic := range topics {
			sub.filter[topic] = struct{}{}
		}
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	count := len(b.subs)
	b.mu.Unlock()

	b.logger.Info("bus subscriber connected",
		"event", "bus_subscribe",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"topics", topics,
		"subscribers", count,
	)
	return sub
}

func (b *Broadcaster) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{
		Subscribers: len(b.subs),
		Published:   b.published,
	}
}

func (b *Broadcaster) remove(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	count := len(b.subs)
	b.mu.Unlock()

	b.logger.Info("bus subscriber disconnected",
		"event", "bus_unsubscribe",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"subscribers", count,
	)
}

// Subscription is a topic-filtered view of the broadcast stream. Next is the
// only blocking wait in the bus core; a caller-supplied context cancellation
// or Close unblocks it deterministically.
type Subscription struct {
	broadcaster *Broadcaster
	filter      map[string]struct{}

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []events.Envelope
	closed bool
}

func (s *Subscription) enqueue(event events.Envelope) {
	if s.filter != nil {
		if _, ok := s.filter[event.Topic]; !ok {
			return
		}
	}
	s.mu.Lock()
	if !s.closed {
		s.queue = append(s.queue, event)
		s.cond.Signal()
	}
	s.mu.Unlock()
}

func (s *Subscription) Next(ctx context.Context) (events.Envelope, error) {
	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	})
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if len(s.queue) > 0 {
			event := s.queue[0]
			s.queue = s.queue[1:]
			return event, nil
		}
		if s.closed {
			return events.Envelope{}, ErrSubscriptionClosed
		}
		if err := ctx.Err(); err != nil {
			return events.Envelope{}, err
		}
		s.cond.Wait()
	}
}

func (s *Subscription) Close() {
	s.broadcaster.remove(s)

	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
}
