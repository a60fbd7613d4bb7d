package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"mostar/contexts/grid-exchange/grid-bus/ports"
	"mostar/internal/shared/events"
)

type Store struct {
	mu sync.RWMutex

	log    []events.Envelope
	nextID int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Append(ctx context.Context, event events.Envelope) (events.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextID
	s.nextID++
	event.TS = time.Now().UTC()
	s.log = append(s.log, event)
	return event, nil
}

func (s *Store) History(ctx context.Context, topic string, limit int) ([]events.Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]events.Envelope, 0, limit)
	for _, event := range s.log {
		if topic == "" || event.Topic == topic {
			matched = append(matched, event)
		}
	}
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	out := make([]events.Envelope, len(matched))
	copy(out, matched)
	return out, nil
}

func (s *Store) TopicCounts(ctx context.Context, limit int) ([]ports.TopicCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byTopic := make(map[string]int64)
	for _, event := range s.log {
		byTopic[event.Topic]++
	}

	out := make([]ports.TopicCount, 0, len(byTopic))
	for topic, count := range byTopic {
		out = append(out, ports.TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Topic < out[j].Topic
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ ports.EventStore = (*Store)(nil)
