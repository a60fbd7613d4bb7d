package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	domainerrors "mostar/contexts/sovereignty-trust/covenant-gate/domain/errors"
	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
)

type Store struct {
	mu sync.RWMutex

	actorsByName map[string]ports.Actor
	marks        []ports.TrustMark
	sequence     uint64
}

func NewStore() *Store {
	return &Store{
		actorsByName: make(map[string]ports.Actor),
	}
}

func (s *Store) UpsertActor(ctx context.Context, actor ports.Actor, now time.Time) (ports.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(actor.Name)
	if existing, ok := s.actorsByName[name]; ok {
		actor.CreatedAt = existing.CreatedAt
	} else {
		actor.CreatedAt = now.UTC()
	}
	actor.Name = name
	actor.UpdatedAt = now.UTC()
	s.actorsByName[name] = actor
	return actor, nil
}

func (s *Store) GetActor(ctx context.Context, name string) (ports.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actor, ok := s.actorsByName[strings.TrimSpace(name)]
	if !ok {
		return ports.Actor{}, domainerrors.ErrActorNotFound
	}
	return actor, nil
}

func (s *Store) AppendMark(ctx context.Context, mark ports.TrustMark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.marks = append(s.marks, mark)
	return nil
}

func (s *Store) LatestMark(ctx context.Context, actorName string) (ports.TrustMark, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.marks) - 1; i >= 0; i-- {
		if s.marks[i].ActorName == actorName {
			return s.marks[i], true, nil
		}
	}
	return ports.TrustMark{}, false, nil
}

func (s *Store) TierCounts(ctx context.Context) (ports.TierCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts ports.TierCounts
	for _, mark := range s.marks {
		switch mark.Tier {
		case ports.TierAllied:
			counts.Allied++
		case ports.TierVassal:
			counts.Vassal++
		case ports.TierSubjugated:
			counts.Subjugated++
		default:
			counts.Exiled++
		}
	}
	return counts, nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("mark_%d", n), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.ActorRepository = (*Store)(nil)
var _ ports.TrustLedger = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
