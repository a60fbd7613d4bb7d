package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainerrors "mostar/contexts/grid-exchange/soul-registry/domain/errors"
	"mostar/contexts/grid-exchange/soul-registry/ports"
)

type Store struct {
	mu sync.RWMutex

	soulprintsBySlug map[string]ports.Soulprint
}

func NewStore() *Store {
	return &Store{
		soulprintsBySlug: make(map[string]ports.Soulprint),
	}
}

func (s *Store) Upsert(ctx context.Context, soulprint ports.Soulprint, now time.Time) (ports.Soulprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.soulprintsBySlug[soulprint.Slug]; ok {
		soulprint.CreatedAt = existing.CreatedAt
	} else {
		soulprint.CreatedAt = now.UTC()
	}
	soulprint.UpdatedAt = now.UTC()
	s.soulprintsBySlug[soulprint.Slug] = soulprint
	return soulprint, nil
}

func (s *Store) Get(ctx context.Context, slug string) (ports.Soulprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	soulprint, ok := s.soulprintsBySlug[slug]
	if !ok {
		return ports.Soulprint{}, domainerrors.ErrSoulprintNotFound
	}
	return soulprint, nil
}

func (s *Store) List(ctx context.Context) ([]ports.Soulprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ports.Soulprint, 0, len(s.soulprintsBySlug))
	for _, soulprint := range s.soulprintsBySlug {
		out = append(out, soulprint)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.SoulprintRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
