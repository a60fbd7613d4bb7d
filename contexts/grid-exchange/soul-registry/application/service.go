package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainerrors "mostar/contexts/grid-exchange/soul-registry/domain/errors"
	"mostar/contexts/grid-exchange/soul-registry/domain/services"
	"mostar/contexts/grid-exchange/soul-registry/ports"
)

type Service struct {
	Repo   ports.SoulprintRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// Register upserts by slug: last write wins on every field except the slug and
// the creation timestamp.
func (s Service) Register(ctx context.Context, soulprint ports.Soulprint) (ports.Soulprint, error) {
	soulprint.Slug = strings.TrimSpace(soulprint.Slug)
	soulprint.DisplayName = strings.TrimSpace(soulprint.DisplayName)
	if !services.ValidSlug(soulprint.Slug) || !services.ValidDisplayName(soulprint.DisplayName) {
		return ports.Soulprint{}, domainerrors.ErrInvalidRequest
	}

	stored, err := s.Repo.Upsert(ctx, soulprint, s.Clock.Now().UTC())
	if err != nil {
		return ports.Soulprint{}, err
	}

	resolveLogger(s.Logger).Info("soulprint registered",
		"event", "soulprint_registered",
		"module", "grid-exchange/soul-registry",
		"layer", "application",
		"slug", stored.Slug,
		"active", stored.Active,
	)
	return stored, nil
}

// Verify distinguishes an unknown slug from a known but retired one, so the
// transport can answer 404 and 403 respectively.
func (s Service) Verify(ctx context.Context, slug string) (ports.Soulprint, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ports.Soulprint{}, domainerrors.ErrInvalidRequest
	}

	soulprint, err := s.Repo.Get(ctx, slug)
	if err != nil {
		return ports.Soulprint{}, err
	}
	if !soulprint.Active {
		return ports.Soulprint{}, domainerrors.ErrSoulprintInactive
	}
	return soulprint, nil
}

func (s Service) List(ctx context.Context) ([]ports.Soulprint, error) {
	return s.Repo.List(ctx)
}

// IsActive reports whether a slug names a live identity. An absent slug is not
// an error here; the caller decides what absence means.
func (s Service) IsActive(ctx context.Context, slug string) (bool, error) {
	soulprint, err := s.Repo.Get(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, domainerrors.ErrSoulprintNotFound) {
			return false, nil
		}
		return false, err
	}
	return soulprint.Active, nil
}
