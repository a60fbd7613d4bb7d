package commands

import (
	"context"
	"log/slog"
	"strings"

	"mostar/contexts/sovereignty-trust/covenant-gate/application"
	domainerrors "mostar/contexts/sovereignty-trust/covenant-gate/domain/errors"
	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
)

type RegisterActorUseCase struct {
	Actors ports.ActorRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute upserts by name: last write wins on every field except the name
// itself.
func (uc RegisterActorUseCase) Execute(ctx context.Context, actor ports.Actor) (ports.Actor, error) {
	actor.Name = strings.TrimSpace(actor.Name)
	if actor.Name == "" || strings.TrimSpace(actor.PublicKey) == "" {
		return ports.Actor{}, domainerrors.ErrInvalidRequest
	}

	stored, err := uc.Actors.UpsertActor(ctx, actor, uc.Clock.Now().UTC())
	if err != nil {
		return ports.Actor{}, err
	}

	application.ResolveLogger(uc.Logger).Info("actor registered",
		"event", "actor_registered",
		"module", "sovereignty-trust/covenant-gate",
		"layer", "application",
		"actor", stored.Name,
	)
	return stored, nil
}
