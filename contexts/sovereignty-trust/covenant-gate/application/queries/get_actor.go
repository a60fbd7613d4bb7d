package queries

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "mostar/contexts/sovereignty-trust/covenant-gate/domain/errors"
	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
)

type GetActorUseCase struct {
	Actors ports.ActorRepository
	Logger *slog.Logger
}

func (uc GetActorUseCase) Execute(ctx context.Context, name string) (ports.Actor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Actor{}, domainerrors.ErrInvalidRequest
	}
	return uc.Actors.GetActor(ctx, name)
}
