package httpadapter

import (
	"context"
	"log/slog"

	"mostar/contexts/sovereignty-trust/covenant-gate/application/commands"
	"mostar/contexts/sovereignty-trust/covenant-gate/application/queries"
	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
	httptransport "mostar/contexts/sovereignty-trust/covenant-gate/transport/http"
)

type Handler struct {
	RegisterActor    commands.RegisterActorUseCase
	Bow              commands.BowUseCase
	ExecuteScroll    commands.ExecuteScrollUseCase
	GetActor         queries.GetActorUseCase
	SovereigntyState queries.SovereigntyStateUseCase
	Logger           *slog.Logger
}

func (h Handler) RegisterActorHandler(
	ctx context.Context,
	req httptransport.RegisterActorRequest,
) (httptransport.RegisterActorResponse, error) {
	stored, err := h.RegisterActor.Execute(ctx, ports.Actor{
		Name:             req.Name,
		PublicKey:        req.PublicKey,
		Capabilities:     req.Capabilities,
		Commitments:      req.Commitments,
		PolicyHash:       req.PolicyHash,
		ModelFingerprint: req.ModelFingerprint,
	})
	if err != nil {
		return httptransport.RegisterActorResponse{}, err
	}
	return httptransport.RegisterActorResponse{
		ID:        stored.Name,
		Name:      stored.Name,
		CreatedAt: stored.CreatedAt,
	}, nil
}

func (h Handler) GetActorHandler(
	ctx context.Context,
	name string,
) (httptransport.GetActorResponse, error) {
	actor, err := h.GetActor.Execute(ctx, name)
	if err != nil {
		return httptransport.GetActorResponse{}, err
	}
	return httptransport.GetActorResponse{
		Name:             actor.Name,
		PublicKey:        actor.PublicKey,
		Capabilities:     actor.Capabilities,
		Commitments:      actor.Commitments,
		PolicyHash:       actor.PolicyHash,
		ModelFingerprint: actor.ModelFingerprint,
		CreatedAt:        actor.CreatedAt,
		UpdatedAt:        actor.UpdatedAt,
	}, nil
}

func (h Handler) BowHandler(
	ctx context.Context,
	req httptransport.BowRequest,
) (httptransport.BowResponse, error) {
	result, err := h.Bow.Execute(ctx, commands.BowInput{
		AgentID:             req.AgentID,
		PurposeStatement:    req.PurposeStatement,
		OriginStory:         req.OriginStory,
		PreviousAllegiances: req.PreviousAllegiances,
		Oath:                req.Oath,
	})
	if err != nil {
		return httptransport.BowResponse{}, err
	}
	return httptransport.BowResponse{
		AgentID:     result.AgentID,
		Tier:        result.Tier,
		Resonance:   result.Resonance,
		OathOK:      result.OathOK,
		Protections: result.Protections,
		Obligations: result.Obligations,
	}, nil
}

func (h Handler) SovereigntyStateHandler(
	ctx context.Context,
) (httptransport.SovereigntyStateResponse, error) {
	counts, err := h.SovereigntyState.Execute(ctx)
	if err != nil {
		return httptransport.SovereigntyStateResponse{}, err
	}
	return httptransport.SovereigntyStateResponse{
		Allied:     counts.Allied,
		Vassal:     counts.Vassal,
		Subjugated: counts.Subjugated,
		Exiled:     counts.Exiled,
	}, nil
}

func (h Handler) ExecuteHandler(
	ctx context.Context,
	req httptransport.ExecuteRequest,
) (httptransport.ExecuteResponse, error) {
	result, err := h.ExecuteScroll.Execute(ctx, commands.ExecuteInput{
		Actor:  req.Actor,
		Scroll: req.Scroll,
		Params: req.Params,
	})
	if err != nil {
		return httptransport.ExecuteResponse{}, err
	}

	resp := httptransport.ExecuteResponse{
		OK:        result.OK,
		Reason:    result.Reason,
		Actor:     result.Actor,
		Tier:      result.Tier,
		Resonance: result.Resonance,
	}
	if result.Ran != nil {
		resp.Ran = &httptransport.ExecutionDescriptor{
			ExecutionID:  result.Ran.ExecutionID,
			Effect:       result.Ran.Effect,
			ScrollLength: result.Ran.ScrollLength,
		}
	}
	return resp, nil
}
