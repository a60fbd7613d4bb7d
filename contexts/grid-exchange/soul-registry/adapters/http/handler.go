package httpadapter

import (
	"context"
	"log/slog"

	"mostar/contexts/grid-exchange/soul-registry/application"
	"mostar/contexts/grid-exchange/soul-registry/ports"
	httptransport "mostar/contexts/grid-exchange/soul-registry/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(
	ctx context.Context,
	req httptransport.RegisterSoulprintRequest,
) (httptransport.SoulprintResponse, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	stored, err := h.Service.Register(ctx, ports.Soulprint{
		Slug:             req.Slug,
		DisplayName:      req.DisplayName,
		PublicKey:        req.PublicKey,
		ProvenanceSHA256: req.ProvenanceSHA256,
		Active:           active,
	})
	if err != nil {
		return httptransport.SoulprintResponse{}, err
	}
	return soulprintResponse(stored), nil
}

func (h Handler) VerifyHandler(
	ctx context.Context,
	slug string,
) (httptransport.SoulprintResponse, error) {
	soulprint, err := h.Service.Verify(ctx, slug)
	if err != nil {
		return httptransport.SoulprintResponse{}, err
	}
	return soulprintResponse(soulprint), nil
}

func (h Handler) ListHandler(
	ctx context.Context,
) (httptransport.ListSoulprintsResponse, error) {
	soulprints, err := h.Service.List(ctx)
	if err != nil {
		return httptransport.ListSoulprintsResponse{}, err
	}

	out := make([]httptransport.SoulprintResponse, 0, len(soulprints))
	for _, soulprint := range soulprints {
		out = append(out, soulprintResponse(soulprint))
	}
	return httptransport.ListSoulprintsResponse{
		Soulprints: out,
		Count:      len(out),
	}, nil
}

func soulprintResponse(soulprint ports.Soulprint) httptransport.SoulprintResponse {
	return httptransport.SoulprintResponse{
		Slug:             soulprint.Slug,
		DisplayName:      soulprint.DisplayName,
		PublicKey:        soulprint.PublicKey,
		ProvenanceSHA256: soulprint.ProvenanceSHA256,
		Active:           soulprint.Active,
		CreatedAt:        soulprint.CreatedAt,
		UpdatedAt:        soulprint.UpdatedAt,
	}
}
