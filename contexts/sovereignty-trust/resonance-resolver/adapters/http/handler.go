package httpadapter

import (
	"context"
	"log/slog"

	"mostar/contexts/sovereignty-trust/resonance-resolver/application"
	httptransport "mostar/contexts/sovereignty-trust/resonance-resolver/transport/http"
)

type Handler struct {
	Service application.Service
	TopK    int
	Logger  *slog.Logger
}

func (h Handler) ResolveHandler(
	ctx context.Context,
	req httptransport.ResolveRequest,
) (httptransport.ResolveResponse, error) {
	topK := req.TopK
	if topK == 0 {
		topK = h.TopK
	}
	if topK == 0 {
		topK = 5
	}

	result, err := h.Service.Resolve(ctx, req.Evidence, req.Prior, topK)
	if err != nil {
		return httptransport.ResolveResponse{}, err
	}

	meta := h.Service.Meta()
	resp := httptransport.ResolveResponse{
		Pattern:    result.Pattern,
		Confidence: result.Confidence,
		Posterior:  result.Posterior,
		Alternates: result.Alternates,
		ElapsedMS:  result.ElapsedMS,
	}
	resp.Meta.Patterns = meta.Patterns
	resp.Meta.Contexts = meta.Contexts
	resp.Meta.Seed = meta.Seed
	return resp, nil
}
