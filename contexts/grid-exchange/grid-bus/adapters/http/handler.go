package httpadapter

import (
	"context"
	"log/slog"

	"mostar/contexts/grid-exchange/grid-bus/application"
	httptransport "mostar/contexts/grid-exchange/grid-bus/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) PublishHandler(
	ctx context.Context,
	req httptransport.PublishRequest,
) (httptransport.PublishResponse, error) {
	stored, err := h.Service.Publish(ctx, application.PublishInput{
		Origin:  req.Origin,
		Topic:   req.Topic,
		Payload: req.Payload,
		Target:  req.Target,
		Sig:     req.Sig,
	})
	if err != nil {
		return httptransport.PublishResponse{}, err
	}
	return httptransport.PublishResponse{Event: stored}, nil
}

func (h Handler) HistoryHandler(
	ctx context.Context,
	topic string,
	limit int,
) (httptransport.HistoryResponse, error) {
	history, err := h.Service.History(ctx, topic, limit)
	if err != nil {
		return httptransport.HistoryResponse{}, err
	}
	return httptransport.HistoryResponse{
		Topic:  topic,
		Events: history,
		Count:  len(history),
	}, nil
}

func (h Handler) TopicsHandler(
	ctx context.Context,
	limit int,
) (httptransport.TopicsResponse, error) {
	counts, err := h.Service.Topics(ctx, limit)
	if err != nil {
		return httptransport.TopicsResponse{}, err
	}

	out := make([]httptransport.TopicCountEntry, 0, len(counts))
	for _, count := range counts {
		out = append(out, httptransport.TopicCountEntry{
			Topic: count.Topic,
			Count: count.Count,
		})
	}
	return httptransport.TopicsResponse{Topics: out}, nil
}

func (h Handler) StatsHandler(ctx context.Context) httptransport.StatsResponse {
	stats := h.Service.Stats()
	return httptransport.StatsResponse{
		Subscribers: stats.Subscribers,
		Published:   stats.Published,
	}
}
