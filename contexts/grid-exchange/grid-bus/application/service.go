package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "mostar/contexts/grid-exchange/grid-bus/domain/errors"
	"mostar/contexts/grid-exchange/grid-bus/domain/services"
	"mostar/contexts/grid-exchange/grid-bus/ports"
	"mostar/internal/platform/messaging"
	"mostar/internal/shared/events"
)

const (
	defaultHistoryLimit = 100
	defaultTopicsLimit  = 32
)

type Service struct {
	Store       ports.EventStore
	Directory   ports.IdentityDirectory
	Broadcaster *messaging.Broadcaster
	Logger      *slog.Logger
}

type PublishInput struct {
	Origin  string
	Topic   string
	Payload map[string]any
	Target  string
	Sig     string
}

// Publish gates on identity, appends durably, then hands the stored envelope
// to the broadcaster. A publish that fails any gate leaves no trace in the
// log and reaches no subscriber.
func (s Service) Publish(ctx context.Context, input PublishInput) (events.Envelope, error) {
	origin := strings.TrimSpace(input.Origin)
	topic := strings.TrimSpace(input.Topic)
	target := strings.TrimSpace(input.Target)

	if origin == "" {
		return events.Envelope{}, domainerrors.ErrInvalidRequest
	}
	if !services.ValidTopic(topic) {
		return events.Envelope{}, domainerrors.ErrInvalidTopic
	}

	active, err := s.Directory.IsActive(ctx, origin)
	if err != nil {
		return events.Envelope{}, err
	}
	if !active {
		return events.Envelope{}, domainerrors.ErrOriginNotActive
	}
	if target != "" {
		active, err := s.Directory.IsActive(ctx, target)
		if err != nil {
			return events.Envelope{}, err
		}
		if !active {
			return events.Envelope{}, domainerrors.ErrTargetNotFound
		}
	}

	stored, err := s.Store.Append(ctx, events.Envelope{
		Topic:   topic,
		Origin:  origin,
		Target:  target,
		Payload: input.Payload,
		Sig:     input.Sig,
	})
	if err != nil {
		return events.Envelope{}, err
	}
	s.Broadcaster.Publish(stored)

	resolveLogger(s.Logger).Info("bus event published",
		"event", "bus_published",
		"module", "grid-exchange/grid-bus",
		"layer", "application",
		"topic", stored.Topic,
		"origin", stored.Origin,
		"event_id", stored.ID,
	)
	return stored, nil
}

// History returns the most recent limit events for a topic, oldest first. An
// empty topic spans the whole log.
func (s Service) History(ctx context.Context, topic string, limit int) ([]events.Envelope, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.Store.History(ctx, strings.TrimSpace(topic), limit)
}

func (s Service) Topics(ctx context.Context, limit int) ([]ports.TopicCount, error) {
	if limit <= 0 {
		limit = defaultTopicsLimit
	}
	return s.Store.TopicCounts(ctx, limit)
}

// Subscribe opens a live forward-only stream; nothing already appended is
// replayed. An empty topic set means every topic.
func (s Service) Subscribe(topics []string) *messaging.Subscription {
	return s.Broadcaster.Subscribe(topics)
}

func (s Service) Stats() messaging.Stats {
	return s.Broadcaster.Stats()
}
