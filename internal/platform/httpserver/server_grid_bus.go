package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	buserrors "mostar/contexts/grid-exchange/grid-bus/domain/errors"
	bushttp "mostar/contexts/grid-exchange/grid-bus/transport/http"
	"mostar/internal/platform/messaging"
)

func (s *Server) handleBusPublish(w http.ResponseWriter, r *http.Request) {
	var req bushttp.PublishRequest
	if !s.decodeJSON(w, r, &req, writeBusError) {
		return
	}

	resp, err := s.bus.Handler.PublishHandler(r.Context(), req)
	if err != nil {
		writeBusDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBusHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseBusLimit(w, r)
	if !ok {
		return
	}

	resp, err := s.bus.Handler.HistoryHandler(r.Context(), r.URL.Query().Get("topic"), limit)
	if err != nil {
		writeBusDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBusTopics(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseBusLimit(w, r)
	if !ok {
		return
	}

	resp, err := s.bus.Handler.TopicsHandler(r.Context(), limit)
	if err != nil {
		writeBusDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBusStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.bus.Handler.StatsHandler(r.Context()))
}

// handleBusStream serves the live feed as server-sent events, one envelope
// JSON per data frame. The stream is forward-only; nothing already in the log
// is replayed, and a dropped client simply reconnects into a fresh stream.
func (s *Server) handleBusStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeBusError(w, http.StatusInternalServerError, "streaming_unsupported", "response writer does not support streaming")
		return
	}

	var topics []string
	if raw := strings.TrimSpace(r.URL.Query().Get("topics")); raw != "" {
		for _, topic := range strings.Split(raw, ",") {
			if topic = strings.TrimSpace(topic); topic != "" {
				topics = append(topics, topic)
			}
		}
	}

	sub := s.bus.Service.Subscribe(topics)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		event, err := sub.Next(r.Context())
		if err != nil {
			if errors.Is(err, messaging.ErrSubscriptionClosed) || r.Context().Err() != nil {
				return
			}
			return
		}
		data, err := json.Marshal(event)
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return
		}
		flusher.Flush()
	}
}

func parseBusLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		writeBusError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
		return 0, false
	}
	return limit, true
}

func writeBusDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, buserrors.ErrInvalidRequest):
		writeBusError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, buserrors.ErrInvalidTopic):
		writeBusError(w, http.StatusUnprocessableEntity, "invalid_topic", err.Error())
	case errors.Is(err, buserrors.ErrOriginNotActive):
		writeBusError(w, http.StatusForbidden, "origin_not_active", err.Error())
	case errors.Is(err, buserrors.ErrTargetNotFound):
		writeBusError(w, http.StatusNotFound, "target_not_found", err.Error())
	default:
		writeBusError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeBusError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, bushttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
