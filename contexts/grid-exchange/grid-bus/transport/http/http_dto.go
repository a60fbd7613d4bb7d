package http

import "mostar/internal/shared/events"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PublishRequest struct {
	Origin  string         `json:"origin"`
	Topic   string         `json:"topic"`
	Payload map[string]any `json:"payload,omitempty"`
	Target  string         `json:"target,omitempty"`
	Sig     string         `json:"sig,omitempty"`
}

type PublishResponse struct {
	Event events.Envelope `json:"event"`
}

type HistoryResponse struct {
	Topic  string            `json:"topic,omitempty"`
	Events []events.Envelope `json:"events"`
	Count  int               `json:"count"`
}

type TopicCountEntry struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

type TopicsResponse struct {
	Topics []TopicCountEntry `json:"topics"`
}

type StatsResponse struct {
	Subscribers int    `json:"subscribers"`
	Published   uint64 `json:"published"`
}
