package events

import "time"

// Envelope is the canonical bus event shape used across Mostar.
// ID and TS are assigned by the durable store on append; everything else is
// immutable caller input.
type Envelope struct {
	ID      int64          `json:"id"`
	TS      time.Time      `json:"ts"`
	Topic   string         `json:"topic"`
	Origin  string         `json:"origin"`
	Target  string         `json:"target,omitempty"`
	Payload map[string]any `json:"payload"`
	Sig     string         `json:"sig,omitempty"`
}
