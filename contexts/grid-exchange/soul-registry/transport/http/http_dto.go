package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterSoulprintRequest struct {
	Slug             string `json:"slug"`
	DisplayName      string `json:"display_name"`
	PublicKey        string `json:"public_key,omitempty"`
	ProvenanceSHA256 string `json:"provenance_sha256,omitempty"`
	Active           *bool  `json:"active,omitempty"`
}

type SoulprintResponse struct {
	Slug             string    `json:"slug"`
	DisplayName      string    `json:"display_name"`
	PublicKey        string    `json:"public_key,omitempty"`
	ProvenanceSHA256 string    `json:"provenance_sha256,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ListSoulprintsResponse struct {
	Soulprints []SoulprintResponse `json:"soulprints"`
	Count      int                 `json:"count"`
}
