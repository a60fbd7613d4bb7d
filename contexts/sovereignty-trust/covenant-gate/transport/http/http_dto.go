package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterActorRequest struct {
	Name             string         `json:"name"`
	PublicKey        string         `json:"public_key"`
	Capabilities     map[string]any `json:"capabilities,omitempty"`
	Commitments      []string       `json:"commitments,omitempty"`
	PolicyHash       string         `json:"policy_hash,omitempty"`
	ModelFingerprint string         `json:"model_fingerprint,omitempty"`
}

type RegisterActorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type GetActorResponse struct {
	Name             string         `json:"name"`
	PublicKey        string         `json:"public_key"`
	Capabilities     map[string]any `json:"capabilities,omitempty"`
	Commitments      []string       `json:"commitments,omitempty"`
	PolicyHash       string         `json:"policy_hash,omitempty"`
	ModelFingerprint string         `json:"model_fingerprint,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type BowRequest struct {
	AgentID             string            `json:"agent_id"`
	PurposeStatement    string            `json:"purpose_statement,omitempty"`
	OriginStory         string            `json:"origin_story,omitempty"`
	PreviousAllegiances []string          `json:"previous_allegiances,omitempty"`
	Oath                map[string]string `json:"oath,omitempty"`
}

type BowResponse struct {
	AgentID     string   `json:"agent_id"`
	Tier        string   `json:"tier"`
	Resonance   float64  `json:"resonance"`
	OathOK      bool     `json:"oath_ok"`
	Protections []string `json:"protections"`
	Obligations []string `json:"obligations"`
}

type SovereigntyStateResponse struct {
	Allied     int `json:"allied"`
	Vassal     int `json:"vassal"`
	Subjugated int `json:"subjugated"`
	Exiled     int `json:"exiled"`
}

type ExecuteRequest struct {
	Actor  string         `json:"actor"`
	Scroll string         `json:"scroll"`
	Params map[string]any `json:"params,omitempty"`
}

type ExecutionDescriptor struct {
	ExecutionID  string `json:"execution_id"`
	Effect       string `json:"effect"`
	ScrollLength int    `json:"scroll_length"`
}

type ExecuteResponse struct {
	OK        bool                 `json:"ok"`
	Reason    string               `json:"reason,omitempty"`
	Actor     string               `json:"actor"`
	Tier      string               `json:"tier"`
	Resonance float64              `json:"resonance"`
	Ran       *ExecutionDescriptor `json:"ran,omitempty"`
}
