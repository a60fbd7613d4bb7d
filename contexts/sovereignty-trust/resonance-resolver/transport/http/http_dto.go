package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ResolveRequest struct {
	Evidence []float64 `json:"evidence"`
	Prior    []float64 `json:"prior,omitempty"`
	TopK     int       `json:"top_k,omitempty"`
}

type ResolveResponse struct {
	Pattern    int       `json:"pattern"`
	Confidence float64   `json:"confidence"`
	Posterior  []float64 `json:"posterior"`
	Alternates []int     `json:"alternates"`
	ElapsedMS  float64   `json:"elapsed_ms"`
	Meta       struct {
		Patterns int   `json:"patterns"`
		Contexts int   `json:"contexts"`
		Seed     int64 `json:"seed"`
	} `json:"meta"`
}
