package httpserver

import (
	"errors"
	"net/http"

	gateerrors "mostar/contexts/sovereignty-trust/covenant-gate/domain/errors"
	gatehttp "mostar/contexts/sovereignty-trust/covenant-gate/transport/http"
)

func (s *Server) handleRegisterActor(w http.ResponseWriter, r *http.Request) {
	var req gatehttp.RegisterActorRequest
	if !s.decodeJSON(w, r, &req, writeGateError) {
		return
	}

	resp, err := s.gate.Handler.RegisterActorHandler(r.Context(), req)
	if err != nil {
		writeGateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetActor(w http.ResponseWriter, r *http.Request) {
	resp, err := s.gate.Handler.GetActorHandler(r.Context(), r.PathValue("name"))
	if err != nil {
		writeGateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBow(w http.ResponseWriter, r *http.Request) {
	var req gatehttp.BowRequest
	if !s.decodeJSON(w, r, &req, writeGateError) {
		return
	}

	resp, err := s.gate.Handler.BowHandler(r.Context(), req)
	if err != nil {
		writeGateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSovereigntyState(w http.ResponseWriter, r *http.Request) {
	resp, err := s.gate.Handler.SovereigntyStateHandler(r.Context())
	if err != nil {
		writeGateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req gatehttp.ExecuteRequest
	if !s.decodeJSON(w, r, &req, writeGateError) {
		return
	}

	resp, err := s.gate.Handler.ExecuteHandler(r.Context(), req)
	if err != nil {
		writeGateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeGateDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gateerrors.ErrInvalidRequest):
		writeGateError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, gateerrors.ErrActorNotFound):
		writeGateError(w, http.StatusNotFound, "actor_not_found", err.Error())
	case errors.Is(err, gateerrors.ErrNoTrustRecord):
		writeGateError(w, http.StatusNotFound, "no_trust_record", err.Error())
	case errors.Is(err, gateerrors.ErrTierNotPermitted):
		writeGateError(w, http.StatusForbidden, "tier_not_permitted", err.Error())
	default:
		writeGateError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeGateError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, gatehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
