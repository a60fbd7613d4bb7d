package httpserver

import (
	"errors"
	"net/http"

	resolvererrors "mostar/contexts/sovereignty-trust/resonance-resolver/domain/errors"
	resolverhttp "mostar/contexts/sovereignty-trust/resonance-resolver/transport/http"
)

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolverhttp.ResolveRequest
	if !s.decodeJSON(w, r, &req, writeResolverError) {
		return
	}

	resp, err := s.resolver.Handler.ResolveHandler(r.Context(), req)
	if err != nil {
		writeResolverDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeResolverDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, resolvererrors.ErrEvidenceDimension),
		errors.Is(err, resolvererrors.ErrPriorDimension):
		writeResolverError(w, http.StatusUnprocessableEntity, "dimension_mismatch", err.Error())
	case errors.Is(err, resolvererrors.ErrInvalidDimensions):
		writeResolverError(w, http.StatusBadRequest, "invalid_dimensions", err.Error())
	default:
		writeResolverError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeResolverError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, resolverhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
