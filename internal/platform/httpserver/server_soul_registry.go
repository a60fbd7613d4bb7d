package httpserver

import (
	"errors"
	"net/http"

	soulerrors "mostar/contexts/grid-exchange/soul-registry/domain/errors"
	soulhttp "mostar/contexts/grid-exchange/soul-registry/transport/http"
)

func (s *Server) handleSoulRegister(w http.ResponseWriter, r *http.Request) {
	var req soulhttp.RegisterSoulprintRequest
	if !s.decodeJSON(w, r, &req, writeSoulError) {
		return
	}

	resp, err := s.souls.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeSoulDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSoulVerify(w http.ResponseWriter, r *http.Request) {
	resp, err := s.souls.Handler.VerifyHandler(r.Context(), r.URL.Query().Get("slug"))
	if err != nil {
		writeSoulDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSoulList(w http.ResponseWriter, r *http.Request) {
	resp, err := s.souls.Handler.ListHandler(r.Context())
	if err != nil {
		writeSoulDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeSoulDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, soulerrors.ErrInvalidRequest):
		writeSoulError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, soulerrors.ErrSoulprintNotFound):
		writeSoulError(w, http.StatusNotFound, "soulprint_not_found", err.Error())
	case errors.Is(err, soulerrors.ErrSoulprintInactive):
		writeSoulError(w, http.StatusForbidden, "soulprint_inactive", err.Error())
	default:
		writeSoulError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeSoulError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, soulhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
