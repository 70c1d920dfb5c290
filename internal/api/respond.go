package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/septivank/energy-billing-service/internal/domain"
	"github.com/septivank/energy-billing-service/internal/pdf"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func (s *Server) json(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) error(w http.ResponseWriter, status int, code, message string) {
	s.json(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// domainError maps service errors onto HTTP statuses. Everything the domain
// signals is a recoverable caller-facing condition, never a 500.
func (s *Server) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.error(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrAlreadyPaid):
		s.error(w, http.StatusConflict, "already_paid", "bill has already been paid")
	case errors.Is(err, domain.ErrDuplicateUser):
		s.error(w, http.StatusConflict, "duplicate_user", "an account with this email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		s.error(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
	case errors.Is(err, pdf.ErrDisabled):
		s.error(w, http.StatusServiceUnavailable, "pdf_unavailable", "pdf rendering is not available")
	default:
		s.logger.Error("unhandled service error", zap.Error(err))
		s.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
