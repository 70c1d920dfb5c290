package api

import (
	"encoding/json"
	"net/http"

	"github.com/septivank/energy-billing-service/internal/domain"
	"github.com/septivank/energy-billing-service/internal/service"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Address     string `json:"address" validate:"required"`
	MeterNumber string `json:"meterNumber" validate:"required"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.json(w, http.StatusOK, sessionResponse{Token: token, User: user})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	user, token, err := s.auth.Register(r.Context(), service.RegisterParams{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Address:     req.Address,
		MeterNumber: req.MeterNumber,
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.json(w, http.StatusCreated, sessionResponse{Token: token, User: user})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r.Context())
	s.auth.Logout(claims.UserID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r.Context())
	user, err := s.auth.CurrentUser(claims.UserID)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.json(w, http.StatusOK, user)
}
