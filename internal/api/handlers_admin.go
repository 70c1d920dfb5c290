package api

import "net/http"

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	s.json(w, http.StatusOK, s.auth.Users())
}
