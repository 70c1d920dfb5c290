// Package api exposes the billing service over HTTP. Handlers translate
// domain errors into status codes and leave all business rules to the
// services.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/septivank/energy-billing-service/internal/auth"
	"github.com/septivank/energy-billing-service/internal/pdf"
	"github.com/septivank/energy-billing-service/internal/service"
)

// Server bundles the handler dependencies.
type Server struct {
	auth     *service.AuthService
	billing  *service.BillingService
	tokens   *auth.TokenManager
	engine   *pdf.TemplateEngine
	renderer pdf.Renderer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewServer creates the HTTP server surface.
func NewServer(
	authService *service.AuthService,
	billing *service.BillingService,
	tokens *auth.TokenManager,
	engine *pdf.TemplateEngine,
	renderer pdf.Renderer,
	logger *zap.Logger,
) *Server {
	return &Server{
		auth:     authService,
		billing:  billing,
		tokens:   tokens,
		engine:   engine,
		renderer: renderer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Routes assembles the router with middleware and all endpoints.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Get("/auth/me", s.handleMe)
			r.Post("/auth/logout", s.handleLogout)

			r.Get("/usage", s.handleUsage)
			r.Get("/usage/summary", s.handleUsageSummary)

			r.Get("/bills", s.handleBills)
			r.Get("/bills/{id}", s.handleBillByID)
			r.Post("/bills/{id}/pay", s.handlePayBill)
			r.Get("/bills/{id}/pdf", s.handleBillPDF)

			r.Get("/receipts", s.handleReceipts)
			r.Get("/receipts/{id}", s.handleReceiptByID)
			r.Get("/receipts/{id}/pdf", s.handleReceiptPDF)

			r.Route("/admin", func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Get("/users", s.handleAdminUsers)
			})
		})
	})

	return r
}
