package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/septivank/energy-billing-service/internal/api"
	"github.com/septivank/energy-billing-service/internal/auth"
	"github.com/septivank/energy-billing-service/internal/config"
	"github.com/septivank/energy-billing-service/internal/events"
	"github.com/septivank/energy-billing-service/internal/pdf"
	"github.com/septivank/energy-billing-service/internal/seed"
	"github.com/septivank/energy-billing-service/internal/service"
	"github.com/septivank/energy-billing-service/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func startServer(
	lc fx.Lifecycle,
	cfg *config.Config,
	logger *zap.Logger,
	server *api.Server,
) {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting http server", zap.String("addr", httpServer.Addr))
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := httpServer.Shutdown(ctx); err != nil {
				logger.Error("failed to shut down http server", zap.Error(err))
				return err
			}
			logger.Info("http server stopped gracefully")
			return nil
		},
	})
}

// ProvideGenerator creates the synthetic data generator
func ProvideGenerator(cfg *config.Config) (*seed.Generator, error) {
	return seed.NewGenerator(cfg.Billing)
}

// ProvideStore creates the in-memory store and seeds the demo households
// with their usage and billing history
func ProvideStore(cfg *config.Config, generator *seed.Generator, logger *zap.Logger) *store.Store {
	st := store.NewStore()
	now := time.Now()

	households := seed.DemoUsers(now)
	for i := 0; i < cfg.Billing.SeedExtraUsers; i++ {
		households = append(households, generator.Household(now))
	}

	for _, user := range households {
		if err := st.AddUser(user); err != nil {
			logger.Warn("skipping duplicate seed user", zap.String("email", user.Email))
			continue
		}
		st.AddUsage(generator.UsageSeries(user.ID, now)...)
		bills := generator.BillSeries(user.ID, now)
		st.AddBills(bills...)
		st.AddReceipts(generator.Receipts(user.ID, bills)...)
	}

	users, usage, bills, receipts := st.Counts()
	logger.Info("seeded in-memory store",
		zap.Int("users", users),
		zap.Int("usage_records", usage),
		zap.Int("bills", bills),
		zap.Int("receipts", receipts),
	)
	return st
}

// ProvideTokenManager creates the session token manager
func ProvideTokenManager(cfg *config.Config) *auth.TokenManager {
	return auth.NewTokenManager(
		cfg.Session.Secret,
		cfg.Session.Issuer,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
	)
}

// ProvideDelay builds the simulated latency applied to login, registration
// and payment calls
func ProvideDelay(cfg *config.Config) service.Delay {
	return service.NewDelay(time.Duration(cfg.Latency.SimulatedDelayMS) * time.Millisecond)
}

// ProvidePaymentPublisher connects the optional payment-event broker; with
// no RABBITMQ_URL configured payments are not published anywhere
func ProvidePaymentPublisher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (events.Publisher, error) {
	if cfg.RabbitMQ.URL == "" {
		logger.Info("no RABBITMQ_URL configured, payment events disabled")
		return events.NopPublisher{}, nil
	}
	conn, err := events.NewConnection(lc, logger, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}
	publisher, err := events.NewAMQPPublisher(conn, cfg.RabbitMQ.PaymentExchange, cfg.RabbitMQ.PaymentRoutingKey, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

// ProvideBillingService creates the billing query/mutation service
func ProvideBillingService(
	st *store.Store,
	generator *seed.Generator,
	publisher events.Publisher,
	delay service.Delay,
	logger *zap.Logger,
) *service.BillingService {
	return service.NewBillingService(st, generator, publisher, delay, logger)
}

// ProvideAuthService creates the auth session service
func ProvideAuthService(
	st *store.Store,
	billing *service.BillingService,
	tokens *auth.TokenManager,
	delay service.Delay,
	logger *zap.Logger,
) *service.AuthService {
	return service.NewAuthService(st, billing, tokens, delay, logger)
}

// ProvideTemplateEngine creates the bill/receipt document templates
func ProvideTemplateEngine(generator *seed.Generator) (*pdf.TemplateEngine, error) {
	return pdf.NewTemplateEngine(generator.UnitRate())
}

// ProvidePDFRenderer creates the PDF renderer; disabled by configuration the
// PDF endpoints answer 503 while everything else keeps working
func ProvidePDFRenderer(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) pdf.Renderer {
	if cfg.PDF.Disabled {
		logger.Info("pdf rendering disabled by configuration")
		return pdf.DisabledRenderer{}
	}
	renderer := pdf.NewChromedpRenderer(pdf.ChromedpConfig{
		Timeout:   time.Duration(cfg.PDF.TimeoutSeconds) * time.Second,
		RemoteURL: cfg.PDF.RemoteURL,
		NoSandbox: cfg.PDF.NoSandbox,
		Logger:    logger,
	})
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return renderer.Close()
		},
	})
	return renderer
}

// ProvideAPIServer creates the HTTP handler surface
func ProvideAPIServer(
	authService *service.AuthService,
	billing *service.BillingService,
	tokens *auth.TokenManager,
	engine *pdf.TemplateEngine,
	renderer pdf.Renderer,
	logger *zap.Logger,
) *api.Server {
	return api.NewServer(authService, billing, tokens, engine, renderer, logger)
}
