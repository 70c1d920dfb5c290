package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/septivank/energy-billing-service/internal/auth"
	"github.com/septivank/energy-billing-service/internal/domain"
	"github.com/septivank/energy-billing-service/internal/service"
	"github.com/septivank/energy-billing-service/internal/store"
)

func newAuthService(t *testing.T, st *store.Store) *service.AuthService {
	t.Helper()
	billing := newBillingService(t, st)
	tokens := auth.NewTokenManager("test-secret", "test", time.Hour)
	return service.NewAuthService(st, billing, tokens, service.NewDelay(0), zap.NewNop())
}

func TestLogin(t *testing.T) {
	st := store.NewStore()
	if err := st.AddUser(domain.User{ID: "1", Email: "john@example.com", Role: domain.RoleUser}); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	svc := newAuthService(t, st)

	user, token, err := svc.Login(context.Background(), "john@example.com", "whatever")

	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != "1" {
		t.Errorf("Expected user 1, got %s", user.ID)
	}
	if token == "" {
		t.Error("Expected a session token")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(t, store.NewStore())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	st := store.NewStore()
	svc := newAuthService(t, st)

	user, token, err := svc.Register(context.Background(), service.RegisterParams{
		Name:        "New Household",
		Email:       "new@example.com",
		Password:    "secret",
		Address:     "12 Side St",
		MeterNumber: "MT00000001",
	})

	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("Expected role user, got %s", user.Role)
	}
	if token == "" {
		t.Error("Expected a session token")
	}

	// Registration provisions the full usage and billing history
	if got := len(st.UsageForUser(user.ID)); got != 30 {
		t.Errorf("Expected 30 usage records provisioned, got %d", got)
	}
	if got := len(st.BillsForUser(user.ID)); got != 6 {
		t.Errorf("Expected 6 bills provisioned, got %d", got)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	st := store.NewStore()
	if err := st.AddUser(domain.User{ID: "1", Email: "john@example.com"}); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	svc := newAuthService(t, st)

	_, _, err := svc.Register(context.Background(), service.RegisterParams{
		Name:        "Impostor",
		Email:       "john@example.com",
		Password:    "secret",
		Address:     "99 Elsewhere",
		MeterNumber: "MT00000002",
	})

	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Errorf("Expected ErrDuplicateUser, got %v", err)
	}
	if len(st.Users()) != 1 {
		t.Errorf("Expected no new user appended, got %d users", len(st.Users()))
	}
}

func TestCurrentUser_NotFound(t *testing.T) {
	svc := newAuthService(t, store.NewStore())

	_, err := svc.CurrentUser("missing")

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDelay_HonorsContextCancellation(t *testing.T) {
	delay := service.NewDelay(5 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	delay(ctx)

	if time.Since(start) > time.Second {
		t.Error("Expected cancelled delay to return immediately")
	}
}
