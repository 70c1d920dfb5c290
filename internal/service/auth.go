package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/septivank/energy-billing-service/internal/auth"
	"github.com/septivank/energy-billing-service/internal/domain"
	"github.com/septivank/energy-billing-service/internal/store"
)

// RegisterParams is the data collected by the registration form.
type RegisterParams struct {
	Name        string
	Email       string
	Password    string
	Address     string
	MeterNumber string
}

// AuthService resolves logins and registrations against the user collection
// and issues session tokens.
type AuthService struct {
	store   *store.Store
	billing *BillingService
	tokens  *auth.TokenManager
	delay   Delay
	logger  *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	st *store.Store,
	billing *BillingService,
	tokens *auth.TokenManager,
	delay Delay,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		store:   st,
		billing: billing,
		tokens:  tokens,
		delay:   delay,
		logger:  logger,
	}
}

// Login resolves an email to its account and issues a session token. The
// password is accepted but not verified; accounts carry no credentials.
// An unknown email fails with domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, _ string) (domain.User, string, error) {
	s.delay(ctx)

	user, ok := s.store.UserByEmail(email)
	if !ok {
		s.logger.Warn("login attempt for unknown email", zap.String("email", email))
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return domain.User{}, "", err
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return user, token, nil
}

// Register creates a new account, provisions its usage and billing history,
// and issues a session token. Registering an email that already exists fails
// with domain.ErrDuplicateUser and appends nothing.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (domain.User, string, error) {
	s.delay(ctx)

	user := domain.User{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Email:       params.Email,
		Address:     params.Address,
		MeterNumber: params.MeterNumber,
		Role:        domain.RoleUser,
		CreatedAt:   time.Now(),
	}

	if err := s.store.AddUser(user); err != nil {
		return domain.User{}, "", err
	}
	s.billing.ProvisionUser(user)

	token, err := s.tokens.Generate(user)
	if err != nil {
		return domain.User{}, "", err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("meter_number", user.MeterNumber),
	)
	return user, token, nil
}

// Logout ends a session. Sessions live client-side as signed tokens, so the
// server only acknowledges; the client discards the token.
func (s *AuthService) Logout(userID string) {
	s.logger.Info("user logged out", zap.String("user_id", userID))
}

// CurrentUser resolves a session identity back to its full account record.
func (s *AuthService) CurrentUser(userID string) (domain.User, error) {
	user, ok := s.store.UserByID(userID)
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

// Users lists every account, for the admin user list.
func (s *AuthService) Users() []domain.User {
	return s.store.Users()
}
