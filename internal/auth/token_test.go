package auth_test

import (
	"testing"
	"time"

	"github.com/septivank/energy-billing-service/internal/auth"
	"github.com/septivank/energy-billing-service/internal/domain"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "test-issuer", time.Hour)
	user := domain.User{ID: "1", Email: "john@example.com", Role: domain.RoleAdmin}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.UserID != "1" {
		t.Errorf("Expected subject 1, got %s", claims.UserID)
	}
	if claims.Email != "john@example.com" {
		t.Errorf("Expected email john@example.com, got %s", claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("Expected role admin, got %s", claims.Role)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "test-issuer", time.Hour)
	other := auth.NewTokenManager("other-secret", "test-issuer", time.Hour)

	token, err := manager.Generate(domain.User{ID: "1", Email: "john@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Error("Expected verification with wrong secret to fail")
	}
}

func TestVerify_Expired(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "test-issuer", -time.Minute)

	token, err := manager.Generate(domain.User{ID: "1", Email: "john@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := manager.Verify(token); err == nil {
		t.Error("Expected expired token to fail verification")
	}
}

func TestVerify_Garbage(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "test-issuer", time.Hour)

	if _, err := manager.Verify("not-a-token"); err == nil {
		t.Error("Expected garbage token to fail verification")
	}
}
