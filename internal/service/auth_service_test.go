package service

import (
	"errors"
	"testing"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
	"github.com/frankwrk/neomax-engage-rules/pkg/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *fakeRefreshTokenRepo) {
	t.Helper()
	jwtService, err := auth.NewJWTService("test-secret", 1)
	if err != nil {
		t.Fatalf("Failed to create JWT service: %v", err)
	}
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	return NewAuthService(userRepo, tokenRepo, jwtService, 30), userRepo, tokenRepo
}

func testUser() *entity.User {
	return &entity.User{
		Email:    "new@example.com",
		Password: "Secret123!",
		FullName: "New User",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)

	result, err := svc.Register(testUser(), "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("Expected both access and refresh tokens to be issued")
	}

	stored, err := userRepo.GetByEmail("new@example.com")
	if err != nil {
		t.Fatalf("Expected user to be stored: %v", err)
	}
	if stored.Password == "Secret123!" {
		t.Error("Expected stored password to be hashed")
	}
	if stored.Role != entity.RoleUser {
		t.Errorf("Expected default role %q, got %q", entity.RoleUser, stored.Role)
	}

	// Повторная регистрация с тем же email
	_, err = svc.Register(testUser(), "127.0.0.1", "test-agent")
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("Expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	if _, err := svc.Register(testUser(), "127.0.0.1", "test-agent"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login("new@example.com", "Secret123!", "127.0.0.1", "test-agent")
		if err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if result.AccessToken == "" {
			t.Error("Expected access token to be issued")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("new@example.com", "wrong", "127.0.0.1", "test-agent")
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("missing@example.com", "Secret123!", "127.0.0.1", "test-agent")
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthService_Refresh(t *testing.T) {
	svc, _, tokenRepo := newTestAuthService(t)
	registered, err := svc.Register(testUser(), "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	refreshed, err := svc.Refresh(registered.RefreshToken, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if refreshed.RefreshToken == registered.RefreshToken {
		t.Error("Expected refresh token to be rotated")
	}

	// Старый токен отозван и не может быть использован повторно
	old, ok := tokenRepo.tokens[registered.RefreshToken]
	if !ok || !old.IsExpired {
		t.Error("Expected old refresh token to be marked expired")
	}
	if _, err := svc.Refresh(registered.RefreshToken, "127.0.0.1", "test-agent"); err == nil {
		t.Error("Expected reuse of rotated refresh token to fail")
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, tokenRepo := newTestAuthService(t)
	registered, err := svc.Register(testUser(), "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if err := svc.Logout(registered.RefreshToken); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	token := tokenRepo.tokens[registered.RefreshToken]
	if !token.IsExpired || token.Reason != "logout" {
		t.Errorf("Expected token to be revoked with reason logout, got %+v", token)
	}

	// Logout с неизвестным токеном не считается ошибкой
	if err := svc.Logout("unknown-token"); err != nil {
		t.Errorf("Expected logout with unknown token to succeed, got %v", err)
	}
}
