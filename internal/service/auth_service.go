package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/domain/repository"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
	"github.com/frankwrk/neomax-engage-rules/pkg/auth"
)

// AuthResult - результат регистрации или входа
type AuthResult struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// AuthService обрабатывает регистрацию, вход и обновление сессии
type AuthService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtService       *auth.JWTService
	refreshLifetime  time.Duration
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	jwtService *auth.JWTService,
	refreshLifetimeDays int,
) *AuthService {
	if refreshLifetimeDays <= 0 {
		refreshLifetimeDays = 30
	}
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
		refreshLifetime:  time.Duration(refreshLifetimeDays) * 24 * time.Hour,
	}
}

// Register создает нового пользователя и выдает пару токенов.
// Пароль приходит открытым текстом и хешируется хуком BeforeSave при записи.
func (s *AuthService) Register(user *entity.User, ipAddress, userAgent string) (*AuthResult, error) {
	if _, err := s.userRepo.GetByEmail(user.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("ошибка проверки email: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user, ipAddress, userAgent)
}

// Login проверяет учетные данные и выдает пару токенов
func (s *AuthService) Login(email, password, ipAddress, userAgent string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user, ipAddress, userAgent)
}

// Refresh обменивает действующий refresh-токен на новую пару токенов.
// Старый токен отзывается (ротация одноразовых refresh-токенов).
func (s *AuthService) Refresh(tokenValue, ipAddress, userAgent string) (*AuthResult, error) {
	stored, err := s.refreshTokenRepo.GetTokenByValue(tokenValue)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(stored.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokenRepo.MarkTokenAsExpired(tokenValue, "rotated"); err != nil {
		return nil, err
	}

	return s.issueTokens(user, ipAddress, userAgent)
}

// Logout отзывает refresh-токен текущей сессии
func (s *AuthService) Logout(tokenValue string) error {
	err := s.refreshTokenRepo.MarkTokenAsExpired(tokenValue, "logout")
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return nil
}

// LogoutAll отзывает все сессии пользователя
func (s *AuthService) LogoutAll(user *entity.User) error {
	return s.refreshTokenRepo.MarkAllAsExpiredForUser(user.ID, "logout_all")
}

// CleanupExpiredTokens помечает просроченные refresh-токены; предназначен
// для периодического вызова из фонового планировщика
func (s *AuthService) CleanupExpiredTokens() {
	cleaned, err := s.refreshTokenRepo.CleanupExpiredTokens()
	if err != nil {
		log.Printf("[AuthService] Ошибка очистки просроченных токенов: %v", err)
		return
	}
	if cleaned > 0 {
		log.Printf("[AuthService] Помечено просроченных refresh-токенов: %d", cleaned)
	}
}

func (s *AuthService) issueTokens(user *entity.User, ipAddress, userAgent string) (*AuthResult, error) {
	accessToken, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации access токена: %w", err)
	}

	refreshValue, err := auth.GenerateRefreshTokenValue()
	if err != nil {
		return nil, err
	}

	refreshToken := entity.NewRefreshToken(user.ID, refreshValue, ipAddress, userAgent, time.Now().Add(s.refreshLifetime))
	if err := s.refreshTokenRepo.CreateToken(refreshToken); err != nil {
		return nil, err
	}

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshValue,
	}, nil
}
