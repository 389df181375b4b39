package repository

import (
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
)

// RefreshTokenRepository интерфейс для работы с refresh-токенами
type RefreshTokenRepository interface {
	// CreateToken создает новый refresh-токен
	CreateToken(refreshToken *entity.RefreshToken) error

	// GetTokenByValue находит действующий refresh-токен по его значению
	GetTokenByValue(token string) (*entity.RefreshToken, error)

	// MarkTokenAsExpired помечает токен как истекший с указанием причины
	MarkTokenAsExpired(token string, reason string) error

	// MarkAllAsExpiredForUser помечает все токены пользователя как истекшие с указанием причины
	MarkAllAsExpiredForUser(userID uuid.UUID, reason string) error

	// CleanupExpiredTokens помечает все просроченные токены как истекшие
	CleanupExpiredTokens() (int64, error)
}
