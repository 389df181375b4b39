package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// RefreshTokenRepo реализует интерфейс RefreshTokenRepository с использованием PostgreSQL и GORM
type RefreshTokenRepo struct {
	db *gorm.DB
}

// NewRefreshTokenRepo создает новый экземпляр RefreshTokenRepo и возвращает ошибку при проблемах
func NewRefreshTokenRepo(gormDB *gorm.DB) (*RefreshTokenRepo, error) {
	if gormDB == nil {
		return nil, fmt.Errorf("GORM DB instance is required for RefreshTokenRepo")
	}
	return &RefreshTokenRepo{db: gormDB}, nil
}

// CreateToken сохраняет новый refresh токен в базе данных
func (r *RefreshTokenRepo) CreateToken(token *entity.RefreshToken) error {
	result := r.db.Create(token)
	if result.Error != nil {
		return fmt.Errorf("ошибка создания refresh токена: %w", result.Error)
	}
	return nil
}

// GetTokenByValue находит refresh токен по его значению
func (r *RefreshTokenRepo) GetTokenByValue(tokenValue string) (*entity.RefreshToken, error) {
	var token entity.RefreshToken
	result := r.db.Where("token = ?", tokenValue).First(&token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения refresh токена по значению: %w", result.Error)
	}

	// Проверяем срок действия и флаг отзыва
	if token.IsExpired || token.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrExpiredToken
	}

	return &token, nil
}

// MarkTokenAsExpired помечает токен как истекший с указанием причины
func (r *RefreshTokenRepo) MarkTokenAsExpired(tokenValue string, reason string) error {
	now := time.Now()
	result := r.db.Model(&entity.RefreshToken{}).
		Where("token = ?", tokenValue).
		Updates(map[string]interface{}{
			"is_expired": true,
			"revoked_at": now,
			"reason":     reason,
		})

	if result.Error != nil {
		return fmt.Errorf("ошибка маркировки refresh токена как истекшего: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllAsExpiredForUser помечает все токены пользователя как истекшие с указанием причины
func (r *RefreshTokenRepo) MarkAllAsExpiredForUser(userID uuid.UUID, reason string) error {
	now := time.Now()
	result := r.db.Model(&entity.RefreshToken{}).
		Where("user_id = ? AND is_expired = ?", userID, false).
		Updates(map[string]interface{}{
			"is_expired": true,
			"revoked_at": now,
			"reason":     reason,
		})

	if result.Error != nil {
		return fmt.Errorf("ошибка маркировки токенов пользователя как истекших: %w", result.Error)
	}
	return nil
}

// CleanupExpiredTokens помечает все просроченные токены как истекшие
func (r *RefreshTokenRepo) CleanupExpiredTokens() (int64, error) {
	now := time.Now()
	result := r.db.Model(&entity.RefreshToken{}).
		Where("is_expired = ? AND expires_at < ?", false, now).
		Updates(map[string]interface{}{
			"is_expired": true,
			"revoked_at": now,
			"reason":     "expired",
		})

	if result.Error != nil {
		return 0, fmt.Errorf("ошибка очистки просроченных токенов: %w", result.Error)
	}
	return result.RowsAffected, nil
}
