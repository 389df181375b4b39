package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken представляет собой refresh токен пользователя
type RefreshToken struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string     `gorm:"size:128;not null;uniqueIndex" json:"token"`
	IPAddress string     `gorm:"size:45" json:"ip_address"`
	UserAgent string     `gorm:"size:255" json:"user_agent"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	IsExpired bool       `gorm:"not null;default:false" json:"is_expired"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	Reason    string     `gorm:"size:100" json:"reason,omitempty"`
}

// NewRefreshToken создает новый refresh токен
func NewRefreshToken(userID uuid.UUID, token, ipAddress, userAgent string, expiresAt time.Time) *RefreshToken {
	return &RefreshToken{
		UserID:    userID,
		Token:     token,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
		IsExpired: false,
	}
}

// BeforeCreate присваивает UUID, если он не был задан явно
func (rt *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	return nil
}

// IsValid проверяет действительность токена
func (rt *RefreshToken) IsValid() bool {
	return !rt.IsExpired && rt.ExpiresAt.After(time.Now())
}

// TableName определяет имя таблицы для GORM
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
