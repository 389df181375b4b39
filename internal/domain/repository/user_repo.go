package repository

import (
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
)

// UserRepository интерфейс для работы с пользователями
type UserRepository interface {
	// Create создает нового пользователя
	Create(user *entity.User) error

	// GetByID находит пользователя по ID
	GetByID(id uuid.UUID) (*entity.User, error)

	// GetByEmail находит пользователя по email
	GetByEmail(email string) (*entity.User, error)

	// Update обновляет профиль пользователя
	Update(user *entity.User) error

	// Count подсчитывает общее количество пользователей
	Count() (int64, error)
}
