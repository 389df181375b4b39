package repository

import (
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
)

// WinnerRepository интерфейс для работы с победителями
type WinnerRepository interface {
	// GetAll возвращает всех победителей вместе с пользователем,
	// конкурсом и заявкой (самые новые первыми)
	GetAll() ([]entity.Winner, error)

	// GetByID возвращает победителя по ID
	GetByID(id uuid.UUID) (*entity.Winner, error)

	// MarkPrizeAwarded помечает приз как выданный
	MarkPrizeAwarded(id uuid.UUID) error

	// CountPending подсчитывает победителей с невыданным призом
	CountPending() (int64, error)
}
