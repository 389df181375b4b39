package repository

import (
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
)

// CompetitionRepository интерфейс для работы с конкурсами
type CompetitionRepository interface {
	// Create создает новый конкурс
	Create(competition *entity.Competition) error

	// GetByID возвращает конкурс по ID
	GetByID(id uuid.UUID) (*entity.Competition, error)

	// GetAll возвращает все конкурсы (самые новые первыми)
	GetAll() ([]entity.Competition, error)

	// GetActive возвращает конкурсы с открытым приемом заявок
	GetActive() ([]entity.Competition, error)

	// Update обновляет информацию о конкурсе
	Update(competition *entity.Competition) error

	// Delete удаляет конкурс
	Delete(id uuid.UUID) error

	// CountActive подсчитывает количество активных конкурсов
	CountActive() (int64, error)
}
