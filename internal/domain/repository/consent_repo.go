package repository

import (
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
)

// ConsentRepository интерфейс для работы с записями о согласии на cookie
type ConsentRepository interface {
	// Create сохраняет запись о согласии
	Create(record *entity.ConsentRecord) error

	// GetLatestForUser возвращает последнюю запись о согласии пользователя
	GetLatestForUser(userID uuid.UUID) (*entity.ConsentRecord, error)

	// List возвращает страницу записей (самые новые первыми)
	List(limit, offset int) ([]entity.ConsentRecord, error)

	// Count подсчитывает общее количество записей
	Count() (int64, error)
}
