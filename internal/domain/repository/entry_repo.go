package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
)

// EntryRepository интерфейс для работы с заявками на участие
type EntryRepository interface {
	// CreateWithDailyLimit атомарно вставляет заявку, предварительно проверяя
	// дневной лимит внутри сериализуемой транзакции. Возвращает
	// apperrors.ErrDailyLimitReached при превышении лимита и
	// apperrors.ErrAlreadyEntered при нарушении уникальности (user, competition).
	CreateWithDailyLimit(entry *entity.Entry, since time.Time, limit int, onlyCorrect bool) error

	// HasUserEntered проверяет, есть ли у пользователя заявка на конкурс
	HasUserEntered(userID, competitionID uuid.UUID) (bool, error)

	// CountSince подсчитывает заявки пользователя, созданные начиная с since.
	// При onlyCorrect учитываются только заявки с правильным ответом.
	CountSince(userID uuid.UUID, since time.Time, onlyCorrect bool) (int64, error)

	// GetCorrectByUser возвращает правильные заявки пользователя
	// (самые новые первыми) вместе с данными конкурса
	GetCorrectByUser(userID uuid.UUID) ([]entity.Entry, error)

	// CountCorrectByCompetition подсчитывает правильные заявки на конкурс
	CountCorrectByCompetition(competitionID uuid.UUID) (int64, error)

	// Count подсчитывает общее количество заявок
	Count() (int64, error)
}
