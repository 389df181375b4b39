package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// EntryRepo реализует интерфейс EntryRepository с использованием PostgreSQL и GORM
type EntryRepo struct {
	db *gorm.DB
}

// NewEntryRepo создает новый экземпляр EntryRepo и возвращает ошибку при проблемах
func NewEntryRepo(gormDB *gorm.DB) (*EntryRepo, error) {
	if gormDB == nil {
		return nil, fmt.Errorf("GORM DB instance is required for EntryRepo")
	}
	return &EntryRepo{db: gormDB}, nil
}

// CreateWithDailyLimit атомарно вставляет заявку с проверкой дневного лимита.
// Подсчет и вставка выполняются в одной сериализуемой транзакции, поэтому две
// конкурентные отправки не могут обе пройти проверку лимита. Уникальный индекс
// по (user_id, competition_id) закрывает гонку "уже участвует": нарушение
// индекса транслируется в apperrors.ErrAlreadyEntered.
func (r *EntryRepo) CreateWithDailyLimit(entry *entity.Entry, since time.Time, limit int, onlyCorrect bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if limit > 0 {
			query := tx.Model(&entity.Entry{}).
				Where("user_id = ? AND created_at >= ?", entry.UserID, since)
			if onlyCorrect {
				query = query.Where("correct = ?", true)
			}

			var count int64
			if err := query.Count(&count).Error; err != nil {
				return fmt.Errorf("ошибка подсчета дневных заявок: %w", err)
			}
			if count >= int64(limit) {
				return apperrors.ErrDailyLimitReached
			}
		}

		if err := tx.Create(entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrAlreadyEntered
			}
			return fmt.Errorf("ошибка создания заявки: %w", err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	return err
}

// HasUserEntered проверяет, есть ли у пользователя заявка на конкурс.
// Учитывается любая заявка, не только с правильным ответом.
func (r *EntryRepo) HasUserEntered(userID, competitionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Entry{}).
		Where("user_id = ? AND competition_id = ?", userID, competitionID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("ошибка проверки заявки пользователя: %w", err)
	}
	return count > 0, nil
}

// CountSince подсчитывает заявки пользователя, созданные начиная с since
func (r *EntryRepo) CountSince(userID uuid.UUID, since time.Time, onlyCorrect bool) (int64, error) {
	query := r.db.Model(&entity.Entry{}).
		Where("user_id = ? AND created_at >= ?", userID, since)
	if onlyCorrect {
		query = query.Where("correct = ?", true)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("ошибка подсчета заявок пользователя: %w", err)
	}
	return count, nil
}

// GetCorrectByUser возвращает правильные заявки пользователя вместе с конкурсами
func (r *EntryRepo) GetCorrectByUser(userID uuid.UUID) ([]entity.Entry, error) {
	var entries []entity.Entry
	err := r.db.Preload("Competition").
		Where("user_id = ? AND correct = ?", userID, true).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("ошибка получения заявок пользователя: %w", err)
	}
	return entries, nil
}

// CountCorrectByCompetition подсчитывает правильные заявки на конкурс
func (r *EntryRepo) CountCorrectByCompetition(competitionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Entry{}).
		Where("competition_id = ? AND correct = ?", competitionID, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета заявок на конкурс: %w", err)
	}
	return count, nil
}

// Count подсчитывает общее количество заявок
func (r *EntryRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Entry{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета заявок: %w", err)
	}
	return count, nil
}
