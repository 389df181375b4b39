package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// ConsentRepo реализует repository.ConsentRepository
type ConsentRepo struct {
	db *gorm.DB
}

// NewConsentRepo создает новый репозиторий записей о согласии
func NewConsentRepo(db *gorm.DB) *ConsentRepo {
	return &ConsentRepo{db: db}
}

// Create сохраняет запись о согласии
func (r *ConsentRepo) Create(record *entity.ConsentRecord) error {
	err := r.db.Create(record).Error
	if err != nil {
		return fmt.Errorf("ошибка сохранения записи о согласии: %w", err)
	}
	return nil
}

// GetLatestForUser возвращает последнюю запись о согласии пользователя
func (r *ConsentRepo) GetLatestForUser(userID uuid.UUID) (*entity.ConsentRecord, error) {
	var record entity.ConsentRecord
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения записи о согласии: %w", err)
	}
	return &record, nil
}

// List возвращает страницу записей (самые новые первыми)
func (r *ConsentRepo) List(limit, offset int) ([]entity.ConsentRecord, error) {
	var records []entity.ConsentRecord
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей о согласии: %w", err)
	}
	return records, nil
}

// Count подсчитывает общее количество записей
func (r *ConsentRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.ConsentRecord{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета записей о согласии: %w", err)
	}
	return count, nil
}
