package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// WinnerRepo реализует repository.WinnerRepository
type WinnerRepo struct {
	db *gorm.DB
}

// NewWinnerRepo создает новый репозиторий победителей
func NewWinnerRepo(db *gorm.DB) *WinnerRepo {
	return &WinnerRepo{db: db}
}

// GetAll возвращает всех победителей вместе со связанными записями
func (r *WinnerRepo) GetAll() ([]entity.Winner, error) {
	var winners []entity.Winner
	err := r.db.Preload("User").Preload("Competition").Preload("Entry").
		Order("created_at DESC").
		Find(&winners).Error
	if err != nil {
		return nil, fmt.Errorf("ошибка получения победителей: %w", err)
	}
	return winners, nil
}

// GetByID возвращает победителя по ID
func (r *WinnerRepo) GetByID(id uuid.UUID) (*entity.Winner, error) {
	var winner entity.Winner
	err := r.db.Preload("User").Preload("Competition").Preload("Entry").
		First(&winner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения победителя по ID: %w", err)
	}
	return &winner, nil
}

// MarkPrizeAwarded помечает приз как выданный
func (r *WinnerRepo) MarkPrizeAwarded(id uuid.UUID) error {
	result := r.db.Model(&entity.Winner{}).
		Where("id = ?", id).
		Update("prize_awarded", true)
	if result.Error != nil {
		return fmt.Errorf("ошибка отметки выдачи приза: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountPending подсчитывает победителей с невыданным призом
func (r *WinnerRepo) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Winner{}).Where("prize_awarded = ?", false).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета невыданных призов: %w", err)
	}
	return count, nil
}
