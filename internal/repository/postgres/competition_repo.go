package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// CompetitionRepo реализует repository.CompetitionRepository
type CompetitionRepo struct {
	db *gorm.DB
}

// NewCompetitionRepo создает новый репозиторий конкурсов
func NewCompetitionRepo(db *gorm.DB) *CompetitionRepo {
	return &CompetitionRepo{db: db}
}

// Create создает новый конкурс
func (r *CompetitionRepo) Create(competition *entity.Competition) error {
	return r.db.Create(competition).Error
}

// GetByID возвращает конкурс по ID
func (r *CompetitionRepo) GetByID(id uuid.UUID) (*entity.Competition, error) {
	var competition entity.Competition
	err := r.db.First(&competition, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &competition, nil
}

// GetAll возвращает все конкурсы (самые новые первыми)
func (r *CompetitionRepo) GetAll() ([]entity.Competition, error) {
	var competitions []entity.Competition
	err := r.db.Order("created_at DESC").Find(&competitions).Error
	if err != nil {
		return nil, err
	}
	return competitions, nil
}

// GetActive возвращает конкурсы с открытым приемом заявок
func (r *CompetitionRepo) GetActive() ([]entity.Competition, error) {
	var competitions []entity.Competition
	err := r.db.Where("ends_at > ?", time.Now()).Order("ends_at").Find(&competitions).Error
	if err != nil {
		return nil, err
	}
	return competitions, nil
}

// Update обновляет информацию о конкурсе
func (r *CompetitionRepo) Update(competition *entity.Competition) error {
	return r.db.Save(competition).Error
}

// Delete удаляет конкурс
func (r *CompetitionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.Competition{}, "id = ?", id).Error
}

// CountActive подсчитывает количество активных конкурсов
func (r *CompetitionRepo) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Competition{}).Where("ends_at > ?", time.Now()).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
