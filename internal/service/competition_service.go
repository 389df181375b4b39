package service

import (
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/domain/repository"
)

// CompetitionService обрабатывает операции с конкурсами
type CompetitionService struct {
	competitionRepo repository.CompetitionRepository
	entryRepo       repository.EntryRepository
}

// NewCompetitionService создает новый сервис конкурсов
func NewCompetitionService(
	competitionRepo repository.CompetitionRepository,
	entryRepo repository.EntryRepository,
) *CompetitionService {
	return &CompetitionService{
		competitionRepo: competitionRepo,
		entryRepo:       entryRepo,
	}
}

// GetActive возвращает конкурсы с открытым приемом заявок
func (s *CompetitionService) GetActive() ([]entity.Competition, error) {
	return s.competitionRepo.GetActive()
}

// GetAll возвращает все конкурсы, включая завершенные (для администратора)
func (s *CompetitionService) GetAll() ([]entity.Competition, error) {
	return s.competitionRepo.GetAll()
}

// GetByID возвращает конкурс по ID
func (s *CompetitionService) GetByID(id uuid.UUID) (*entity.Competition, error) {
	return s.competitionRepo.GetByID(id)
}

// Create создает новый конкурс
func (s *CompetitionService) Create(competition *entity.Competition) error {
	return s.competitionRepo.Create(competition)
}

// Update обновляет конкурс
func (s *CompetitionService) Update(competition *entity.Competition) error {
	return s.competitionRepo.Update(competition)
}

// Delete удаляет конкурс
func (s *CompetitionService) Delete(id uuid.UUID) error {
	return s.competitionRepo.Delete(id)
}

// EntryCount возвращает количество правильных заявок на конкурс
func (s *CompetitionService) EntryCount(id uuid.UUID) (int64, error) {
	return s.entryRepo.CountCorrectByCompetition(id)
}
