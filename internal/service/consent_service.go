package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/domain/repository"
)

// ConsentPage - страница записей о согласии с общим количеством
type ConsentPage struct {
	Records []entity.ConsentRecord `json:"records"`
	Total   int64                  `json:"total"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
}

// ConsentService обрабатывает записи о согласии на cookie
type ConsentService struct {
	consentRepo repository.ConsentRepository
}

// NewConsentService создает новый сервис записей о согласии
func NewConsentService(consentRepo repository.ConsentRepository) *ConsentService {
	return &ConsentService{consentRepo: consentRepo}
}

// Save сохраняет запись о согласии. Тип согласия должен быть одним из
// all, necessary, custom.
func (s *ConsentService) Save(record *entity.ConsentRecord) error {
	switch record.ConsentType {
	case entity.ConsentTypeAll, entity.ConsentTypeNecessary, entity.ConsentTypeCustom:
	default:
		return fmt.Errorf("неизвестный тип согласия: %q", record.ConsentType)
	}
	// Необходимые cookie не отключаются
	record.Preferences.Necessary = true
	return s.consentRepo.Create(record)
}

// GetForUser возвращает последнюю запись о согласии пользователя
func (s *ConsentService) GetForUser(userID uuid.UUID) (*entity.ConsentRecord, error) {
	return s.consentRepo.GetLatestForUser(userID)
}

// List возвращает страницу записей о согласии (для администратора)
func (s *ConsentService) List(page, perPage int) (*ConsentPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	} else if perPage > 100 {
		perPage = 100
	}

	total, err := s.consentRepo.Count()
	if err != nil {
		return nil, err
	}

	records, err := s.consentRepo.List(perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	return &ConsentPage{
		Records: records,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}
