package service

import (
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/domain/repository"
)

// ProfileUpdate - изменяемые поля профиля
type ProfileUpdate struct {
	FullName     string
	MobileNumber string
	Gender       string
	AgeRange     string
	County       string
	Interests    []string
}

// UserService обрабатывает операции с профилем пользователя
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile возвращает профиль пользователя
func (s *UserService) GetProfile(id uuid.UUID) (*entity.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile обновляет профиль пользователя и возвращает его актуальное состояние
func (s *UserService) UpdateProfile(id uuid.UUID, update ProfileUpdate) (*entity.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.FullName = update.FullName
	user.MobileNumber = update.MobileNumber
	user.Gender = update.Gender
	user.AgeRange = update.AgeRange
	user.County = update.County
	user.Interests = entity.StringArray(update.Interests)

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
