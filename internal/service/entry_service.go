package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/domain/repository"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// EligibilityStatus - вердикт проверки допуска к участию
type EligibilityStatus string

// Возможные вердикты
const (
	StatusEligible          EligibilityStatus = "eligible"
	StatusNotFound          EligibilityStatus = "not-found"
	StatusCompetitionEnded  EligibilityStatus = "competition-ended"
	StatusAlreadyEntered    EligibilityStatus = "already-entered"
	StatusDailyLimitReached EligibilityStatus = "daily-limit-reached"
)

// Сообщения для пользователя
const (
	msgAlreadyEntered   = "You have already entered this competition."
	msgDailyLimit       = "You have reached your daily entry limit. Please try again tomorrow."
	msgCompetitionEnded = "This competition has ended."
	msgIncorrect        = "Sorry, your answer is incorrect. You can try again."
	msgSubmitFailure    = "There was an error submitting your entry. Please try again."
)

// EligibilityResult - результат проверки допуска.
// Competition заполняется для всех вердиктов, кроме StatusNotFound.
type EligibilityResult struct {
	Status      EligibilityStatus
	Competition *entity.Competition
}

// SubmitResult - структурированный ответ на отправку заявки
type SubmitResult struct {
	Accepted    bool   `json:"accepted"`
	Correct     bool   `json:"correct"`
	Message     string `json:"message"`
	EntryNumber string `json:"entry_number,omitempty"`
}

// EntryMailer отправляет подтверждение принятой заявки
type EntryMailer interface {
	SendEntryConfirmation(to, name, competitionTitle, entryNumber string) error
}

// EntryService реализует поток приема заявок: проверка допуска,
// оценка ответа, запись заявки и отправка уведомления
type EntryService struct {
	entryRepo       repository.EntryRepository
	competitionRepo repository.CompetitionRepository
	mailer          EntryMailer

	dailyLimit       int
	countOnlyCorrect bool
}

// NewEntryService создает новый сервис заявок
func NewEntryService(
	entryRepo repository.EntryRepository,
	competitionRepo repository.CompetitionRepository,
	mailer EntryMailer,
	dailyLimit int,
	countOnlyCorrect bool,
) *EntryService {
	if dailyLimit <= 0 {
		dailyLimit = 1
	}
	return &EntryService{
		entryRepo:        entryRepo,
		competitionRepo:  competitionRepo,
		mailer:           mailer,
		dailyLimit:       dailyLimit,
		countOnlyCorrect: countOnlyCorrect,
	}
}

// startOfToday возвращает местную полночь текущего дня.
// Окно дневного лимита отсчитывается от нее.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CheckEligibility проверяет, может ли пользователь сейчас подать заявку
// на конкурс. Проверка только читает состояние и не имеет побочных эффектов,
// поэтому повторный вызов для того же пользователя дает тот же вердикт.
func (s *EntryService) CheckEligibility(userID, competitionID uuid.UUID) (*EligibilityResult, error) {
	competition, err := s.competitionRepo.GetByID(competitionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &EligibilityResult{Status: StatusNotFound}, nil
		}
		return nil, fmt.Errorf("ошибка поиска конкурса: %w", err)
	}

	if !competition.IsActive() {
		return &EligibilityResult{Status: StatusCompetitionEnded, Competition: competition}, nil
	}

	entered, err := s.entryRepo.HasUserEntered(userID, competitionID)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки прежней заявки: %w", err)
	}
	if entered {
		return &EligibilityResult{Status: StatusAlreadyEntered, Competition: competition}, nil
	}

	count, err := s.entryRepo.CountSince(userID, startOfToday(), s.countOnlyCorrect)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки дневного лимита: %w", err)
	}
	if count >= int64(s.dailyLimit) {
		return &EligibilityResult{Status: StatusDailyLimitReached, Competition: competition}, nil
	}

	return &EligibilityResult{Status: StatusEligible, Competition: competition}, nil
}

// SubmitEntry обрабатывает отправку заявки от начала до конца.
// Возвращает apperrors.ErrNotFound, если конкурс не существует; все остальные
// отказы и сбои упаковываются в SubmitResult с человекочитаемым сообщением.
func (s *EntryService) SubmitEntry(user *entity.User, competitionID uuid.UUID, answer string) (*SubmitResult, error) {
	eligibility, err := s.CheckEligibility(user.ID, competitionID)
	if err != nil {
		log.Printf("[EntryService] Ошибка проверки допуска: user=%s competition=%s: %v", user.ID, competitionID, err)
		return &SubmitResult{Accepted: false, Message: msgSubmitFailure}, nil
	}

	switch eligibility.Status {
	case StatusNotFound:
		return nil, apperrors.ErrNotFound
	case StatusCompetitionEnded:
		return &SubmitResult{Accepted: false, Message: msgCompetitionEnded}, nil
	case StatusAlreadyEntered:
		return &SubmitResult{Accepted: false, Message: msgAlreadyEntered}, nil
	case StatusDailyLimitReached:
		return &SubmitResult{Accepted: false, Message: msgDailyLimit}, nil
	}

	competition := eligibility.Competition
	correct := competition.IsCorrectAnswer(answer)

	entryNumber, err := newEntryNumber()
	if err != nil {
		log.Printf("[EntryService] Ошибка генерации номера заявки: %v", err)
		return &SubmitResult{Accepted: false, Message: msgSubmitFailure}, nil
	}

	entry := &entity.Entry{
		UserID:        user.ID,
		CompetitionID: competitionID,
		EntryNumber:   entryNumber,
		Answer:        answer,
		Correct:       correct,
	}

	err = s.entryRepo.CreateWithDailyLimit(entry, startOfToday(), s.dailyLimit, s.countOnlyCorrect)
	if err != nil {
		// Нарушения инвариантов, пойманные базой при гонке двух отправок
		switch {
		case errors.Is(err, apperrors.ErrAlreadyEntered):
			return &SubmitResult{Accepted: false, Message: msgAlreadyEntered}, nil
		case errors.Is(err, apperrors.ErrDailyLimitReached):
			return &SubmitResult{Accepted: false, Message: msgDailyLimit}, nil
		}
		log.Printf("[EntryService] Ошибка записи заявки: user=%s competition=%s: %v", user.ID, competitionID, err)
		return &SubmitResult{Accepted: false, Message: msgSubmitFailure}, nil
	}

	// Уведомление отправляется в фоне и не влияет на результат:
	// заявка уже записана, сбой почты только логируется
	if correct && s.mailer != nil && user.Email != "" {
		go s.notify(user.Email, user.FullName, competition.Title, entryNumber)
	}

	result := &SubmitResult{
		Accepted: true,
		Correct:  correct,
	}
	if correct {
		result.EntryNumber = entryNumber
		result.Message = fmt.Sprintf(
			"Congratulations! Your answer is correct. You have been entered into the draw with entry number %s.",
			entryNumber,
		)
	} else {
		result.Message = msgIncorrect
	}
	return result, nil
}

// GetUserEntries возвращает правильные заявки пользователя (самые новые первыми)
func (s *EntryService) GetUserEntries(userID uuid.UUID) ([]entity.Entry, error) {
	return s.entryRepo.GetCorrectByUser(userID)
}

func (s *EntryService) notify(email, name, competitionTitle, entryNumber string) {
	if err := s.mailer.SendEntryConfirmation(email, name, competitionTitle, entryNumber); err != nil {
		log.Printf("[EntryService] Ошибка отправки подтверждения на %s: %v", email, err)
	}
}
