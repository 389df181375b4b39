package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/domain/repository"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// WinnerMailer отправляет уведомление победителю
type WinnerMailer interface {
	SendWinnerNotification(to, name, competitionTitle, entryNumber string) error
}

// WinnerService обрабатывает операции с победителями.
// Записи о победителях создает отдельный процесс розыгрыша; здесь они
// только читаются, уведомляются и помечаются выданными.
type WinnerService struct {
	winnerRepo repository.WinnerRepository
	mailer     WinnerMailer
}

// NewWinnerService создает новый сервис победителей
func NewWinnerService(winnerRepo repository.WinnerRepository, mailer WinnerMailer) *WinnerService {
	return &WinnerService{winnerRepo: winnerRepo, mailer: mailer}
}

// GetAll возвращает всех победителей со связанными записями
func (s *WinnerService) GetAll() ([]entity.Winner, error) {
	return s.winnerRepo.GetAll()
}

// PublicWinner - запись победителя для общего списка.
// Содержит только имя, графство и данные конкурса, без контактов и ответа.
type PublicWinner struct {
	WinnerName       string    `json:"winner_name"`
	County           string    `json:"county"`
	CompetitionTitle string    `json:"competition_title"`
	EntryNumber      string    `json:"entry_number"`
	WonAt            time.Time `json:"won_at"`
}

// GetPublic возвращает список победителей без персональных данных
func (s *WinnerService) GetPublic() ([]PublicWinner, error) {
	winners, err := s.winnerRepo.GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]PublicWinner, 0, len(winners))
	for _, w := range winners {
		pw := PublicWinner{WonAt: w.CreatedAt}
		if w.User != nil {
			pw.WinnerName = w.User.FullName
			pw.County = w.User.County
		}
		if w.Competition != nil {
			pw.CompetitionTitle = w.Competition.Title
		}
		if w.Entry != nil {
			pw.EntryNumber = w.Entry.EntryNumber
		}
		out = append(out, pw)
	}
	return out, nil
}

// MarkPrizeAwarded помечает приз как выданный
func (s *WinnerService) MarkPrizeAwarded(id uuid.UUID) error {
	return s.winnerRepo.MarkPrizeAwarded(id)
}

// NotifyWinner отправляет победителю письмо с деталями выигрыша.
// Требует заполненных связей User, Competition и Entry.
func (s *WinnerService) NotifyWinner(id uuid.UUID) error {
	if s.mailer == nil {
		return apperrors.ErrMailerNotConfigured
	}

	winner, err := s.winnerRepo.GetByID(id)
	if err != nil {
		return err
	}

	if winner.User == nil || winner.Competition == nil || winner.Entry == nil {
		return fmt.Errorf("у записи победителя %s не заполнены связанные данные", id)
	}

	err = s.mailer.SendWinnerNotification(
		winner.User.Email,
		winner.User.FullName,
		winner.Competition.Title,
		winner.Entry.EntryNumber,
	)
	if err != nil {
		log.Printf("[WinnerService] Ошибка отправки уведомления победителю %s: %v", id, err)
		return err
	}
	return nil
}
