package service

import (
	"github.com/frankwrk/neomax-engage-rules/internal/domain/repository"
)

// DashboardStats - сводные показатели для панели администратора
type DashboardStats struct {
	TotalUsers         int64 `json:"total_users"`
	ActiveCompetitions int64 `json:"active_competitions"`
	TotalEntries       int64 `json:"total_entries"`
	PendingWinners     int64 `json:"pending_winners"`
}

// StatsService собирает показатели по всем хранилищам
type StatsService struct {
	userRepo        repository.UserRepository
	competitionRepo repository.CompetitionRepository
	entryRepo       repository.EntryRepository
	winnerRepo      repository.WinnerRepository
}

// NewStatsService создает новый сервис статистики
func NewStatsService(
	userRepo repository.UserRepository,
	competitionRepo repository.CompetitionRepository,
	entryRepo repository.EntryRepository,
	winnerRepo repository.WinnerRepository,
) *StatsService {
	return &StatsService{
		userRepo:        userRepo,
		competitionRepo: competitionRepo,
		entryRepo:       entryRepo,
		winnerRepo:      winnerRepo,
	}
}

// Dashboard возвращает сводные показатели
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}

	competitions, err := s.competitionRepo.CountActive()
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.Count()
	if err != nil {
		return nil, err
	}

	pending, err := s.winnerRepo.CountPending()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:         users,
		ActiveCompetitions: competitions,
		TotalEntries:       entries,
		PendingWinners:     pending,
	}, nil
}
