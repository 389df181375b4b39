package handler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// Компактные in-memory репозитории для тестов обработчиков

type stubCompetitionRepo struct {
	competitions map[uuid.UUID]*entity.Competition
}

func newStubCompetitionRepo() *stubCompetitionRepo {
	return &stubCompetitionRepo{competitions: make(map[uuid.UUID]*entity.Competition)}
}

func (r *stubCompetitionRepo) Create(c *entity.Competition) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.competitions[c.ID] = c
	return nil
}

func (r *stubCompetitionRepo) GetByID(id uuid.UUID) (*entity.Competition, error) {
	c, ok := r.competitions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c, nil
}

func (r *stubCompetitionRepo) GetAll() ([]entity.Competition, error) {
	var out []entity.Competition
	for _, c := range r.competitions {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompetitionRepo) GetActive() ([]entity.Competition, error) {
	var out []entity.Competition
	for _, c := range r.competitions {
		if c.IsActive() {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCompetitionRepo) Update(c *entity.Competition) error {
	r.competitions[c.ID] = c
	return nil
}

func (r *stubCompetitionRepo) Delete(id uuid.UUID) error {
	delete(r.competitions, id)
	return nil
}

func (r *stubCompetitionRepo) CountActive() (int64, error) {
	active, _ := r.GetActive()
	return int64(len(active)), nil
}

type stubEntryRepo struct {
	mu      sync.Mutex
	entries []*entity.Entry
	byID    map[uuid.UUID]*entity.Competition
}

func newStubEntryRepo(competitions *stubCompetitionRepo) *stubEntryRepo {
	return &stubEntryRepo{byID: competitions.competitions}
}

func (r *stubEntryRepo) CreateWithDailyLimit(entry *entity.Entry, since time.Time, limit int, onlyCorrect bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit > 0 {
		var count int
		for _, e := range r.entries {
			if e.UserID == entry.UserID && !e.CreatedAt.Before(since) && (!onlyCorrect || e.Correct) {
				count++
			}
		}
		if count >= limit {
			return apperrors.ErrDailyLimitReached
		}
	}

	for _, e := range r.entries {
		if e.UserID == entry.UserID && e.CompetitionID == entry.CompetitionID {
			return apperrors.ErrAlreadyEntered
		}
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubEntryRepo) HasUserEntered(userID, competitionID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.UserID == userID && e.CompetitionID == competitionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubEntryRepo) CountSince(userID uuid.UUID, since time.Time, onlyCorrect bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, e := range r.entries {
		if e.UserID == userID && !e.CreatedAt.Before(since) && (!onlyCorrect || e.Correct) {
			count++
		}
	}
	return count, nil
}

func (r *stubEntryRepo) GetCorrectByUser(userID uuid.UUID) ([]entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Entry
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.UserID == userID && e.Correct {
			copied := *e
			if competition, ok := r.byID[e.CompetitionID]; ok {
				copied.Competition = competition
			}
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) CountCorrectByCompetition(competitionID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, e := range r.entries {
		if e.CompetitionID == competitionID && e.Correct {
			count++
		}
	}
	return count, nil
}

func (r *stubEntryRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.entries)), nil
}

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *stubUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	if err := user.BeforeCreate(nil); err != nil {
		return err
	}
	if err := user.BeforeSave(nil); err != nil {
		return err
	}
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubUserRepo) Update(user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

type stubRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.RefreshToken
}

func newStubRefreshTokenRepo() *stubRefreshTokenRepo {
	return &stubRefreshTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *stubRefreshTokenRepo) CreateToken(token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.Token] = token
	return nil
}

func (r *stubRefreshTokenRepo) GetTokenByValue(value string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[value]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if !token.IsValid() {
		return nil, apperrors.ErrExpiredToken
	}
	return token, nil
}

func (r *stubRefreshTokenRepo) MarkTokenAsExpired(value string, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[value]
	if !ok {
		return apperrors.ErrNotFound
	}
	now := time.Now()
	token.IsExpired = true
	token.RevokedAt = &now
	token.Reason = reason
	return nil
}

func (r *stubRefreshTokenRepo) MarkAllAsExpiredForUser(userID uuid.UUID, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID && token.IsValid() {
			token.IsExpired = true
			token.RevokedAt = &now
			token.Reason = reason
		}
	}
	return nil
}

func (r *stubRefreshTokenRepo) CleanupExpiredTokens() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, token := range r.tokens {
		if !token.IsExpired && time.Now().After(token.ExpiresAt) {
			token.IsExpired = true
			count++
		}
	}
	return count, nil
}

type stubConsentRepo struct {
	records []entity.ConsentRecord
}

func (r *stubConsentRepo) Create(record *entity.ConsentRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	r.records = append(r.records, *record)
	return nil
}

func (r *stubConsentRepo) GetLatestForUser(userID uuid.UUID) (*entity.ConsentRecord, error) {
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if rec.UserID != nil && *rec.UserID == userID {
			return &rec, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubConsentRepo) List(limit, offset int) ([]entity.ConsentRecord, error) {
	if offset >= len(r.records) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.records) {
		end = len(r.records)
	}
	return r.records[offset:end], nil
}

func (r *stubConsentRepo) Count() (int64, error) {
	return int64(len(r.records)), nil
}

type stubWinnerRepo struct {
	winners map[uuid.UUID]*entity.Winner
}

func newStubWinnerRepo() *stubWinnerRepo {
	return &stubWinnerRepo{winners: make(map[uuid.UUID]*entity.Winner)}
}

func (r *stubWinnerRepo) GetAll() ([]entity.Winner, error) {
	var out []entity.Winner
	for _, w := range r.winners {
		out = append(out, *w)
	}
	return out, nil
}

func (r *stubWinnerRepo) GetByID(id uuid.UUID) (*entity.Winner, error) {
	w, ok := r.winners[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return w, nil
}

func (r *stubWinnerRepo) MarkPrizeAwarded(id uuid.UUID) error {
	w, ok := r.winners[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	w.PrizeAwarded = true
	return nil
}

func (r *stubWinnerRepo) CountPending() (int64, error) {
	var count int64
	for _, w := range r.winners {
		if !w.PrizeAwarded {
			count++
		}
	}
	return count, nil
}
