package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// In-memory репозитории для тестов сервисов.
// Повторяют контракт postgres-реализаций, включая трансляцию
// нарушений уникальности в ошибки приложения.

type fakeCompetitionRepo struct {
	competitions map[uuid.UUID]*entity.Competition
}

func newFakeCompetitionRepo() *fakeCompetitionRepo {
	return &fakeCompetitionRepo{competitions: make(map[uuid.UUID]*entity.Competition)}
}

func (r *fakeCompetitionRepo) Create(c *entity.Competition) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.competitions[c.ID] = c
	return nil
}

func (r *fakeCompetitionRepo) GetByID(id uuid.UUID) (*entity.Competition, error) {
	c, ok := r.competitions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c, nil
}

func (r *fakeCompetitionRepo) GetAll() ([]entity.Competition, error) {
	var out []entity.Competition
	for _, c := range r.competitions {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCompetitionRepo) GetActive() ([]entity.Competition, error) {
	var out []entity.Competition
	for _, c := range r.competitions {
		if c.IsActive() {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCompetitionRepo) Update(c *entity.Competition) error {
	r.competitions[c.ID] = c
	return nil
}

func (r *fakeCompetitionRepo) Delete(id uuid.UUID) error {
	delete(r.competitions, id)
	return nil
}

func (r *fakeCompetitionRepo) CountActive() (int64, error) {
	active, _ := r.GetActive()
	return int64(len(active)), nil
}

type fakeEntryRepo struct {
	mu      sync.Mutex
	entries []*entity.Entry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{}
}

func (r *fakeEntryRepo) CreateWithDailyLimit(entry *entity.Entry, since time.Time, limit int, onlyCorrect bool) error {
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

func (r *fakeEntryRepo) HasUserEntered(userID, competitionID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.UserID == userID && e.CompetitionID == competitionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEntryRepo) CountSince(userID uuid.UUID, since time.Time, onlyCorrect bool) (int64, error) {
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

func (r *fakeEntryRepo) GetCorrectByUser(userID uuid.UUID) ([]entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Entry
	// Самые новые первыми
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.UserID == userID && e.Correct {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) CountCorrectByCompetition(competitionID uuid.UUID) (int64, error) {
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

func (r *fakeEntryRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.entries)), nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	// Воспроизводим хуки GORM
	if err := user.BeforeCreate(nil); err != nil {
		return err
	}
	if err := user.BeforeSave(nil); err != nil {
		return err
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	if err := user.BeforeSave(nil); err != nil {
		return err
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*entity.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) CreateToken(token *entity.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeRefreshTokenRepo) GetTokenByValue(value string) (*entity.RefreshToken, error) {
	token, ok := r.tokens[value]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if !token.IsValid() {
		return nil, apperrors.ErrExpiredToken
	}
	return token, nil
}

func (r *fakeRefreshTokenRepo) MarkTokenAsExpired(value, reason string) error {
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

func (r *fakeRefreshTokenRepo) MarkAllAsExpiredForUser(userID uuid.UUID, reason string) error {
	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID && !token.IsExpired {
			token.IsExpired = true
			token.RevokedAt = &now
			token.Reason = reason
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) CleanupExpiredTokens() (int64, error) {
	var cleaned int64
	now := time.Now()
	for _, token := range r.tokens {
		if !token.IsExpired && token.ExpiresAt.Before(now) {
			token.IsExpired = true
			token.Reason = "expired"
			cleaned++
		}
	}
	return cleaned, nil
}

// fakeMailer записывает отправленные письма; канал позволяет дождаться
// фоновой отправки в тестах
type sentMail struct {
	To               string
	Name             string
	CompetitionTitle string
	EntryNumber      string
}

type fakeMailer struct {
	sent chan sentMail
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan sentMail, 10)}
}

func (m *fakeMailer) SendEntryConfirmation(to, name, competitionTitle, entryNumber string) error {
	m.sent <- sentMail{To: to, Name: name, CompetitionTitle: competitionTitle, EntryNumber: entryNumber}
	return nil
}

func (m *fakeMailer) SendWinnerNotification(to, name, competitionTitle, entryNumber string) error {
	m.sent <- sentMail{To: to, Name: name, CompetitionTitle: competitionTitle, EntryNumber: entryNumber}
	return nil
}
