package dto

import (
	"time"
)

// RegisterRequest - тело запроса регистрации
type RegisterRequest struct {
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=8"`
	ConfirmPassword string   `json:"confirm_password" binding:"required,eqfield=Password"`
	FullName        string   `json:"full_name" binding:"required,min=2,max=100"`
	MobileNumber    string   `json:"mobile_number" binding:"required,min=10,max=18"`
	Gender          string   `json:"gender" binding:"required,oneof=male female other"`
	AgeRange        string   `json:"age_range" binding:"required,agerange"`
	County          string   `json:"county" binding:"required,county"`
	Interests       []string `json:"interests" binding:"required,min=3,max=10,dive,interest"`
	TermsAccepted   bool     `json:"terms_accepted" binding:"required"`
}

// LoginRequest - тело запроса входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest - тело запроса обновления сессии
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// EntrySubmissionRequest - тело запроса отправки заявки на конкурс.
// CompetitionTitle принимается для совместимости с клиентами, которые его
// отправляют, но не используется: название берется из записи конкурса.
type EntrySubmissionRequest struct {
	CompetitionID    string `json:"competition_id" binding:"required,uuid"`
	Answer           string `json:"answer" binding:"required"`
	CompetitionTitle string `json:"competition_title"`
}

// ProfileUpdateRequest - тело запроса обновления профиля
type ProfileUpdateRequest struct {
	FullName     string   `json:"full_name" binding:"required,min=2,max=100"`
	MobileNumber string   `json:"mobile_number" binding:"required,min=10,max=18"`
	Gender       string   `json:"gender" binding:"required,oneof=male female other"`
	AgeRange     string   `json:"age_range" binding:"required,agerange"`
	County       string   `json:"county" binding:"required,county"`
	Interests    []string `json:"interests" binding:"required,min=3,max=10,dive,interest"`
}

// CompetitionRequest - тело запроса создания/обновления конкурса
type CompetitionRequest struct {
	Title         string    `json:"title" binding:"required,max=100"`
	Description   string    `json:"description" binding:"max=1000"`
	AdURL         string    `json:"ad_url" binding:"omitempty,url"`
	Question      string    `json:"question" binding:"required,max=500"`
	CorrectAnswer string    `json:"correct_answer" binding:"required,max=255"`
	EndsAt        time.Time `json:"ends_at" binding:"required"`
}

// ConsentPreferencesRequest - выбор по категориям cookie
type ConsentPreferencesRequest struct {
	Necessary  bool `json:"necessary"`
	Functional bool `json:"functional"`
	Analytics  bool `json:"analytics"`
	Marketing  bool `json:"marketing"`
}

// ConsentRequest - тело запроса сохранения согласия
type ConsentRequest struct {
	Preferences ConsentPreferencesRequest `json:"preferences" binding:"required"`
	ConsentType string                    `json:"consent_type" binding:"required,oneof=all necessary custom"`
}
