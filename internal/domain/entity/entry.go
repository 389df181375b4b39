package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry представляет заявку пользователя на участие в конкурсе.
// Уникальный индекс по паре (user_id, competition_id) гарантирует не более
// одной заявки на конкурс даже при конкурентных отправках.
// Записи никогда не изменяются и не удаляются после вставки.
type Entry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entries_user_competition" json:"user_id"`
	CompetitionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entries_user_competition" json:"competition_id"`
	EntryNumber   string    `gorm:"size:8;not null" json:"entry_number"`
	Answer        string    `gorm:"size:255;not null" json:"answer"`
	Correct       bool      `gorm:"not null" json:"correct"`
	CreatedAt     time.Time `json:"created_at"`

	Competition *Competition `gorm:"foreignKey:CompetitionID" json:"competition,omitempty"`
}

// BeforeCreate присваивает UUID, если он не был задан явно
func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
