package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Winner представляет победителя конкурса.
// Записи создаются отдельным процессом розыгрыша; сервис их только читает
// и помечает выдачу приза.
type Winner struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	CompetitionID uuid.UUID `gorm:"type:uuid;not null" json:"competition_id"`
	EntryID       uuid.UUID `gorm:"type:uuid;not null" json:"entry_id"`
	PrizeAwarded  bool      `gorm:"not null;default:false" json:"prize_awarded"`
	CreatedAt     time.Time `json:"created_at"`

	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Competition *Competition `gorm:"foreignKey:CompetitionID" json:"competition,omitempty"`
	Entry       *Entry       `gorm:"foreignKey:EntryID" json:"entry,omitempty"`
}

// BeforeCreate присваивает UUID, если он не был задан явно
func (w *Winner) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
