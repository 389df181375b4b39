package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Competition представляет конкурс с рекламой и вопросом на сообразительность
type Competition struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string    `gorm:"size:100;not null" json:"title"`
	Description   string    `gorm:"size:1000" json:"description"`
	AdURL         string    `gorm:"size:255" json:"ad_url"`
	Question      string    `gorm:"size:500;not null" json:"question"`
	CorrectAnswer string    `gorm:"size:255;not null" json:"-"` // Скрыто от клиента
	CreatedAt     time.Time `json:"created_at"`
	EndsAt        time.Time `gorm:"not null" json:"ends_at"`
}

// BeforeCreate присваивает UUID, если он не был задан явно
func (c *Competition) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// IsActive проверяет, активен ли конкурс (прием заявок открыт до ends_at)
func (c *Competition) IsActive() bool {
	return time.Now().Before(c.EndsAt)
}

// IsCorrectAnswer проверяет ответ пользователя.
// Сравнение регистронезависимое: обе строки приводятся к нижнему регистру.
// Пробелы не обрезаются: "Paris " не равно "Paris".
func (c *Competition) IsCorrectAnswer(answer string) bool {
	return strings.ToLower(answer) == strings.ToLower(c.CorrectAnswer)
}
