package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Типы согласия на использование cookie
const (
	ConsentTypeAll       = "all"
	ConsentTypeNecessary = "necessary"
	ConsentTypeCustom    = "custom"
)

// ConsentPreferences хранит выбор пользователя по категориям cookie
type ConsentPreferences struct {
	Necessary  bool `json:"necessary"`
	Functional bool `json:"functional"`
	Analytics  bool `json:"analytics"`
	Marketing  bool `json:"marketing"`
}

// Scan реализует интерфейс sql.Scanner для ConsentPreferences
func (p *ConsentPreferences) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value")
	}

	return json.Unmarshal(bytes, p)
}

// Value реализует интерфейс driver.Valuer для ConsentPreferences
func (p ConsentPreferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// ConsentRecord представляет запись о согласии на cookie.
// UserID может быть пустым: согласие сохраняется и для анонимных посетителей.
type ConsentRecord struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      *uuid.UUID         `gorm:"type:uuid" json:"user_id,omitempty"`
	IPAddress   string             `gorm:"size:45" json:"ip_address"`
	UserAgent   string             `gorm:"size:255" json:"user_agent"`
	Preferences ConsentPreferences `gorm:"type:jsonb;not null" json:"preferences"`
	ConsentType string             `gorm:"size:20;not null" json:"consent_type"` // all, necessary, custom
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// BeforeCreate присваивает UUID, если он не был задан явно
func (c *ConsentRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName определяет имя таблицы для GORM
func (ConsentRecord) TableName() string {
	return "consent_records"
}
