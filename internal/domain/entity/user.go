package entity

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет пользователя в системе
type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string      `gorm:"size:100;not null;unique" json:"email"`
	Password     string      `gorm:"size:100;not null" json:"-"`
	FullName     string      `gorm:"size:100;not null" json:"full_name"`
	MobileNumber string      `gorm:"size:20" json:"mobile_number"`
	Gender       string      `gorm:"size:10" json:"gender"`
	AgeRange     string      `gorm:"size:10" json:"age_range"`
	County       string      `gorm:"size:50" json:"county"`
	Interests    StringArray `gorm:"type:jsonb" json:"interests"`
	Role         string      `gorm:"size:20;not null;default:user" json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// BeforeCreate присваивает UUID, если он не был задан явно
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// BeforeSave хеширует пароль перед сохранением, только если он не является bcrypt-хешем
func (u *User) BeforeSave(tx *gorm.DB) error {
	// Хешируем пароль только если он:
	// 1. Не пустой
	// 2. Не является уже bcrypt-хешем (начинается с "$2a$", "$2b$" или "$2y$")
	if len(u.Password) > 0 && !strings.HasPrefix(u.Password, "$2a$") &&
		!strings.HasPrefix(u.Password, "$2b$") && !strings.HasPrefix(u.Password, "$2y$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[User.BeforeSave] Ошибка при хешировании пароля: %v", err)
			return err
		}
		u.Password = string(hashedPassword)
	}
	return nil
}

// CheckPassword сравнивает переданный пароль с хешем в базе
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin проверяет, является ли пользователь администратором
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
