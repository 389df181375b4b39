package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Entries  EntriesConfig
	SMTP     SMTPConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig содержит настройки JWT
type JWTConfig struct {
	Secret        string
	ExpirationHrs int
}

// AuthConfig содержит настройки аутентификации
type AuthConfig struct {
	// RefreshTokenLifetime: Время жизни refresh-токена в днях. По умолчанию 30.
	RefreshTokenLifetime int `mapstructure:"refresh_token_lifetime"`
}

// EntriesConfig содержит политику приема заявок
type EntriesConfig struct {
	// DailyLimit: Максимум заявок пользователя за календарный день. По умолчанию 1.
	DailyLimit int `mapstructure:"daily_limit"`

	// CountOnlyCorrect: Учитывать в дневном лимите только заявки с правильным
	// ответом. По умолчанию false - считаются все заявки.
	CountOnlyCorrect bool `mapstructure:"count_only_correct"`
}

// SMTPConfig содержит настройки исходящей почты
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ReplyTo  string `mapstructure:"reply_to"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из файла
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Проверка обязательных параметров
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is required in config")
	}

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("database configuration (host, dbname) is incomplete in config")
	}

	// Значения по умолчанию
	if cfg.Entries.DailyLimit == 0 {
		cfg.Entries.DailyLimit = 1
	}
	if cfg.Auth.RefreshTokenLifetime <= 0 {
		cfg.Auth.RefreshTokenLifetime = 30
	}

	return &cfg, nil
}
