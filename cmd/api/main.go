package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frankwrk/neomax-engage-rules/internal/config"
	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/handler"
	"github.com/frankwrk/neomax-engage-rules/internal/handler/dto"
	pgrepo "github.com/frankwrk/neomax-engage-rules/internal/repository/postgres"
	"github.com/frankwrk/neomax-engage-rules/internal/service"
	"github.com/frankwrk/neomax-engage-rules/pkg/auth"
	"github.com/frankwrk/neomax-engage-rules/pkg/mailer"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// TranslateError нужен, чтобы нарушение уникального индекса приходило
	// как gorm.ErrDuplicatedKey и транслировалось в ошибки приложения
	db, err := gorm.Open(postgres.Open(cfg.Database.PostgresConnectionString()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Competition{},
		&entity.Entry{},
		&entity.Winner{},
		&entity.ConsentRecord{},
		&entity.RefreshToken{},
	)
	if err != nil {
		log.Fatalf("Ошибка миграции схемы: %v", err)
	}

	// Репозитории
	userRepo := pgrepo.NewUserRepo(db)
	competitionRepo := pgrepo.NewCompetitionRepo(db)
	winnerRepo := pgrepo.NewWinnerRepo(db)
	consentRepo := pgrepo.NewConsentRepo(db)

	entryRepo, err := pgrepo.NewEntryRepo(db)
	if err != nil {
		log.Fatalf("Ошибка создания репозитория заявок: %v", err)
	}

	refreshTokenRepo, err := pgrepo.NewRefreshTokenRepo(db)
	if err != nil {
		log.Fatalf("Ошибка создания репозитория refresh токенов: %v", err)
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Fatalf("Ошибка создания JWT сервиса: %v", err)
	}

	mail, err := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		ReplyTo:  cfg.SMTP.ReplyTo,
	})
	if err != nil {
		// Почта не обязательна для приема заявок: работаем без уведомлений
		log.Printf("Почта не настроена, уведомления отключены: %v", err)
	}

	// Сервисы
	var entryMailer service.EntryMailer
	var winnerMailer service.WinnerMailer
	if mail != nil {
		entryMailer = mail
		winnerMailer = mail
	}

	authService := service.NewAuthService(userRepo, refreshTokenRepo, jwtService, cfg.Auth.RefreshTokenLifetime)
	userService := service.NewUserService(userRepo)
	competitionService := service.NewCompetitionService(competitionRepo, entryRepo)
	entryService := service.NewEntryService(entryRepo, competitionRepo, entryMailer, cfg.Entries.DailyLimit, cfg.Entries.CountOnlyCorrect)
	winnerService := service.NewWinnerService(winnerRepo, winnerMailer)
	consentService := service.NewConsentService(consentRepo)
	statsService := service.NewStatsService(userRepo, competitionRepo, entryRepo, winnerRepo)

	if err := dto.RegisterCustomValidators(); err != nil {
		log.Fatalf("Ошибка регистрации валидаторов: %v", err)
	}

	router := handler.NewRouter(handler.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		Competition: handler.NewCompetitionHandler(competitionService),
		Entry:       handler.NewEntryHandler(entryService, userService),
		Winner:      handler.NewWinnerHandler(winnerService),
		Consent:     handler.NewConsentHandler(consentService),
		Admin:       handler.NewAdminHandler(statsService),
	}, jwtService)

	// Периодическая очистка просроченных refresh-токенов
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				authService.CleanupExpiredTokens()
			case <-cleanupDone:
				return
			}
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Сервер запущен на порту %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	// Корректное завершение по сигналу
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Останавливаем сервер...")
	close(cleanupDone)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Ошибка остановки сервера: %v", err)
	}
	log.Println("Сервер остановлен")
}
