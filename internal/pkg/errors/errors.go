package errors

import "errors"

// Централизованные ошибки приложения.
// Репозитории и сервисы возвращают эти значения (возможно, обернутые через %w),
// а обработчики сопоставляют их с HTTP-статусами в одном месте.
var (
	// ErrNotFound возвращается, когда запись не найдена
	ErrNotFound = errors.New("запись не найдена")

	// ErrAlreadyEntered возвращается, когда у пользователя уже есть заявка на этот конкурс
	ErrAlreadyEntered = errors.New("пользователь уже участвует в этом конкурсе")

	// ErrDailyLimitReached возвращается при достижении дневного лимита заявок
	ErrDailyLimitReached = errors.New("достигнут дневной лимит заявок")

	// ErrCompetitionEnded возвращается, когда конкурс уже завершен
	ErrCompetitionEnded = errors.New("конкурс завершен")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("неверный email или пароль")

	// ErrEmailAlreadyExists возвращается при регистрации с занятым email
	ErrEmailAlreadyExists = errors.New("email уже зарегистрирован")

	// ErrExpiredToken возвращается, когда токен помечен как истекший
	ErrExpiredToken = errors.New("token is expired")

	// ErrInvalidToken возвращается, когда токен не прошел проверку подписи или формата
	ErrInvalidToken = errors.New("token is invalid")

	// ErrForbidden возвращается, когда у пользователя недостаточно прав
	ErrForbidden = errors.New("недостаточно прав для выполнения операции")

	// ErrMailerNotConfigured возвращается, когда операция требует отправки
	// почты, а SMTP не настроен
	ErrMailerNotConfigured = errors.New("почтовый сервис не настроен")
)
