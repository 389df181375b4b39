package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Config содержит настройки SMTP для отправки писем
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ReplyTo  string
}

// Mailer отправляет транзакционные письма через SMTP
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	replyTo string
}

// New создает новый Mailer и возвращает ошибку при неполной конфигурации
func New(cfg Config) (*Mailer, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("SMTP host and from address are required for Mailer")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	return &Mailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		replyTo: cfg.ReplyTo,
	}, nil
}

// SendEntryConfirmation отправляет подтверждение принятой заявки
func (m *Mailer) SendEntryConfirmation(to, name, competitionTitle, entryNumber string) error {
	subject := fmt.Sprintf("Your Entry for %s is Confirmed!", competitionTitle)
	body := fmt.Sprintf(`<h2>Entry Confirmed</h2>
<p>Hi %s,</p>
<p>Your answer was correct and you have been entered into the prize draw for <strong>%s</strong>.</p>
<p>Your entry number is <strong>%s</strong>. Keep it safe - winners are announced by entry number.</p>
<p>Good luck!</p>`, name, competitionTitle, entryNumber)

	return m.send(to, subject, body)
}

// SendWinnerNotification отправляет уведомление победителю
func (m *Mailer) SendWinnerNotification(to, name, competitionTitle, entryNumber string) error {
	subject := fmt.Sprintf("Congratulations! You won %s", competitionTitle)
	body := fmt.Sprintf(`<h2>You're a Winner!</h2>
<p>Hi %s,</p>
<p>Your entry <strong>%s</strong> has been drawn as the winner of <strong>%s</strong>.</p>
<p>We will contact you shortly with details on how to claim your prize.</p>`, name, entryNumber, competitionTitle)

	return m.send(to, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	if m.replyTo != "" {
		msg.SetHeader("Reply-To", m.replyTo)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("ошибка отправки письма: %w", err)
	}
	return nil
}
