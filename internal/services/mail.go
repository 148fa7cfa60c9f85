package services

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"os"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		slog.Warn("mail service disabled: missing SMTP environment variables")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		msg := []byte("To: " + to[0] + "\r\n" +
			"From: " + s.From + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"\r\n" + body + "\r\n")

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			slog.Warn("failed to send mail", "to", to[0], "error", err)
		}
	}()
}

// SendPasswordResetEmail delivers the reset code. No-op when SMTP is
// not configured.
func (s *MailService) SendPasswordResetEmail(to, code string) {
	body := fmt.Sprintf("Your StudyHive password reset code is %s. It expires in 10 minutes.", code)
	s.sendAsync([]string{to}, "StudyHive password reset", body)
}
