package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/forgenova/console/internal/config"
	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/pkg/logger"
	"gorm.io/gorm"
)

// EmailService sends outbound mail. Connection settings come from the
// stored email settings row, falling back to the server config for any
// field the row leaves empty.
type EmailService struct {
	db  *gorm.DB
	cfg *config.SMTPConfig
}

type smtpConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseTLS   bool
}

func NewEmailService(db *gorm.DB, cfg *config.SMTPConfig) *EmailService {
	return &EmailService{db: db, cfg: cfg}
}

func (s *EmailService) getConfig() *smtpConfig {
	out := &smtpConfig{
		Host:     s.cfg.Host,
		Port:     s.cfg.Port,
		Username: s.cfg.Username,
		Password: s.cfg.Password,
		From:     s.cfg.From,
		UseTLS:   s.cfg.UseTLS,
	}

	var stored models.EmailSettings
	if err := s.db.First(&stored).Error; err == nil {
		if stored.SMTPHost != "" {
			out.Host = stored.SMTPHost
			out.UseTLS = stored.UseTLS
		}
		if stored.SMTPPort != 0 {
			out.Port = stored.SMTPPort
		}
		if stored.SMTPUsername != "" {
			out.Username = stored.SMTPUsername
		}
		if stored.SMTPPassword != "" {
			out.Password = stored.SMTPPassword
		}
		if stored.FromAddress != "" {
			out.From = stored.FromAddress
		}
	}

	if out.Port == 0 {
		out.Port = 587
	}

	return out
}

// SendPasswordReset satisfies the identity mailer contract.
func (s *EmailService) SendPasswordReset(email string) error {
	subject := "Password Reset Request"
	body := "<html><body style=\"font-family: Arial, sans-serif;\">" +
		"<h2>Password Reset</h2>" +
		"<p>A password reset was requested for your account. If this was you, follow the link in your account portal to choose a new password.</p>" +
		"<p>If you did not request this, you can ignore this email.</p>" +
		"</body></html>"
	return s.Send([]string{email}, subject, body)
}

// Send delivers an HTML email to the given recipients. Returns nil
// without sending when no SMTP host is configured.
func (s *EmailService) Send(to []string, subject, body string) error {
	cfg := s.getConfig()
	if cfg.Host == "" || len(to) == 0 {
		return nil
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	headers := map[string]string{
		"From":         from,
		"To":           strings.Join(to, ","),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	var err error
	if cfg.UseTLS {
		err = s.sendTLS(cfg, addr, auth, from, to, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, to, []byte(message.String()))
	}

	if err != nil {
		logger.Infof("[Email] Failed to send email: %v", err)
		return err
	}

	logger.Infof("[Email] Sent notification to %v", to)
	return nil
}

func (s *EmailService) sendTLS(cfg *smtpConfig, addr string, auth smtp.Auth, from string, to []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: cfg.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}

	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	if _, err = w.Write([]byte(message)); err != nil {
		return err
	}

	return w.Close()
}
