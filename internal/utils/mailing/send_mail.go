package mailing

import (
	"fmt"
	"gopkg.in/gomail.v2"
	"recipehub/internal/utils"
	"strconv"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

type Mailer interface {
	SendMail(toEmail string, subject string, body string) error
	SendWelcome(toEmail string, displayName string) error
}

type smtpMailer struct {
	config MailConfig
	dial   func(m *gomail.Message, cfg MailConfig) error
}

func LoadMailConfig(cfg *utils.Config) MailConfig {
	return MailConfig{
		AppURL:       cfg.AppURL,
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPSender:   cfg.SMTPSenderName,
		SMTPEmail:    cfg.SMTPAuthEmail,
		SMTPPassword: cfg.SMTPAuthPassword,
	}
}

func NewMailer(cfg MailConfig) Mailer {
	return &smtpMailer{config: cfg, dial: dialAndSend}
}

func (s *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", s.config.SMTPEmail, s.config.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	return s.dial(mailer, s.config)
}

func (s *smtpMailer) SendWelcome(toEmail string, displayName string) error {
	return s.SendMail(toEmail, "Welcome to RecipeHub", WelcomeBody(displayName, s.config.AppURL))
}

func WelcomeBody(displayName, appURL string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>Your RecipeHub account is ready. Start sharing recipes at <a href=\"%s\">%s</a>.</p>",
		displayName, appURL, appURL,
	)
}

func dialAndSend(m *gomail.Message, cfg MailConfig) error {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP port %q: %w", cfg.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		cfg.SMTPHost,
		port,
		cfg.SMTPEmail,
		cfg.SMTPPassword,
	)
	return dialer.DialAndSend(m)
}

// NoopMailer is used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) SendMail(string, string, string) error { return nil }
func (NoopMailer) SendWelcome(string, string) error      { return nil }
