package email

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"strings"

	"gopkg.in/gomail.v2"

	"inflou_backend/internal/logger"
)

// sender - то, что нужно от gomail.Dialer
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPProvider реализует Provider поверх gomail.
// На 587 порту gomail сам переходит на STARTTLS.
type SMTPProvider struct {
	config *SMTPConfig
	dialer sender
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// Send отправляет письмо от имени SMTP пользователя
func (p *SMTPProvider) Send(ctx context.Context, email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(email.To) == 0 {
		return fmt.Errorf("email: no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := p.buildMessage(email)

	err := p.dialer.DialAndSend(m)
	logger.MailLog("smtp", strings.Join(email.To, ","), err)
	if err != nil {
		return classifyError(err)
	}
	return nil
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	if !p.config.HasCredentials() {
		return ErrNotConfigured
	}

	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}

	return nil
}

func (p *SMTPProvider) buildMessage(email *Email) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.Username, p.config.FromName)
	m.SetHeader("To", email.To...)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)

	switch {
	case email.Body != "" && email.HTMLBody != "":
		m.SetBody("text/plain", email.Body)
		m.AddAlternative("text/html", email.HTMLBody)
	case email.HTMLBody != "":
		m.SetBody("text/html", email.HTMLBody)
	default:
		m.SetBody("text/plain", email.Body)
	}
	return m
}

// classifyError отделяет отказ в аутентификации от прочих ошибок доставки
func classifyError(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) && tpErr.Code == 535 {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	// gomail.SendAll оборачивает ошибки через %v
	if strings.HasPrefix(err.Error(), "535 ") || strings.Contains(err.Error(), " 535 ") {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return fmt.Errorf("email: send failed: %w", err)
}
