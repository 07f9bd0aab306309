package email

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured - не заданы учетные данные SMTP
	ErrNotConfigured = errors.New("email: smtp credentials are not configured")
	// ErrAuth - сервер отклонил учетные данные (SMTP 535)
	ErrAuth = errors.New("email: smtp authentication failed")
)

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет письмо
	Send(ctx context.Context, email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	// Render рендерит HTML шаблон
	Render(templateName string, data TemplateData) (string, error)

	// RenderText рендерит текстовый шаблон без HTML-экранирования
	RenderText(templateName string, data TemplateData) (string, error)
}
