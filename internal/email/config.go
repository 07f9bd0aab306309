package email

import (
	"inflou_backend/internal/config"
)

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host: "smtp.gmail.com",
		Port: 587,
	}
}

// ConfigFromApp переносит настройки почты из конфигурации приложения
func ConfigFromApp(cfg *config.Config) *SMTPConfig {
	c := DefaultConfig()
	if cfg.Email.SMTPHost != "" {
		c.Host = cfg.Email.SMTPHost
	}
	if cfg.Email.SMTPPort > 0 {
		c.Port = cfg.Email.SMTPPort
	}
	c.Username = cfg.Email.SMTPUsername
	c.Password = cfg.Email.SMTPPassword
	c.FromName = cfg.Email.FromName
	return c
}

// HasCredentials - заданы ли логин и пароль
func (c *SMTPConfig) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}
