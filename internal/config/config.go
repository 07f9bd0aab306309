package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"inflou_backend/internal/logger"
)

type Config struct {
	Server struct {
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
		Env     string `yaml:"env"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`

	Database struct {
		DSN          string `yaml:"url"`
		AutoMigrate  bool   `yaml:"auto_migrate"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
	} `yaml:"database"`

	Email struct {
		SMTPHost         string `yaml:"smtp_host"`
		SMTPPort         int    `yaml:"smtp_port"`
		SMTPUsername     string `yaml:"smtp_user"`
		SMTPPassword     string `yaml:"smtp_password"`
		FromName         string `yaml:"from_name"`
		ContactRecipient string `yaml:"contact_recipient"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3, r2
		BasePath  string `yaml:"base_path"`  // каталог для local
		BaseURL   string `yaml:"base_url"`   // публичный базовый URL
		Bucket    string `yaml:"bucket"`     // S3
		Region    string `yaml:"region"`     // S3
		AccessKey string `yaml:"access_key"` // S3
		SecretKey string `yaml:"secret_key"` // S3
		Endpoint  string `yaml:"endpoint"`   // R2, MinIO или другой S3-совместимый адрес
	} `yaml:"storage"`

	Upload struct {
		MaxSize           int64    `yaml:"max_size"`
		AllowedExtensions []string `yaml:"allowed_extensions"`
	} `yaml:"upload"`

	Auth struct {
		PasswordHasher     string `yaml:"password_hasher"` // bcrypt, argon2id
		BcryptCost         int    `yaml:"bcrypt_cost"`
		UniformLoginErrors bool   `yaml:"uniform_login_errors"`
	} `yaml:"auth"`
}

const defaultConfigPath = "config/config.yaml"

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 5000
	cfg.Server.Env = "development"
	cfg.Server.BaseURL = "http://localhost:5000"

	cfg.Database.AutoMigrate = true
	cfg.Database.MaxOpenConns = 10
	cfg.Database.MaxIdleConns = 5

	cfg.Email.SMTPHost = "smtp.gmail.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "1nFloU"
	cfg.Email.ContactRecipient = "info@detwet.com"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/static/uploads"

	cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	cfg.Upload.AllowedExtensions = []string{"png", "jpg", "jpeg", "gif", "pdf"}

	cfg.Auth.PasswordHasher = "bcrypt"
	cfg.Auth.BcryptCost = 12

	return &cfg
}

// Load читает .env, затем YAML (если файл есть), затем переменные окружения.
// Пустой path означает CONFIG_PATH или config/config.yaml.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to read .env", "error", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = defaultConfigPath
	}

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("config file not found, using defaults and environment", "path", path)
			return nil
		}
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Env, "SERVER_ENV")
	setString(&c.Server.Host, "SERVER_HOST")
	setString(&c.Server.BaseURL, "BASE_URL")
	setString(&c.Database.DSN, "DATABASE_URL")
	setString(&c.Email.SMTPHost, "SMTP_HOST")
	// GMAIL_* и TO_EMAIL - старые имена переменных, новые имеют приоритет
	setString(&c.Email.SMTPUsername, "SMTP_USERNAME", "GMAIL_USER")
	setString(&c.Email.SMTPPassword, "SMTP_PASSWORD", "GMAIL_APP_PASSWORD")
	setString(&c.Email.ContactRecipient, "CONTACT_RECIPIENT", "TO_EMAIL")
	setString(&c.Storage.Type, "STORAGE_TYPE")
	setString(&c.Storage.BasePath, "UPLOAD_DIR")
	setString(&c.Storage.Bucket, "STORAGE_BUCKET")
	setString(&c.Storage.Region, "STORAGE_REGION")
	setString(&c.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&c.Storage.SecretKey, "STORAGE_SECRET_KEY")
	setString(&c.Storage.Endpoint, "STORAGE_ENDPOINT")
	setString(&c.Auth.PasswordHasher, "PASSWORD_HASHER")

	if err := setInt(&c.Server.Port, "SERVER_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Email.SMTPPort, "SMTP_PORT"); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("UNIFORM_LOGIN_ERRORS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("UNIFORM_LOGIN_ERRORS: %w", err)
		}
		c.Auth.UniformLoginErrors = b
	}
	return nil
}

func (c *Config) normalize() {
	c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")
	c.Storage.Type = strings.ToLower(strings.TrimSpace(c.Storage.Type))
	for i, ext := range c.Upload.AllowedExtensions {
		c.Upload.AllowedExtensions[i] = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	}
}

// IsProduction - true для боевого окружения
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Addr - адрес для http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// MailConfigured - заданы ли учетные данные SMTP
func (c *Config) MailConfigured() bool {
	return c.Email.SMTPUsername != "" && c.Email.SMTPPassword != ""
}

// setString берет первую непустую переменную из keys
func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
			return
		}
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
