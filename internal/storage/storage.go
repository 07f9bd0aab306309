package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"inflou_backend/internal/config"
)

// ErrInvalidPath - пустой ключ или ключ, выходящий за корень хранилища
var ErrInvalidPath = errors.New("storage: invalid path")

// Storage - интерфейс файлового хранилища для загрузок
type Storage interface {
	// Save сохраняет файл по ключу
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete удаляет файл
	Delete(ctx context.Context, path string) error

	// Exists проверяет наличие файла
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL возвращает публичный URL файла
	GetURL(ctx context.Context, path string) (string, error)
}

// Config - настройки хранилища
type Config struct {
	Type      string // local, s3, r2
	BasePath  string // каталог для local, префикс ключей для S3
	BaseURL   string // публичный базовый URL
	Bucket    string // S3
	Region    string // S3
	AccessKey string // S3
	SecretKey string // S3
	Endpoint  string // R2, MinIO или другой S3-совместимый адрес
}

// ConfigFromApp переносит настройки хранилища из конфигурации приложения
func ConfigFromApp(cfg *config.Config) Config {
	return Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	}
}

// NewStorage выбирает реализацию по cfg.Type
func NewStorage(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2", "r2":
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// cleanKey нормализует ключ и отклоняет сегменты ".."
func cleanKey(key string) (string, error) {
	key = strings.ReplaceAll(key, "\\", "/")
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" || cleaned == "." {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}
