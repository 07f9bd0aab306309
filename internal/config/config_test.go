package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("SERVER_ENV", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "info@detwet.com", cfg.Email.ContactRecipient)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxSize)
	assert.Equal(t, []string{"png", "jpg", "jpeg", "gif", "pdf"}, cfg.Upload.AllowedExtensions)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
  env: production
  base_url: https://inflou.example/
database:
  url: postgres://file
storage:
  type: " S3 "
  bucket: uploads
upload:
  allowed_extensions: [".PNG", "pdf"]
`), 0o600))

	t.Setenv("SERVER_ENV", "")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("SMTP_USERNAME", "bot@example.com")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("UNIFORM_LOGIN_ERRORS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://inflou.example", cfg.Server.BaseURL)
	assert.Equal(t, "postgres://env", cfg.Database.DSN)
	assert.Equal(t, "s3", cfg.Storage.Type)
	assert.Equal(t, "uploads", cfg.Storage.Bucket)
	assert.Equal(t, []string{"png", "pdf"}, cfg.Upload.AllowedExtensions)
	assert.True(t, cfg.MailConfigured())
	assert.True(t, cfg.Auth.UniformLoginErrors)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "SERVER_PORT")

	t.Setenv("SERVER_PORT", "")
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_LegacyMailVariables(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	t.Setenv("SMTP_USERNAME", "")
	t.Setenv("SMTP_PASSWORD", "")
	t.Setenv("CONTACT_RECIPIENT", "")
	t.Setenv("GMAIL_USER", "old@gmail.com")
	t.Setenv("GMAIL_APP_PASSWORD", "app-pass")
	t.Setenv("TO_EMAIL", "owner@example.com")

	cfg, err := Load(missing)
	require.NoError(t, err)
	assert.Equal(t, "old@gmail.com", cfg.Email.SMTPUsername)
	assert.Equal(t, "app-pass", cfg.Email.SMTPPassword)
	assert.Equal(t, "owner@example.com", cfg.Email.ContactRecipient)
	assert.True(t, cfg.MailConfigured())

	// новые имена важнее старых
	t.Setenv("SMTP_USERNAME", "bot@example.com")
	t.Setenv("CONTACT_RECIPIENT", "info@example.com")

	cfg, err = Load(missing)
	require.NoError(t, err)
	assert.Equal(t, "bot@example.com", cfg.Email.SMTPUsername)
	assert.Equal(t, "app-pass", cfg.Email.SMTPPassword)
	assert.Equal(t, "info@example.com", cfg.Email.ContactRecipient)
}

func TestLoad_MailNotConfiguredWithoutCredentials(t *testing.T) {
	for _, key := range []string{"SMTP_USERNAME", "SMTP_PASSWORD", "GMAIL_USER", "GMAIL_APP_PASSWORD"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.MailConfigured())
}
