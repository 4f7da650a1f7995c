package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "teklif_sistemi", cfg.MongoDB)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfigGeneratesEphemeralSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	first := LoadConfig()
	second := LoadConfig()

	assert.NotEmpty(t, first.JWTSecret)
	assert.NotEmpty(t, second.JWTSecret)
	assert.NotEqual(t, first.JWTSecret, second.JWTSecret)
}

func TestLoadConfigExplicitSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "sabit-gizli-anahtar")

	cfg := LoadConfig()
	assert.Equal(t, "sabit-gizli-anahtar", cfg.JWTSecret)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USERNAME", "mailer@example.com")

	cfg := LoadConfig()

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "mailer@example.com", cfg.FromEmail)
	assert.Equal(t, "mailer@example.com", cfg.AdminEmail)
}

func TestLoadConfigExplicitFromEmail(t *testing.T) {
	t.Setenv("SMTP_USERNAME", "mailer@example.com")
	t.Setenv("FROM_EMAIL", "noreply@example.com")
	t.Setenv("ADMIN_EMAIL", "patron@example.com")

	cfg := LoadConfig()

	assert.Equal(t, "noreply@example.com", cfg.FromEmail)
	assert.Equal(t, "patron@example.com", cfg.AdminEmail)
}

func TestGetEnvIntInvalid(t *testing.T) {
	t.Setenv("SMTP_PORT", "abc")

	cfg := LoadConfig()
	assert.Equal(t, 587, cfg.SMTPPort)
}
