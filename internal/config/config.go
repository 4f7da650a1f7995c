package config

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	MongoDB  string
	Port     string

	CORSOrigins string

	SMTPServer   string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	AdminEmail   string

	JWTSecret string

	StorageDriver string
	UploadDir     string

	RedisAddr     string
	RedisPassword string
}

func LoadConfig() *Config {
	// Only load .env when running locally; deployed environments inject
	// their own variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Warn("could not load .env file", "error", err)
		}
	}

	cfg := &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "teklif_sistemi"),
		Port:          getEnv("PORT", "8080"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		SMTPServer:    getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}
	cfg.FromEmail = getEnv("FROM_EMAIL", cfg.SMTPUsername)
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.SMTPUsername
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = generateSecret()
		slog.Warn("JWT_SECRET not set, using a generated secret; customer sessions will not survive a restart")
	}

	return cfg
}

func generateSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		slog.Error("failed to generate session secret", "error", err)
		os.Exit(1)
	}
	return hex.EncodeToString(buf)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("invalid integer environment variable", "key", key, "value", value)
	}
	return fallback
}
