package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Admin      AdminConfig
	Cloudinary CloudinaryConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// AdminConfig holds the single admin credential and token settings.
// PasswordHash is a bcrypt hash; when unset, Password is hashed at startup.
// There are no user accounts beyond this one credential.
type AdminConfig struct {
	PasswordHash string
	Password     string
	TokenSecret  string
	TokenExpiry  time.Duration
	Issuer       string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         envOr("PORT", "8080"),
			Env:          envOr("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             envOr("DATABASE_DSN", "root:@tcp(localhost:3306)/artistry?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: time.Hour,
		},
		Admin: AdminConfig{
			PasswordHash: envOr("ADMIN_PASSWORD_HASH", ""),
			// Dev fallback so a fresh checkout works; set ADMIN_PASSWORD_HASH
			// before deploying.
			Password:    envOr("ADMIN_PASSWORD", "admin123"),
			TokenSecret: envOr("ADMIN_TOKEN_SECRET", "change-me-in-production"),
			TokenExpiry: 24 * time.Hour,
			Issuer:      "cakes-artistry",
		},
		Cloudinary: CloudinaryConfig{
			CloudName: envOr("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    envOr("CLOUDINARY_API_KEY", ""),
			APISecret: envOr("CLOUDINARY_API_SECRET", ""),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
