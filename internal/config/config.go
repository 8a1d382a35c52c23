// Package config loads server settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage/sqlstore"
)

// devSecret signs tokens when JWT_SECRET is unset. It is fine for local use only.
const devSecret = "tutorbooks-dev-secret-change-me"

// Config holds the server settings.
type Config struct {
	Port                int
	DBDriver            string
	DatabaseURL         string
	StaticPath          string
	JWTSecret           string
	TokenTTL            time.Duration
	AdminEmail          string
	AdminPassword       string
	AllowedOrigins      []string
	LowBalanceThreshold float64
	LogLevel            string
	LogFormat           string
}

// Load reads the settings. Values from dotEnvPath, when the file exists,
// are added to the environment without overriding variables already set.
func Load(dotEnvPath string) (*Config, error) {
	if dotEnvPath != "" {
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
		}
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("port", 8080)
	v.SetDefault("db_driver", sqlstore.DriverSQLite)
	v.SetDefault("database_url", "./data/tutorbooks.db")
	v.SetDefault("static_path", "../frontend/static")
	v.SetDefault("jwt_secret", devSecret)
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("admin_email", "")
	v.SetDefault("admin_password", "")
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("low_balance_threshold", models.DefaultLowBalanceThreshold)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.AutomaticEnv()

	c := &Config{
		Port:                v.GetInt("port"),
		DBDriver:            strings.ToLower(v.GetString("db_driver")),
		DatabaseURL:         v.GetString("database_url"),
		StaticPath:          v.GetString("static_path"),
		JWTSecret:           v.GetString("jwt_secret"),
		TokenTTL:            v.GetDuration("token_ttl"),
		AdminEmail:          v.GetString("admin_email"),
		AdminPassword:       v.GetString("admin_password"),
		AllowedOrigins:      splitList(v.GetString("allowed_origins")),
		LowBalanceThreshold: v.GetFloat64("low_balance_threshold"),
		LogLevel:            v.GetString("log_level"),
		LogFormat:           v.GetString("log_format"),
	}
	return c, c.validate()
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case sqlstore.DriverSQLite, sqlstore.DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q, use %s or %s", c.DBDriver, sqlstore.DriverSQLite, sqlstore.DriverPostgres)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.LowBalanceThreshold <= 0 {
		return fmt.Errorf("LOW_BALANCE_THRESHOLD must be positive, got %g", c.LowBalanceThreshold)
	}
	if (c.AdminEmail == "") != (c.AdminPassword == "") {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	return nil
}

// UsesDevSecret reports whether tokens are signed with the built-in development secret.
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == devSecret
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
