package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/currency"
)

// Settings holds process-level options read from the environment
type Settings struct {
	Port      string
	Currency  string
	LogLevel  string
	OutputDir string
	Format    string
}

// LoadEnvFile loads a .env file for local use. A missing file is not an error.
func LoadEnvFile(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// LoadSettings reads settings from the environment, applying defaults
func LoadSettings() *Settings {
	return &Settings{
		Port:      getEnv("GROWTH_PORT", "8080"),
		Currency:  strings.ToUpper(getEnv("GROWTH_CURRENCY", domain.DefaultCurrency)),
		LogLevel:  getEnv("GROWTH_LOG_LEVEL", "info"),
		OutputDir: getEnv("GROWTH_OUTPUT_DIR", ""),
		Format:    getEnv("GROWTH_FORMAT", "console"),
	}
}

// Validate validates the settings and returns all problems at once
func (s *Settings) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(s.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", s.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if err := currency.Validate(s.Currency); err != nil {
		errors = append(errors, err.Error())
	}

	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

// ParseLogLevel maps a level name to a slog level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': must be one of debug, info, warn, error", level)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
