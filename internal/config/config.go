// Package config loads server settings from the environment, reading a .env
// file first when one exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mmynk/salonbook/internal/scheduler"
)

// DefaultReminderTemplate is used when REMINDER_TEMPLATE is unset.
const DefaultReminderTemplate = "Hi {{.ClientName}}! Reminder of your appointment on {{.Date}} at {{.Time}}" +
	" for {{.Services}}. Total: {{.Total}}. See you soon!"

// Config holds application configuration
type Config struct {
	Port       int
	DBPath     string
	StaticPath string
	LogLevel   string

	// Slot grid
	WorkingHours scheduler.WorkingHours

	// Reminders
	ReminderTemplate     string
	ReminderWebhookURL   string
	ReminderWebhookToken string

	MetricsEnabled bool
}

// Load reads configuration from environment variables. A .env file in the
// working directory, if present, is loaded first without overriding
// variables that are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:       getEnvInt("PORT", 8080),
		DBPath:     getEnv("DB_PATH", "./data/salonbook.db"),
		StaticPath: getEnv("STATIC_PATH", "../frontend/static"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		WorkingHours: scheduler.WorkingHours{
			OpenHour:    getEnvInt("OPEN_HOUR", scheduler.DefaultWorkingHours.OpenHour),
			CloseHour:   getEnvInt("CLOSE_HOUR", scheduler.DefaultWorkingHours.CloseHour),
			StepMinutes: getEnvInt("SLOT_MINUTES", scheduler.DefaultWorkingHours.StepMinutes),
		},
		ReminderTemplate:     getEnv("REMINDER_TEMPLATE", DefaultReminderTemplate),
		ReminderWebhookURL:   strings.TrimSpace(os.Getenv("REMINDER_WEBHOOK_URL")),
		ReminderWebhookToken: strings.TrimSpace(os.Getenv("REMINDER_WEBHOOK_TOKEN")),
		MetricsEnabled:       getEnvBool("METRICS_ENABLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail at runtime.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port (got %d)", c.Port)
	}
	if c.DBPath == "" {
		return errors.New("DB_PATH is required")
	}
	if err := c.WorkingHours.Validate(); err != nil {
		return fmt.Errorf("OPEN_HOUR/CLOSE_HOUR/SLOT_MINUTES: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}
