package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config keeps runtime settings.
type Config struct {
	Storage        string
	TasksFile      string
	DatabaseURL    string
	TelegramToken  string
	TelegramChatID int64
	// ReminderInterval of zero disables interval reminders.
	ReminderInterval time.Duration
	// ReminderTime is an optional daily HH:MM reminder.
	ReminderTime string
}

// Load reads configuration from defaults, the optional YAML file at path and
// environment variables, in increasing priority.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("tasks_storage", StorageFile)
	v.SetDefault("tasks_file", "data/tasks.txt")
	v.SetDefault("database_url", "tasks.db")
	v.SetDefault("telegram_token", "")
	v.SetDefault("telegram_chat_id", 0)
	v.SetDefault("reminder_interval_hours", 0)
	v.SetDefault("reminder_time", "")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Storage:        strings.ToLower(strings.TrimSpace(v.GetString("tasks_storage"))),
		TasksFile:      strings.TrimSpace(v.GetString("tasks_file")),
		DatabaseURL:    strings.TrimSpace(v.GetString("database_url")),
		TelegramToken:  strings.TrimSpace(v.GetString("telegram_token")),
		TelegramChatID: v.GetInt64("telegram_chat_id"),
		ReminderTime:   strings.TrimSpace(v.GetString("reminder_time")),
	}
	if hours := v.GetInt("reminder_interval_hours"); hours > 0 {
		cfg.ReminderInterval = time.Duration(hours) * time.Hour
	}

	return cfg, cfg.Validate()
}

// Validate checks settings every command needs.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageFile:
		if c.TasksFile == "" {
			return fmt.Errorf("TASKS_FILE is required for %s storage", StorageFile)
		}
	case StorageSQLite:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for %s storage", StorageSQLite)
		}
	default:
		return fmt.Errorf("unknown TASKS_STORAGE %q, expected %q or %q", c.Storage, StorageFile, StorageSQLite)
	}
	return nil
}

// ValidateBot checks the extra settings the Telegram front-end needs.
func (c Config) ValidateBot() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	return nil
}
