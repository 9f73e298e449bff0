package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// State backends accepted by LEITNER_BACKEND
const (
	// BackendFile keeps the state in a YAML file next to the word file
	BackendFile = "file"
	// BackendPostgres keeps the state in PostgreSQL, one deck per word file
	BackendPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Locale      string `env:"LEITNER_LOCALE"`
	StateSuffix string `env:"LEITNER_STATE_SUFFIX" env-default:".state"`
	Backend     string `env:"LEITNER_BACKEND" env-default:"file"`
	LogLevel    string `env:"LEITNER_LOG_LEVEL" env-default:"warn"`
	Database    DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string `env:"DB_HOST" env-default:"localhost"`
	Port           string `env:"DB_PORT" env-default:"5432"`
	Name           string `env:"DB_NAME" env-default:"leitner"`
	User           string `env:"DB_USER" env-default:"leitner"`
	Password       string `env:"DB_PASSWORD"`
	ConnectRetries int    `env:"DB_CONNECT_RETRIES" env-default:"5"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.Locale == "" {
		cfg.Locale = getEnv("LANG", "en")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field combinations
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if c.StateSuffix == "" {
			return fmt.Errorf("LEITNER_STATE_SUFFIX must not be empty")
		}
	case BackendPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres backend")
		}
	default:
		return fmt.Errorf("LEITNER_BACKEND must be %q or %q, got %q", BackendFile, BackendPostgres, c.Backend)
	}
	if c.Database.ConnectRetries < 1 {
		return fmt.Errorf("DB_CONNECT_RETRIES must be at least 1")
	}
	return nil
}

// StatePath returns the state file used for a word file
func (c *Config) StatePath(wordFile string) string {
	return wordFile + c.StateSuffix
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
