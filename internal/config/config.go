package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/mcoot/wordlegame/internal/model"
)

// Config holds user-facing settings for the CLI
type Config struct {
	WordsDir string `yaml:"words_dir" env:"WORDLE_WORDS_DIR"     env-default:"data"`
	Lang     string `yaml:"lang"      env:"WORDLE_LANG"          env-default:"es"`
	Width    int    `yaml:"width"     env:"WORDLE_CONSOLE_WIDTH" env-default:"40"`
	NoColor  bool   `yaml:"no_color"  env:"WORDLE_NO_COLOR"      env-default:"false"`
	LogLevel string `yaml:"log_level" env:"WORDLE_LOG_LEVEL"     env-default:"warn"`
}

// Load reads configuration like Read and validates the result
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads configuration from a YAML file and environment variables
// without validating it. Priority: ENV > YAML > defaults (via env-default
// tags). With an empty path only the environment is read.
func Read(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv loads variables from .env files into the environment.
// Missing files are skipped; variables already set are not overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if _, err := c.Language(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Width <= 0 {
		return fmt.Errorf("config: width must be positive, got %d", c.Width)
	}
	return nil
}

// Language returns the configured word list language
func (c *Config) Language() (model.Lang, error) {
	return model.ParseLang(c.Lang)
}

// Level returns the configured log level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
