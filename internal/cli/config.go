package cli

import (
	"log/slog"

	appconfig "github.com/mcoot/wordlegame/internal/config"
	"github.com/mcoot/wordlegame/internal/model"
)

// Config holds CLI configuration
type Config struct {
	ConfigFile string
	WordsDir   string
	Lang       string
	Width      int
	NoColor    bool
	LogLevel   string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values. Settings not given on
// the command line are filled in by Resolve.
func DefaultConfig() *Config {
	return &Config{
		WordsDir: "data",
		Lang:     "es",
		Width:    40,
		LogLevel: "warn",
		Output:   "text",
	}
}

// Resolve loads .env, the config file and the environment, applies them to
// every setting whose flag was not set explicitly, then validates the result
func (c *Config) Resolve(changed func(flag string) bool) error {
	if err := appconfig.LoadDotEnv(); err != nil {
		return err
	}
	loaded, err := appconfig.Read(c.ConfigFile)
	if err != nil {
		return err
	}

	if !changed("words-dir") {
		c.WordsDir = loaded.WordsDir
	}
	if !changed("lang") {
		c.Lang = loaded.Lang
	}
	if !changed("width") {
		c.Width = loaded.Width
	}
	if !changed("no-color") {
		c.NoColor = loaded.NoColor
	}
	c.LogLevel = loaded.LogLevel

	return c.settings().Validate()
}

// settings returns the merged values as an application config
func (c *Config) settings() *appconfig.Config {
	return &appconfig.Config{
		WordsDir: c.WordsDir,
		Lang:     c.Lang,
		Width:    c.Width,
		NoColor:  c.NoColor,
		LogLevel: c.LogLevel,
	}
}

// Language returns the selected word list language
func (c *Config) Language() (model.Lang, error) {
	return model.ParseLang(c.Lang)
}

// Level returns the log level, forced to debug in verbose mode
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	level, err := c.settings().Level()
	if err != nil {
		return slog.LevelWarn
	}
	return level
}
