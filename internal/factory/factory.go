package factory

import (
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/wordlegame/internal/dependencies/clock"
	"github.com/mcoot/wordlegame/internal/dependencies/console"
	"github.com/mcoot/wordlegame/internal/dependencies/random"
	"github.com/mcoot/wordlegame/internal/model"
	"github.com/mcoot/wordlegame/internal/services/feedback"
	"github.com/mcoot/wordlegame/internal/services/game"
	"github.com/mcoot/wordlegame/internal/services/picker"
	"github.com/mcoot/wordlegame/internal/services/validator"
	"github.com/mcoot/wordlegame/internal/services/wordstore"
)

// App contains all wired application components
type App struct {
	Config model.Config

	// External dependencies
	Clock   clock.Clock
	Random  random.Random
	Console console.Console

	// Services
	WordStore      *wordstore.Service
	Picker         *picker.Service
	Feedback       *feedback.Service
	Validator      *validator.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// In is where guesses are read from (optional, defaults to os.Stdin)
	In io.Reader
	// Out receives the prompt and the console output (optional, defaults to os.Stdout)
	Out io.Writer
	// Console configures the ANSI console
	Console console.Config
	// Seed makes the secret word reproducible when set
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	con := console.NewANSI(out, cfg.Console)

	return newWithDependencies(model.DefaultConfig(), clock.New(), rnd, con, in, out, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	cfg model.Config,
	clk clock.Clock,
	rnd random.Random,
	con console.Console,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *App {
	wordStore := wordstore.New(cfg, logger)
	pickerService := picker.New(rnd)
	feedbackService := feedback.New(cfg)
	validatorService := validator.New(cfg, in, out, logger)
	gameController := game.NewController(cfg, wordStore, pickerService, feedbackService, validatorService, clk, logger)

	return &App{
		Config:         cfg,
		Clock:          clk,
		Random:         rnd,
		Console:        con,
		WordStore:      wordStore,
		Picker:         pickerService,
		Feedback:       feedbackService,
		Validator:      validatorService,
		GameController: gameController,
	}
}
