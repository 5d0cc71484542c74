package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/wordlegame/internal/dependencies/clock"
	"github.com/mcoot/wordlegame/internal/dependencies/console"
	"github.com/mcoot/wordlegame/internal/model"
	"github.com/mcoot/wordlegame/internal/services/feedback"
	"github.com/mcoot/wordlegame/internal/services/picker"
	"github.com/mcoot/wordlegame/internal/services/validator"
	"github.com/mcoot/wordlegame/internal/services/wordstore"
)

const gameOverHeadline = "Game Over"

// Controller drives a single round and its announcements
type Controller struct {
	cfg       model.Config
	wordStore *wordstore.Service
	picker    *picker.Service
	feedback  *feedback.Service
	validator *validator.Service
	clock     clock.Clock
	logger    *slog.Logger
}

// NewController creates a new GameController
func NewController(
	cfg model.Config,
	wordStore *wordstore.Service,
	picker *picker.Service,
	feedback *feedback.Service,
	validator *validator.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		cfg:       cfg,
		wordStore: wordStore,
		picker:    picker,
		feedback:  feedback,
		validator: validator,
		clock:     clock,
		logger:    logger,
	}
}

// Config returns the fixed game dimensions
func (c *Controller) Config() model.Config {
	return c.cfg
}

// RefreshPage clears the console and draws the headline banner
func (c *Controller) RefreshPage(con console.Console, headline string) error {
	if err := con.Clear(); err != nil {
		return err
	}
	return con.Rule(fmt.Sprintf("[bold blue]:leafy_green: %s :leafy_green:[/]\n", headline))
}

// GameOver redraws the page, shows every guess and prints the win or loss
// banner. Omitting win means a loss.
func (c *Controller) GameOver(con console.Console, guesses []string, secret, alphabet string, win ...bool) error {
	isWin := len(win) > 0 && win[0]

	if err := c.RefreshPage(con, gameOverHeadline); err != nil {
		return err
	}
	if err := c.feedback.ShowGuesses(con, guesses, secret, alphabet); err != nil {
		return err
	}

	var message string
	if isWin {
		message = fmt.Sprintf("\n[bold white on green]Correct, the word is %s[/]", console.Escape(secret))
	} else {
		message = fmt.Sprintf("\n[bold white on red]Sorry, the word was %s[/]", console.Escape(secret))
	}
	return con.Print(message)
}

// NewRound loads the word list for lang and picks the secret
func (c *Controller) NewRound(ctx context.Context, folder string, lang model.Lang) (*model.Round, error) {
	words := c.wordStore.GetWords(folder, lang)
	secret, ok := c.picker.Pick(words)
	if !ok {
		return nil, fmt.Errorf("%s: %w", c.wordStore.Path(folder, lang), model.ErrNoWords)
	}

	round := model.NewRound(c.cfg, lang, secret, words, c.clock.Now())

	c.logger.InfoContext(ctx, "round started",
		slog.String("round_id", string(round.ID)),
		slog.String("lang", lang.Code()),
		slog.Int("word_count", len(words)),
	)

	return round, nil
}

// PlayRound runs the guess loop until the secret is found or the budget is
// spent, then announces the result. If input runs out or ctx is done
// mid-round the result is still announced as a loss, and
// model.ErrInputClosed or model.ErrInterrupted is returned.
func (c *Controller) PlayRound(ctx context.Context, con console.Console, round *model.Round, alphabet string) error {
	var abandoned error

	for !round.IsOver() {
		if err := ctx.Err(); err != nil {
			abandoned = fmt.Errorf("%w: %w", model.ErrInterrupted, err)
			break
		}
		if err := c.RefreshPage(con, fmt.Sprintf("Guess %d", round.Played+1)); err != nil {
			return err
		}
		if err := c.feedback.ShowGuesses(con, round.Guesses, round.Secret, alphabet); err != nil {
			return err
		}

		guess, err := c.validator.GuessWord(ctx, con, round.History(), round.Words)
		if err != nil {
			if errors.Is(err, model.ErrInputClosed) || errors.Is(err, model.ErrInterrupted) {
				abandoned = err
				break
			}
			return err
		}
		round.Record(guess)
	}

	round.Won = round.Solved()
	round.FinishedAt = c.clock.Now()

	c.logger.InfoContext(ctx, "round finished",
		slog.String("round_id", string(round.ID)),
		slog.String("lang", round.Lang.Code()),
		slog.Int("guesses", round.Played),
		slog.Bool("won", round.Won),
		slog.Bool("abandoned", abandoned != nil),
		slog.Bool("interrupted", errors.Is(abandoned, model.ErrInterrupted)),
		slog.Duration("duration", round.Duration()),
	)

	if err := c.GameOver(con, round.Guesses, round.Secret, alphabet, round.Won); err != nil {
		return err
	}
	return abandoned
}
