package game

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordlegame/internal/dependencies/mocks"
	"github.com/mcoot/wordlegame/internal/model"
	"github.com/mcoot/wordlegame/internal/services/feedback"
	"github.com/mcoot/wordlegame/internal/services/picker"
	"github.com/mcoot/wordlegame/internal/services/validator"
	"github.com/mcoot/wordlegame/internal/services/wordstore"
	"github.com/mcoot/wordlegame/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	dir     string
	cfg     model.Config
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	console *mocks.MockConsole
	logs    *bytes.Buffer
	ctx     context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.cfg = model.DefaultConfig()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.clock.Step = time.Minute
	s.random = mocks.NewMockRandom()
	s.console = mocks.NewMockConsole()
	s.ctx = context.Background()

	err := os.WriteFile(filepath.Join(s.dir, "words_en.txt"),
		[]byte("light\nnight\nmight\nsight\nfight\ntight\nright\n"), 0o644)
	s.Require().NoError(err)
}

// newController builds a controller whose validator reads the given input
func (s *ControllerSuite) newController(input string) *Controller {
	return s.newControllerReading(strings.NewReader(input))
}

func (s *ControllerSuite) newControllerReading(in io.Reader) *Controller {
	logger, logs := testutil.BufferLogger()
	s.logs = logs
	return NewController(
		s.cfg,
		wordstore.New(s.cfg, logger),
		picker.New(s.random),
		feedback.New(s.cfg),
		validator.New(s.cfg, in, &bytes.Buffer{}, logger),
		s.clock,
		logger,
	)
}

func (s *ControllerSuite) TestConfig() {
	letters, guesses := s.newController("").Config().Values()
	s.Equal(5, letters)
	s.Equal(6, guesses)
}

// RefreshPage tests

func (s *ControllerSuite) TestRefreshPageClearsThenRules() {
	err := s.newController("").RefreshPage(s.console, "Guess 1")
	s.Require().NoError(err)

	s.Equal([]string{"clear", "rule"}, s.console.Methods())
	s.Equal("[bold blue]:leafy_green: Guess 1 :leafy_green:[/]\n", s.console.Calls[1].Text)
}

func (s *ControllerSuite) TestRefreshPageStopsOnClearError() {
	boom := errors.New("boom")
	s.console.FailOn = "clear"
	s.console.Err = boom

	err := s.newController("").RefreshPage(s.console, "Guess 1")
	s.ErrorIs(err, boom)
	s.Equal([]string{"clear"}, s.console.Methods())
}

// GameOver tests

func (s *ControllerSuite) TestGameOverWin() {
	err := s.newController("").GameOver(s.console, []string{"night", "light"}, "light", model.Alphabet, true)
	s.Require().NoError(err)

	s.Equal("[bold blue]:leafy_green: Game Over :leafy_green:[/]\n", s.console.Calls[1].Text)
	prints := s.console.Prints()
	s.Require().Len(prints, 4)
	s.Equal("\n[bold white on green]Correct, the word is light[/]", prints[3])
}

func (s *ControllerSuite) TestGameOverDefaultsToLoss() {
	err := s.newController("").GameOver(s.console, []string{"night"}, "light", model.Alphabet)
	s.Require().NoError(err)

	prints := s.console.Prints()
	s.Equal("\n[bold white on red]Sorry, the word was light[/]", prints[len(prints)-1])
}

func (s *ControllerSuite) TestGameOverExplicitLoss() {
	err := s.newController("").GameOver(s.console, nil, "light", model.Alphabet, false)
	s.Require().NoError(err)
	s.Contains(s.console.Output(), "Sorry, the word was light")
}

func (s *ControllerSuite) TestGameOverPropagatesConsoleError() {
	boom := errors.New("boom")
	s.console.FailOn = "rule"
	s.console.Err = boom

	err := s.newController("").GameOver(s.console, nil, "light", model.Alphabet, true)
	s.ErrorIs(err, boom)
	s.Empty(s.console.Prints())
}

// NewRound tests

func (s *ControllerSuite) TestNewRoundPicksSecret() {
	s.random.QueueIntn(1)

	round, err := s.newController("").NewRound(s.ctx, s.dir, model.LangEn)
	s.Require().NoError(err)

	s.Equal("night", round.Secret)
	s.Equal(model.LangEn, round.Lang)
	s.Len(round.Words, 7)
	s.Equal([]string{"_____", "_____", "_____", "_____", "_____", "_____"}, round.Guesses)
	s.Equal(s.clock.CurrentTime.Add(-time.Minute), round.StartedAt)
	s.Contains(s.logs.String(), "round started")
}

func (s *ControllerSuite) TestNewRoundFailsWithoutWords() {
	_, err := s.newController("").NewRound(s.ctx, s.dir, model.LangEs)
	s.ErrorIs(err, model.ErrNoWords)
	s.Contains(s.logs.String(), "failed to load word list")
}

// PlayRound tests

func (s *ControllerSuite) TestPlayRoundWin() {
	s.random.QueueIntn(0) // light
	c := s.newController("night\nLIGHT\n")

	round, err := c.NewRound(s.ctx, s.dir, model.LangEn)
	s.Require().NoError(err)

	err = c.PlayRound(s.ctx, s.console, round, model.Alphabet)
	s.Require().NoError(err)

	s.True(round.Won)
	s.Equal(2, round.Played)
	s.Equal([]string{"night", "light"}, round.History())
	s.Equal(time.Minute, round.Duration())

	rules := []string{}
	for _, call := range s.console.Calls {
		if call.Method == "rule" {
			rules = append(rules, call.Text)
		}
	}
	s.Equal([]string{
		"[bold blue]:leafy_green: Guess 1 :leafy_green:[/]\n",
		"[bold blue]:leafy_green: Guess 2 :leafy_green:[/]\n",
		"[bold blue]:leafy_green: Game Over :leafy_green:[/]\n",
	}, rules)

	prints := s.console.Prints()
	s.Equal("\n[bold white on green]Correct, the word is light[/]", prints[len(prints)-1])
	s.Contains(s.logs.String(), `"won":true`)
}

func (s *ControllerSuite) TestPlayRoundLossAfterBudget() {
	s.random.QueueIntn(0) // light
	c := s.newController("night\nmight\nsight\nfight\ntight\nright\n")

	round, err := c.NewRound(s.ctx, s.dir, model.LangEn)
	s.Require().NoError(err)

	err = c.PlayRound(s.ctx, s.console, round, model.Alphabet)
	s.Require().NoError(err)

	s.False(round.Won)
	s.Equal(6, round.Played)
	prints := s.console.Prints()
	s.Equal("\n[bold white on red]Sorry, the word was light[/]", prints[len(prints)-1])
}

func (s *ControllerSuite) TestPlayRoundShowsPlaceholdersEachTurn() {
	s.random.QueueIntn(0)
	c := s.newController("light\n")

	round, err := c.NewRound(s.ctx, s.dir, model.LangEn)
	s.Require().NoError(err)
	s.Require().NoError(c.PlayRound(s.ctx, s.console, round, model.Alphabet))

	// First turn: six placeholder rows and the untouched keyboard line
	prints := s.console.Prints()
	for i := 0; i < 6; i++ {
		s.Equal("[dim]_[/][dim]_[/][dim]_[/][dim]_[/][dim]_[/]", prints[i])
	}
	s.Equal(model.Alphabet, prints[6])
}

func (s *ControllerSuite) TestPlayRoundInputClosedStillAnnounces() {
	s.random.QueueIntn(0)
	c := s.newController("night\n")

	round, err := c.NewRound(s.ctx, s.dir, model.LangEn)
	s.Require().NoError(err)

	err = c.PlayRound(s.ctx, s.console, round, model.Alphabet)
	s.ErrorIs(err, model.ErrInputClosed)
	s.False(round.Won)
	s.Equal(1, round.Played)
	s.Contains(s.console.Output(), "Sorry, the word was light")
	s.Contains(s.logs.String(), `"abandoned":true`)
}

func (s *ControllerSuite) TestPlayRoundCancelledContextStillAnnounces() {
	s.random.QueueIntn(0)
	c := s.newController("light\n")

	round, err := c.NewRound(s.ctx, s.dir, model.LangEn)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	err = c.PlayRound(ctx, s.console, round, model.Alphabet)
	s.ErrorIs(err, model.ErrInterrupted)
	s.ErrorIs(err, context.Canceled)
	s.Equal(0, round.Played)
	s.Equal([]string{"clear", "rule"}, s.console.Methods()[:2])
	s.Contains(s.console.Calls[1].Text, "Game Over")
	s.Contains(s.console.Output(), "Sorry, the word was light")
	s.Contains(s.logs.String(), `"interrupted":true`)
}

func (s *ControllerSuite) TestPlayRoundInterruptedWhileWaitingForGuess() {
	s.random.QueueIntn(0)
	pr, pw := io.Pipe()
	defer pw.Close()
	c := s.newControllerReading(pr)

	round, err := c.NewRound(s.ctx, s.dir, model.LangEn)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()
	err = c.PlayRound(ctx, s.console, round, model.Alphabet)
	s.ErrorIs(err, model.ErrInterrupted)
	s.False(round.Won)
	s.Contains(s.console.Output(), "Sorry, the word was light")
	s.Contains(s.logs.String(), `"abandoned":true`)
}

func (s *ControllerSuite) TestPlayRoundPropagatesConsoleError() {
	boom := errors.New("boom")
	s.console.FailOn = "print"
	s.console.Err = boom
	s.random.QueueIntn(0)
	c := s.newController("light\n")

	round, err := c.NewRound(s.ctx, s.dir, model.LangEn)
	s.Require().NoError(err)

	err = c.PlayRound(s.ctx, s.console, round, model.Alphabet)
	s.ErrorIs(err, boom)
	s.Equal(0, round.Played)
}
