package validator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/wordlegame/internal/dependencies/console"
	"github.com/mcoot/wordlegame/internal/model"
)

// Prompt is written before every guess is read
const Prompt = "\nGuess word: "

// WarningStyle is the console style for rejected guesses
const WarningStyle = "warning"

// Rejection describes why a guess was not accepted
type Rejection int

const (
	Accepted Rejection = iota
	RejectRepeated
	RejectLength
	RejectNotInList
)

func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectRepeated:
		return "repeated"
	case RejectLength:
		return "length"
	case RejectNotInList:
		return "not_in_list"
	default:
		return "unknown"
	}
}

// lineResult is the outcome of one blocking line read
type lineResult struct {
	line string
	err  error
}

// Service reads guesses and re-prompts until one is acceptable
type Service struct {
	cfg    model.Config
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger

	// pending holds the read still in flight after an interrupted GuessWord.
	// At most one read runs at a time.
	pending chan lineResult
}

// New creates a new GuessValidator reading lines from in and writing the
// prompt to out
func New(cfg model.Config, in io.Reader, out io.Writer, logger *slog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Validate checks a normalized guess. Checks run in a fixed order: repeat,
// then length, then word list membership.
func (s *Service) Validate(guess string, history, words []string) Rejection {
	if slices.Contains(history, guess) {
		return RejectRepeated
	}
	if utf8.RuneCountInString(guess) != s.cfg.NumLetters {
		return RejectLength
	}
	if !slices.Contains(words, guess) {
		return RejectNotInList
	}
	return Accepted
}

// Message returns the warning shown for a rejected guess
func (s *Service) Message(r Rejection, guess string) string {
	switch r {
	case RejectRepeated:
		return fmt.Sprintf("You have already used %s", guess)
	case RejectLength:
		return fmt.Sprintf("Your guess must be %d letters", s.cfg.NumLetters)
	case RejectNotInList:
		return fmt.Sprintf("%s is not in the word list", guess)
	default:
		return ""
	}
}

// GuessWord prompts until the player enters an acceptable guess and returns
// it. There is no retry limit. Input errors are wrapped; model.ErrInputClosed
// is returned once input is exhausted and model.ErrInterrupted once ctx is
// done. Console errors are returned as-is.
func (s *Service) GuessWord(ctx context.Context, con console.Console, history, words []string) (string, error) {
	for {
		guess, err := s.readGuess(ctx)
		if err != nil {
			return "", err
		}

		rejection := s.Validate(guess, history, words)
		if rejection == Accepted {
			return guess, nil
		}

		s.logger.DebugContext(ctx, "guess rejected",
			slog.String("guess", guess),
			slog.String("reason", rejection.String()),
		)
		msg := s.Message(rejection, console.Escape(guess))
		if err := con.Print(msg, console.WithStyle(WarningStyle)); err != nil {
			return "", err
		}
	}
}

// readGuess writes the prompt and reads one normalized line
func (s *Service) readGuess(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInterrupted, err)
	}
	if _, err := io.WriteString(s.out, Prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := s.readLine(ctx)
	if err != nil {
		if errors.Is(err, model.ErrInterrupted) {
			return "", err
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read guess: %w", err)
		}
		if line == "" {
			return "", fmt.Errorf("read guess: %w", model.ErrInputClosed)
		}
	}

	return Normalize(line), nil
}

// readLine reads one line in the background so the wait can be abandoned
// when ctx is done. An abandoned read is picked up by the next call.
func (s *Service) readLine(ctx context.Context) (string, error) {
	if s.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := s.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		s.pending = ch
	}

	select {
	case r := <-s.pending:
		s.pending = nil
		return r.line, r.err
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", model.ErrInterrupted, ctx.Err())
	}
}

// Normalize strips the line terminator and lowercases a raw input line
func Normalize(line string) string {
	return strings.ToLower(strings.TrimRight(line, "\r\n"))
}
