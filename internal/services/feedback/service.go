package feedback

import (
	"fmt"
	"strings"

	"github.com/mcoot/wordlegame/internal/dependencies/console"
	"github.com/mcoot/wordlegame/internal/model"
)

// Service computes and renders per-letter guess feedback
type Service struct {
	cfg model.Config
}

// New creates a new FeedbackRenderer
func New(cfg model.Config) *Service {
	return &Service{
		cfg: cfg,
	}
}

// Classify marks each guess letter against the secret at the same position.
// Letters are paired position by position and the shorter word wins.
//
// PRESENT only checks that the secret contains the letter somewhere; it does
// not count remaining occurrences, so a repeated guess letter can be marked
// PRESENT more times than it appears in the secret.
func (s *Service) Classify(secret, guess, alphabet string) []model.Mark {
	secretRunes := []rune(secret)
	guessRunes := []rune(guess)
	n := min(len(secretRunes), len(guessRunes))

	marks := make([]model.Mark, n)
	for i := 0; i < n; i++ {
		letter := guessRunes[i]
		switch {
		case letter == secretRunes[i]:
			marks[i] = model.MarkExact
		case strings.ContainsRune(secret, letter):
			marks[i] = model.MarkPresent
		case strings.ContainsRune(alphabet, letter):
			marks[i] = model.MarkAbsent
		default:
			marks[i] = model.MarkUnknown
		}
	}
	return marks
}

// Styled wraps a letter in console markup for its mark
func Styled(letter rune, mark model.Mark) string {
	return fmt.Sprintf("[%s]%s[/]", mark.Style(), console.Escape(string(letter)))
}

// StyleGuess renders one guess row and records every non-placeholder letter
// in status
func (s *Service) StyleGuess(secret, guess, alphabet string, status *model.LetterStatus) string {
	marks := s.Classify(secret, guess, alphabet)
	letters := []rune(guess)

	var sb strings.Builder
	for i, mark := range marks {
		styled := Styled(letters[i], mark)
		sb.WriteString(styled)
		if letters[i] != s.cfg.Placeholder {
			status.Set(letters[i], styled)
		}
	}
	return sb.String()
}

// ShowGuesses prints one centered row per guess followed by the keyboard
// summary line. Console errors are returned as-is.
func (s *Service) ShowGuesses(con console.Console, guesses []string, secret, alphabet string) error {
	status := model.NewLetterStatus(alphabet)

	for _, guess := range guesses {
		row := s.StyleGuess(secret, guess, alphabet, status)
		if err := con.Print(row, console.WithJustify(console.JustifyCenter)); err != nil {
			return err
		}
	}

	return con.Print(status.String(), console.WithJustify(console.JustifyCenter))
}
