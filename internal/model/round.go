package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RoundID uniquely identifies a round in logs
type RoundID string

// NewRoundID generates a fresh RoundID
func NewRoundID() RoundID {
	return RoundID(uuid.NewString())
}

// Round is a single play-through from secret selection to announcement.
// Nothing in it outlives the round.
type Round struct {
	ID     RoundID
	Lang   Lang
	Secret string
	Words  []string // Pick pool and dictionary

	// Guesses has one row per guess in the budget. Rows not yet played hold
	// the placeholder row.
	Guesses []string
	Played  int // Number of accepted guesses
	Won     bool

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRound creates a round with every guess row set to the placeholder
func NewRound(cfg Config, lang Lang, secret string, words []string, now time.Time) *Round {
	guesses := make([]string, cfg.NumGuesses)
	for i := range guesses {
		guesses[i] = cfg.PlaceholderRow()
	}
	return &Round{
		ID:        NewRoundID(),
		Lang:      lang,
		Secret:    secret,
		Words:     words,
		Guesses:   guesses,
		StartedAt: now,
	}
}

// History returns the accepted guesses in submission order
func (r *Round) History() []string {
	return r.Guesses[:r.Played]
}

// Record stores an accepted guess in the next free row
func (r *Round) Record(guess string) {
	r.Guesses[r.Played] = guess
	r.Played++
}

// IsOver returns true once the secret is guessed or the budget is spent
func (r *Round) IsOver() bool {
	return r.Played >= len(r.Guesses) || r.Solved()
}

// Solved returns true if any guess row equals the secret
func (r *Round) Solved() bool {
	return slices.Contains(r.Guesses, r.Secret)
}

// Duration returns how long the round took, or zero if it is unfinished
func (r *Round) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
