package picker

import (
	"github.com/mcoot/wordlegame/internal/dependencies/random"
)

// Service picks the secret word for a round
type Service struct {
	random random.Random
}

// New creates a new RandomPicker
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// Pick returns a uniformly chosen word, or false if words is empty
func (s *Service) Pick(words []string) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	return words[s.random.Intn(len(words))], true
}
