package model

// Config holds the fixed game dimensions. It is built once at startup and
// passed to every component that needs it.
type Config struct {
	NumLetters   int    // Letters per word
	NumGuesses   int    // Guess budget per round
	BaseFilename string // Word list files are named <BaseFilename>_<lang>.txt
	Placeholder  rune   // Filler for guess rows not yet played
}

// DefaultConfig returns the standard 5-letter, 6-guess configuration
func DefaultConfig() Config {
	return Config{
		NumLetters:   5,
		NumGuesses:   6,
		BaseFilename: "words",
		Placeholder:  '_',
	}
}

// Values returns (letters per word, guess budget)
func (c Config) Values() (int, int) {
	return c.NumLetters, c.NumGuesses
}

// PlaceholderRow returns an unplayed guess row, e.g. "_____"
func (c Config) PlaceholderRow() string {
	row := make([]rune, c.NumLetters)
	for i := range row {
		row[i] = c.Placeholder
	}
	return string(row)
}

// Alphabet is the set of letters tracked on the keyboard summary line
const Alphabet = "abcdefghijklmnopqrstuvwxyz"
