package model

// Mark is the feedback for a single letter of a guess
type Mark string

const (
	MarkExact   Mark = "exact"   // Same letter in the same position
	MarkPresent Mark = "present" // Letter appears somewhere in the secret
	MarkAbsent  Mark = "absent"  // Alphabet letter not in the secret
	MarkUnknown Mark = "unknown" // Placeholder or non-alphabet character
)

// Style returns the console style used to render the mark
func (m Mark) Style() string {
	switch m {
	case MarkExact:
		return "bold white on green"
	case MarkPresent:
		return "bold white on yellow"
	case MarkAbsent:
		return "white on #666666"
	default:
		return "dim"
	}
}
