package model

import "strings"

// LetterStatus tracks the latest styled form of every letter seen, for the
// keyboard summary line. Alphabet letters come first in alphabet order;
// other letters follow in the order they were first set.
type LetterStatus struct {
	order  []rune
	styled map[rune]string
}

// NewLetterStatus maps every alphabet letter to itself
func NewLetterStatus(alphabet string) *LetterStatus {
	ls := &LetterStatus{styled: make(map[rune]string)}
	for _, r := range alphabet {
		ls.Set(r, string(r))
	}
	return ls
}

// Set overwrites the styled form of a letter (last write wins)
func (ls *LetterStatus) Set(letter rune, styled string) {
	if _, ok := ls.styled[letter]; !ok {
		ls.order = append(ls.order, letter)
	}
	ls.styled[letter] = styled
}

// Get returns the styled form of a letter
func (ls *LetterStatus) Get(letter rune) (string, bool) {
	s, ok := ls.styled[letter]
	return s, ok
}

// Letters returns the tracked letters in display order
func (ls *LetterStatus) Letters() []rune {
	out := make([]rune, len(ls.order))
	copy(out, ls.order)
	return out
}

// String concatenates every styled letter in display order
func (ls *LetterStatus) String() string {
	var sb strings.Builder
	for _, r := range ls.order {
		sb.WriteString(ls.styled[r])
	}
	return sb.String()
}
