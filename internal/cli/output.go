package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ConfigResult:
		o.printConfigResult(v)
	case WordsResult:
		o.printWordsResult(v)
	case PickResult:
		o.printPickResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ConfigResult describes the game dimensions and resolved settings
type ConfigResult struct {
	NumLetters int    `json:"num_letters"`
	NumGuesses int    `json:"num_guesses"`
	Lang       string `json:"lang"`
	WordsDir   string `json:"words_dir"`
	LogLevel   string `json:"log_level"`
}

// WordsResult describes a loaded word list
type WordsResult struct {
	Lang  string `json:"lang"`
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// PickResult holds a randomly picked word
type PickResult struct {
	Lang string `json:"lang"`
	Word string `json:"word"`
}

func (o *Output) printConfigResult(c ConfigResult) {
	fmt.Fprintf(o.w, "Letters: %d\n", c.NumLetters)
	fmt.Fprintf(o.w, "Guesses: %d\n", c.NumGuesses)
	fmt.Fprintf(o.w, "Language: %s\n", c.Lang)
	fmt.Fprintf(o.w, "Words Dir: %s\n", c.WordsDir)
	fmt.Fprintf(o.w, "Log Level: %s\n", c.LogLevel)
}

func (o *Output) printWordsResult(w WordsResult) {
	fmt.Fprintf(o.w, "Language: %s\n", w.Lang)
	fmt.Fprintf(o.w, "Path: %s\n", w.Path)
	fmt.Fprintf(o.w, "Words: %d\n", w.Count)
}

func (o *Output) printPickResult(p PickResult) {
	fmt.Fprintln(o.w, p.Word)
}
