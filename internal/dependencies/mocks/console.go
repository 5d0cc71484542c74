package mocks

import (
	"strings"

	"github.com/mcoot/wordlegame/internal/dependencies/console"
)

// ConsoleCall is one recorded call on a MockConsole
type ConsoleCall struct {
	Method  string // "clear", "rule" or "print"
	Text    string
	Options console.PrintOptions
}

// MockConsole records every call and can be told to fail
type MockConsole struct {
	Calls []ConsoleCall

	// FailOn makes the named method return Err. FailAfter skips that many
	// matching calls before failing.
	FailOn    string
	FailAfter int
	Err       error

	failSeen int
}

// Ensure MockConsole implements Console
var _ console.Console = (*MockConsole)(nil)

// NewMockConsole creates an empty MockConsole
func NewMockConsole() *MockConsole {
	return &MockConsole{}
}

func (c *MockConsole) record(call ConsoleCall) error {
	c.Calls = append(c.Calls, call)
	if c.FailOn == call.Method {
		c.failSeen++
		if c.failSeen > c.FailAfter {
			return c.Err
		}
	}
	return nil
}

// Clear records a clear call
func (c *MockConsole) Clear() error {
	return c.record(ConsoleCall{Method: "clear"})
}

// Rule records a rule call
func (c *MockConsole) Rule(text string) error {
	return c.record(ConsoleCall{Method: "rule", Text: text})
}

// Print records a print call with its resolved options
func (c *MockConsole) Print(text string, opts ...console.PrintOption) error {
	return c.record(ConsoleCall{Method: "print", Text: text, Options: console.ApplyOptions(opts...)})
}

// Prints returns the text of every print call in order
func (c *MockConsole) Prints() []string {
	var out []string
	for _, call := range c.Calls {
		if call.Method == "print" {
			out = append(out, call.Text)
		}
	}
	return out
}

// Methods returns the method name of every call in order
func (c *MockConsole) Methods() []string {
	out := make([]string, len(c.Calls))
	for i, call := range c.Calls {
		out[i] = call.Method
	}
	return out
}

// Warnings returns the text of print calls made with the warning style
func (c *MockConsole) Warnings() []string {
	var out []string
	for _, call := range c.Calls {
		if call.Method == "print" && call.Options.Style == "warning" {
			out = append(out, call.Text)
		}
	}
	return out
}

// Output joins all print text, useful for Contains assertions
func (c *MockConsole) Output() string {
	return strings.Join(c.Prints(), "\n")
}

// Reset clears recorded calls
func (c *MockConsole) Reset() {
	c.Calls = nil
	c.failSeen = 0
}
