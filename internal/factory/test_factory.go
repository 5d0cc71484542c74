package factory

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mcoot/wordlegame/internal/dependencies/mocks"
	"github.com/mcoot/wordlegame/internal/model"
	"github.com/mcoot/wordlegame/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	MockConsole *mocks.MockConsole

	// Prompt receives everything the validator writes
	Prompt *bytes.Buffer
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// input is what the player types.
func NewTestApp(input string) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockConsole := mocks.NewMockConsole()
	prompt := &bytes.Buffer{}

	app := newWithDependencies(
		model.DefaultConfig(),
		mockClock,
		mockRandom,
		mockConsole,
		strings.NewReader(input),
		prompt,
		testutil.NopLogger(),
	)

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		MockConsole: mockConsole,
		Prompt:      prompt,
	}
}

// WriteTestWords writes a small word list for lang into dir
func (t *TestApp) WriteTestWords(dir string, lang model.Lang) error {
	words := []string{
		"light", "night", "might", "sight", "fight", "tight", "right",
		"crane", "slate", "trace", "house", "mouse", "about", "world",
	}
	path := filepath.Join(dir, t.WordStore.FileName(lang))
	return os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644)
}
