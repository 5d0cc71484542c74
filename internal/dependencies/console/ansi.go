package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	ruleChar    = "─"
)

// Config holds settings for the ANSI console
type Config struct {
	// Width is the column count used for centering and rules
	Width int
	// NoColor disables styling even on a terminal
	NoColor bool
	// Theme maps style names (e.g. "warning") to style specs
	Theme map[string]string
}

// DefaultTheme returns the named styles the game uses
func DefaultTheme() map[string]string {
	return map[string]string{
		"warning": "red on yellow",
	}
}

// DefaultConfig returns a 40 column console with the default theme
func DefaultConfig() Config {
	return Config{
		Width: 40,
		Theme: DefaultTheme(),
	}
}

// ANSI renders markup to a writer using lipgloss styles
type ANSI struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	width    int
	theme    map[string]string
	tty      bool
}

// Ensure ANSI implements Console
var _ Console = (*ANSI)(nil)

// NewANSI creates a console writing to out. Styling is dropped when out is
// not a terminal or cfg.NoColor is set.
func NewANSI(out io.Writer, cfg Config) *ANSI {
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig().Width
	}
	if cfg.Theme == nil {
		cfg.Theme = DefaultTheme()
	}

	fd, tty := terminalFd(out)
	width := cfg.Width
	if tty {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 && cols < width {
			width = cols
		}
	}

	renderer := lipgloss.NewRenderer(out)
	if cfg.NoColor || !tty {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &ANSI{
		out:      out,
		renderer: renderer,
		width:    width,
		theme:    cfg.Theme,
		tty:      tty,
	}
}

func terminalFd(out io.Writer) (int, bool) {
	f, ok := out.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// Width returns the effective column count
func (c *ANSI) Width() int {
	return c.width
}

// Clear wipes the screen. It does nothing when output is not a terminal.
func (c *ANSI) Clear() error {
	if !c.tty {
		return nil
	}
	_, err := io.WriteString(c.out, clearScreen)
	return err
}

// Rule draws a full-width rule with the rendered text centered in it.
// Trailing newlines in text are emitted after the rule.
func (c *ANSI) Rule(text string) error {
	trimmed := strings.TrimRight(text, "\n")
	trailing := len(text) - len(trimmed)

	title := c.render(trimmed, c.renderer.NewStyle())
	var line string
	if title == "" {
		line = strings.Repeat(ruleChar, c.width)
	} else {
		title = " " + title + " "
		gap := c.width - lipgloss.Width(title)
		if gap < 2 {
			gap = 2
		}
		left := gap / 2
		line = strings.Repeat(ruleChar, left) + title + strings.Repeat(ruleChar, gap-left)
	}

	_, err := fmt.Fprint(c.out, line+"\n"+strings.Repeat("\n", trailing))
	return err
}

// Print renders text and writes it followed by a newline
func (c *ANSI) Print(text string, opts ...PrintOption) error {
	o := ApplyOptions(opts...)

	base := c.renderer.NewStyle()
	if o.Style != "" {
		base = applySpec(base, o.Style, c.theme)
	}

	lines := strings.Split(c.render(text, base), "\n")
	for i, line := range lines {
		lines[i] = c.justify(line, o.Justify)
	}

	_, err := fmt.Fprintln(c.out, strings.Join(lines, "\n"))
	return err
}

// render turns markup into styled text. Each line is rendered separately so
// lipgloss does not pad lines to a common width.
func (c *ANSI) render(text string, base lipgloss.Style) string {
	var sb strings.Builder
	for _, seg := range parseMarkup(replaceEmoji(text), c.theme) {
		style := base
		for _, spec := range seg.specs {
			style = applySpec(style, spec, c.theme)
		}
		parts := strings.Split(seg.text, "\n")
		for i, part := range parts {
			if i > 0 {
				sb.WriteString("\n")
			}
			if part != "" {
				sb.WriteString(style.Render(part))
			}
		}
	}
	return sb.String()
}

func (c *ANSI) justify(line string, j Justify) string {
	switch j {
	case JustifyCenter:
		return strings.TrimRight(lipgloss.PlaceHorizontal(c.width, lipgloss.Center, line), " ")
	case JustifyRight:
		return lipgloss.PlaceHorizontal(c.width, lipgloss.Right, line)
	default:
		return line
	}
}
