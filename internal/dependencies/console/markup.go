package console

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kyokomi/emoji/v2"
)

var emojiPattern = regexp.MustCompile(`:[a-z0-9_+\-]+:`)

var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"grey":           "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// replaceEmoji swaps known :code: sequences for their emoji. emoji.Sprint
// pads every emoji with a space, so codes are looked up in its table instead.
func replaceEmoji(text string) string {
	codes := emoji.CodeMap()
	return emojiPattern.ReplaceAllStringFunc(text, func(m string) string {
		if e, ok := codes[m]; ok {
			return e
		}
		return m
	})
}

// Escape makes text print literally: brackets are not read as style tags.
// Use it for any text that did not come from the program itself.
func Escape(text string) string {
	return markupEscaper.Replace(text)
}

var markupEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`)

// segment is a run of text under a fixed stack of style specs
type segment struct {
	text  string
	specs []string
}

// parseMarkup splits text into styled segments. A bracketed tag is only
// treated as markup if it closes a style ("[/]" or "[/bold]") or parses as a
// style spec; anything else is kept as literal text. `\[` and `\\` are a
// literal bracket and backslash.
func parseMarkup(text string, theme map[string]string) []segment {
	var segments []segment
	var stack []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		specs := make([]string, len(stack))
		copy(specs, stack)
		segments = append(segments, segment{text: buf.String(), specs: specs})
		buf.Reset()
	}

	for i := 0; i < len(text); {
		if text[i] == '\\' && i+1 < len(text) && (text[i+1] == '[' || text[i+1] == '\\') {
			buf.WriteByte(text[i+1])
			i += 2
			continue
		}
		if text[i] != '[' {
			buf.WriteByte(text[i])
			i++
			continue
		}
		end := strings.IndexByte(text[i+1:], ']')
		if end < 0 {
			buf.WriteString(text[i:])
			break
		}
		tag := text[i+1 : i+1+end]
		switch {
		case strings.HasPrefix(tag, "/"):
			flush()
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case isStyleSpec(tag, theme):
			flush()
			stack = append(stack, tag)
		default:
			buf.WriteString("[" + tag + "]")
		}
		i += end + 2
	}
	flush()
	return segments
}

// isStyleSpec reports whether spec is a theme name or made only of known
// attributes and colors
func isStyleSpec(spec string, theme map[string]string) bool {
	if _, ok := theme[spec]; ok {
		return true
	}
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return false
	}
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		switch {
		case isAttribute(f):
		case f == "on":
			if i+1 >= len(fields) || !isColor(fields[i+1]) {
				return false
			}
			i++
		case isColor(f):
		default:
			return false
		}
	}
	return true
}

func isAttribute(f string) bool {
	switch f {
	case "bold", "dim", "italic", "underline", "reverse":
		return true
	}
	return false
}

func isColor(f string) bool {
	if _, ok := namedColors[f]; ok {
		return true
	}
	return hexColor.MatchString(f)
}

func toColor(f string) lipgloss.Color {
	if c, ok := namedColors[f]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(f)
}

// applySpec layers one style spec onto s. Later specs override earlier ones.
func applySpec(s lipgloss.Style, spec string, theme map[string]string) lipgloss.Style {
	if themed, ok := theme[spec]; ok {
		spec = themed
	}
	fields := strings.Fields(spec)
	for i := 0; i < len(fields); i++ {
		switch f := fields[i]; f {
		case "bold":
			s = s.Bold(true)
		case "dim":
			s = s.Faint(true)
		case "italic":
			s = s.Italic(true)
		case "underline":
			s = s.Underline(true)
		case "reverse":
			s = s.Reverse(true)
		case "on":
			if i+1 < len(fields) && isColor(fields[i+1]) {
				s = s.Background(toColor(fields[i+1]))
				i++
			}
		default:
			if isColor(f) {
				s = s.Foreground(toColor(f))
			}
		}
	}
	return s
}
