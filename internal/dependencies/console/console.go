// Package console defines the rendering collaborator the game draws through
// and an ANSI terminal implementation of it.
//
// Text passed to a Console may carry inline markup of the form
// "[bold white on green]x[/]". Implementations decide how to present it.
package console

// Justify controls horizontal placement of printed text
type Justify string

const (
	JustifyDefault Justify = ""
	JustifyLeft    Justify = "left"
	JustifyCenter  Justify = "center"
	JustifyRight   Justify = "right"
)

// Console is the minimal surface the game needs from a terminal renderer
type Console interface {
	// Clear wipes the screen
	Clear() error

	// Rule draws a horizontal rule with text as its title
	Rule(text string) error

	// Print writes one line of marked-up text
	Print(text string, opts ...PrintOption) error
}

// PrintOptions are the resolved options of a Print call
type PrintOptions struct {
	Justify Justify
	Style   string // Style spec or theme name applied to the whole text
}

// PrintOption customizes a Print call
type PrintOption func(*PrintOptions)

// WithJustify sets the horizontal placement
func WithJustify(j Justify) PrintOption {
	return func(o *PrintOptions) {
		o.Justify = j
	}
}

// WithStyle applies a style spec or theme name to the whole text
func WithStyle(style string) PrintOption {
	return func(o *PrintOptions) {
		o.Style = style
	}
}

// ApplyOptions resolves a list of options
func ApplyOptions(opts ...PrintOption) PrintOptions {
	var o PrintOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
