package components

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// RenderContext provides the theme, the lipgloss renderer and the viewport
// width to styled elements during rendering. Passing it explicitly keeps
// rendering free of global state.
type RenderContext struct {
	Theme    Theme
	Renderer *lipgloss.Renderer
	// Width is the viewport width in columns. Percentage sizes resolve
	// against it; zero leaves them unset.
	Width int
}

// DefaultContext returns a render context with the default theme writing to
// stdout.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:    DefaultTheme(),
		Renderer: NewRenderer(os.Stdout, false),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a new context with the given viewport width.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// NewRenderer creates a lipgloss renderer for w. With noColor the renderer
// uses the ASCII profile, which strips every colour and text attribute.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Alignment specifies how content is aligned horizontally.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ParseAlignment accepts left/start, center and right/end.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start":
		return AlignStart, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right", "end":
		return AlignEnd, nil
	default:
		return AlignStart, fmt.Errorf("%w: alignment %q", ErrInvalidValue, s)
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "right"
	default:
		return "left"
	}
}

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Direction specifies how an element lays out its children.
type Direction int

const (
	DirectionColumn Direction = iota
	DirectionRow
)

// ParseDirection accepts row/horizontal and column/vertical.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "horizontal":
		return DirectionRow, nil
	case "column", "col", "vertical":
		return DirectionColumn, nil
	default:
		return DirectionColumn, fmt.Errorf("%w: direction %q", ErrInvalidValue, s)
	}
}

func (d Direction) String() string {
	if d == DirectionRow {
		return "row"
	}
	return "column"
}
