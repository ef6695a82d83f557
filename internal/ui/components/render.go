package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Style builds a lipgloss style from resolved declarations. Declaration values
// may be the engine's own output or the verbatim values of a direct styles
// block, so colours and borders are resolved against the theme again.
func (Engine) Style(ctx RenderContext, decls style.Declarations) (lipgloss.Style, error) {
	s := newStyle(ctx)
	decls = ReprocessDeclarations(decls)

	for name, value := range decls {
		var err error
		switch name {
		case DeclBackground:
			s, err = applyColour(s, value, ctx.Theme, lipgloss.Style.Background)
		case DeclForeground:
			s, err = applyColour(s, value, ctx.Theme, lipgloss.Style.Foreground)
		case DeclBorderForeground:
			var c lipgloss.TerminalColor
			if c, err = ResolveColour(value, ctx.Theme); err == nil {
				s = s.BorderForeground(c)
			}
		case DeclBorderStyle:
			var b lipgloss.Border
			if b, err = borderValue(value, ctx.Theme); err == nil {
				s = s.BorderStyle(b)
				if border, _ := value.(string); border != "none" {
					s = s.BorderTop(true).BorderRight(true).BorderBottom(true).BorderLeft(true)
				}
			}
		case DeclWidth:
			var n int
			if n, err = sizeValue(value, ctx.Width); err == nil && n > 0 {
				s = s.Width(n)
			}
		case DeclHeight:
			var n int
			if n, err = sizeValue(value, ctx.Width); err == nil && n > 0 {
				s = s.Height(n)
			}
		case DeclMarginTop, DeclMarginRight, DeclMarginBottom, DeclMarginLeft,
			DeclPaddingTop, DeclPaddingRight, DeclPaddingBottom, DeclPaddingLeft:
			var n int
			if n, err = toInt(value); err == nil {
				s = applySide(s, name, n)
			}
		case DeclBold, DeclItalic, DeclUnderline, DeclFaint:
			b, ok := value.(bool)
			if !ok {
				err = fmt.Errorf("%w: expected a boolean", ErrInvalidValue)
				break
			}
			s = applyFlag(s, name, b)
		case DeclAlign:
			var a Alignment
			if a, err = ParseAlignment(fmt.Sprint(value)); err == nil {
				s = s.Align(a.ToLipglossPosition())
			}
		case DeclDirection:
			_, err = ParseDirection(fmt.Sprint(value))
		}
		if err != nil {
			return lipgloss.Style{}, stylekiterrors.NewEngineError(name, value, err)
		}
	}

	return s, nil
}

// Render renders content with the resolved declarations. Multiple content
// blocks are joined according to the direction declaration.
func (e Engine) Render(ctx RenderContext, resolved style.Resolved, content ...string) (string, error) {
	s, err := e.Style(ctx, resolved.Styles)
	if err != nil {
		return "", err
	}

	var body string
	switch direction(resolved.Styles) {
	case DirectionRow:
		body = lipgloss.JoinHorizontal(lipgloss.Top, content...)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, content...)
	}
	return s.Render(body), nil
}

// ReprocessDeclarations drops a border colour that has no border to colour.
// When both are present the colour applies to every side of the chosen border.
func ReprocessDeclarations(decls style.Declarations) style.Declarations {
	if _, ok := decls[DeclBorderForeground]; !ok {
		return decls
	}
	if border, ok := decls[DeclBorderStyle]; ok && border != "none" {
		return decls
	}

	out := make(style.Declarations, len(decls))
	for k, v := range decls {
		if k != DeclBorderForeground {
			out[k] = v
		}
	}
	return out
}

func newStyle(ctx RenderContext) lipgloss.Style {
	if ctx.Renderer != nil {
		return ctx.Renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

func direction(decls style.Declarations) Direction {
	value, ok := decls[DeclDirection]
	if !ok {
		return DirectionColumn
	}
	d, _ := ParseDirection(fmt.Sprint(value))
	return d
}

func applyColour(s lipgloss.Style, value any, theme Theme, set func(lipgloss.Style, lipgloss.TerminalColor) lipgloss.Style) (lipgloss.Style, error) {
	c, err := ResolveColour(value, theme)
	if err != nil {
		return s, err
	}
	return set(s, c), nil
}

func borderValue(value any, theme Theme) (lipgloss.Border, error) {
	switch v := value.(type) {
	case lipgloss.Border:
		return v, nil
	case string:
		b, ok := theme.Border(v)
		if !ok {
			return lipgloss.Border{}, fmt.Errorf("%w: %q", ErrUnknownBorder, v)
		}
		return b, nil
	default:
		return lipgloss.Border{}, fmt.Errorf("%w: expected a border name", ErrInvalidValue)
	}
}

// sizeValue resolves a cell count or a percentage of the viewport width.
func sizeValue(value any, viewport int) (int, error) {
	s, ok := value.(string)
	if !ok {
		return toInt(value)
	}
	pct, ok := strings.CutSuffix(strings.TrimSpace(s), "%")
	if !ok {
		return toInt(s)
	}
	n, err := strconv.Atoi(pct)
	if err != nil {
		return 0, fmt.Errorf("%w: bad percentage %q", ErrInvalidValue, s)
	}
	return viewport * n / 100, nil
}

func applySide(s lipgloss.Style, decl string, n int) lipgloss.Style {
	switch decl {
	case DeclMarginTop:
		return s.MarginTop(n)
	case DeclMarginRight:
		return s.MarginRight(n)
	case DeclMarginBottom:
		return s.MarginBottom(n)
	case DeclMarginLeft:
		return s.MarginLeft(n)
	case DeclPaddingTop:
		return s.PaddingTop(n)
	case DeclPaddingRight:
		return s.PaddingRight(n)
	case DeclPaddingBottom:
		return s.PaddingBottom(n)
	case DeclPaddingLeft:
		return s.PaddingLeft(n)
	default:
		return s
	}
}

func applyFlag(s lipgloss.Style, decl string, b bool) lipgloss.Style {
	switch decl {
	case DeclBold:
		return s.Bold(b)
	case DeclItalic:
		return s.Italic(b)
	case DeclUnderline:
		return s.Underline(b)
	case DeclFaint:
		return s.Faint(b)
	default:
		return s
	}
}
