package components

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColour is returned for a colour that is neither a theme token, a
// hex literal nor an ANSI index.
var ErrUnknownColour = errors.New("unknown colour")

// ResolveColour turns a colour prop or declaration value into a terminal
// colour. Theme tokens win over literals, so a theme may shadow an ANSI index.
func ResolveColour(value any, theme Theme) (lipgloss.TerminalColor, error) {
	switch v := value.(type) {
	case lipgloss.AdaptiveColor:
		return v, nil
	case lipgloss.Color:
		return v, nil
	case lipgloss.NoColor:
		return v, nil
	case int:
		return ansiColour(v)
	case string:
		return resolveColourString(strings.TrimSpace(v), theme)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrUnknownColour, value)
	}
}

func resolveColourString(s string, theme Theme) (lipgloss.TerminalColor, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty value", ErrUnknownColour)
	}
	if c, ok := theme.Colour(s); ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex, err := NormalizeHex(s)
		if err != nil {
			return nil, err
		}
		return lipgloss.Color(hex), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return ansiColour(n)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColour, s)
}

// NormalizeHex validates a #rgb or #rrggbb literal and returns it in
// lowercase #rrggbb form.
func NormalizeHex(s string) (string, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a hex colour", ErrUnknownColour, s)
	}
	return c.Hex(), nil
}

// IsColour reports whether value resolves against theme.
func IsColour(value string, theme Theme) bool {
	_, err := resolveColourString(strings.TrimSpace(value), theme)
	return err == nil
}

func ansiColour(n int) (lipgloss.TerminalColor, error) {
	if n < 0 || n > 255 {
		return nil, fmt.Errorf("%w: ANSI index %d out of range", ErrUnknownColour, n)
	}
	return lipgloss.Color(strconv.Itoa(n)), nil
}
