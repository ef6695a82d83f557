package components

import (
	"fmt"
	"sort"

	"dario.cat/mergo"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// paletteShadeNames are the Tailwind-style shade suffixes, lightest first.
var paletteShadeNames = [...]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// ColourSet groups the colours of one semantic palette slot.
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
//   - Contrast: An accent color that "pops" against Base
//
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// TypographyPreset is a named text treatment referenced by the typography prop.
type TypographyPreset struct {
	Color        string `yaml:"color"`
	Background   string `yaml:"background"`
	Bold         bool   `yaml:"bold"`
	Italic       bool   `yaml:"italic"`
	Underline    bool   `yaml:"underline"`
	Faint        bool   `yaml:"faint"`
	PaddingX     int    `yaml:"padding_x"`
	MarginTop    int    `yaml:"margin_top"`
	MarginBottom int    `yaml:"margin_bottom"`
}

// Theme is the data the terminal engine translates style props against.
// Themes are plain values; Normalize fills whatever a partial theme leaves out
// from the default theme.
type Theme struct {
	Name string

	// Colors maps colour tokens ("primary", "primary.muted", "blue.500") to
	// adaptive colours.
	Colors map[string]lipgloss.AdaptiveColor
	// Spacing maps spacing indexes to terminal cells.
	Spacing []int
	// Borders maps border names to lipgloss borders.
	Borders    map[string]lipgloss.Border
	Typography map[string]TypographyPreset
	// Breakpoints holds the minimum widths of the breakpoint tiers.
	Breakpoints style.Thresholds
}

// Thresholds implements style.Theme.
func (t Theme) Thresholds() style.Thresholds {
	return t.Breakpoints
}

// Normalize returns a new theme with every field the receiver leaves empty
// taken from the default theme. Map fields are filled key by key, so a theme
// that overrides one breakpoint keeps the default for the others.
func (t Theme) Normalize() (Theme, error) {
	t.Colors = cloneMap(t.Colors)
	t.Borders = cloneMap(t.Borders)
	t.Typography = cloneMap(t.Typography)
	t.Breakpoints = cloneMap(t.Breakpoints)

	if err := mergo.Merge(&t, baseTheme()); err != nil {
		return Theme{}, fmt.Errorf("normalize theme: %w", err)
	}
	return t, nil
}

// Colour looks up a colour token.
func (t Theme) Colour(token string) (lipgloss.AdaptiveColor, bool) {
	c, ok := t.Colors[token]
	return c, ok
}

// Border looks up a border by name.
func (t Theme) Border(name string) (lipgloss.Border, bool) {
	b, ok := t.Borders[name]
	return b, ok
}

// SpacingValue maps a spacing index to cells. Indexes outside the scale are
// used literally.
func (t Theme) SpacingValue(index int) int {
	if index >= 0 && index < len(t.Spacing) {
		return t.Spacing[index]
	}
	return index
}

// ColourTokens returns the colour tokens in sorted order.
func (t Theme) ColourTokens() []string {
	tokens := make([]string, 0, len(t.Colors))
	for token := range t.Colors {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return baseTheme()
}

// DarkTheme returns a theme with darker surface and neutral slots.
func DarkTheme() Theme {
	theme := baseTheme()
	theme.Name = "dark"

	addColourSet(theme.Colors, "surface", ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	})
	addColourSet(theme.Colors, "neutral", ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	})

	return theme
}

// ThemeByName returns a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default", "light":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return Theme{}, false
	}
}

// DefaultThresholds returns the default breakpoint minimum widths in columns.
func DefaultThresholds() style.Thresholds {
	return style.Thresholds{
		style.BreakpointSM:  40,
		style.BreakpointMD:  60,
		style.BreakpointLG:  80,
		style.BreakpointXL:  120,
		style.Breakpoint2XL: 160,
	}
}

func baseTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	colors := map[string]lipgloss.AdaptiveColor{}
	addColourSet(colors, "primary", ColourSet{
		Base:     ac("#3b82f6", "#60a5fa"),
		OnBase:   ac("#f8fafc", "#0b1120"),
		Muted:    ac("#2563eb", "#1d4ed8"),
		Contrast: ac("#facc15", "#ca8a04"),
	})
	addColourSet(colors, "secondary", ColourSet{
		Base:     ac("#a855f7", "#c084fc"),
		OnBase:   ac("#f8fafc", "#1f2937"),
		Muted:    ac("#7c3aed", "#6b21a8"),
		Contrast: ac("#f472b6", "#f472b6"),
	})
	addColourSet(colors, "surface", ColourSet{
		Base:     ac("#f9fafb", "#111827"),
		OnBase:   ac("#111827", "#f9fafb"),
		Muted:    ac("#e2e8f0", "#1f2937"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	})
	addColourSet(colors, "success", ColourSet{
		Base:     ac("#22c55e", "#4ade80"),
		OnBase:   ac("#052e16", "#022c22"),
		Muted:    ac("#16a34a", "#15803d"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	})
	addColourSet(colors, "warning", ColourSet{
		Base:     ac("#eab308", "#facc15"),
		OnBase:   ac("#422006", "#422006"),
		Muted:    ac("#ca8a04", "#a16207"),
		Contrast: ac("#111827", "#111827"),
	})
	addColourSet(colors, "danger", ColourSet{
		Base:     ac("#ef4444", "#f87171"),
		OnBase:   ac("#7f1d1d", "#450a0a"),
		Muted:    ac("#dc2626", "#b91c1c"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	})
	addColourSet(colors, "info", ColourSet{
		Base:     ac("#06b6d4", "#22d3ee"),
		OnBase:   ac("#083344", "#04121a"),
		Muted:    ac("#0891b2", "#0e7490"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	})
	addColourSet(colors, "neutral", ColourSet{
		Base:     ac("#64748b", "#94a3b8"),
		OnBase:   ac("#f1f5f9", "#0f172a"),
		Muted:    ac("#475569", "#334155"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	})

	addShades(colors, "slate", "#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a")
	addShades(colors, "blue", "#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a")
	addShades(colors, "green", "#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d")
	addShades(colors, "red", "#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d")
	addShades(colors, "yellow", "#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12")
	addShades(colors, "purple", "#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87")
	addShades(colors, "cyan", "#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63")

	return Theme{
		Name:   "default",
		Colors: colors,
		// none, xs, sm, md, lg, xl, 2xl, 3xl, 4xl
		Spacing: []int{0, 1, 2, 3, 4, 5, 6, 8, 10},
		Borders: map[string]lipgloss.Border{
			"none":    {},
			"hidden":  lipgloss.HiddenBorder(),
			"normal":  lipgloss.NormalBorder(),
			"rounded": lipgloss.RoundedBorder(),
			"thick":   lipgloss.ThickBorder(),
			"double":  lipgloss.DoubleBorder(),
			"block":   lipgloss.BlockBorder(),
		},
		Typography:  defaultTypography(),
		Breakpoints: DefaultThresholds(),
	}
}

func defaultTypography() map[string]TypographyPreset {
	return map[string]TypographyPreset{
		"base":          {Color: "surface.on"},
		"body":          {Color: "surface.on"},
		"title":         {Color: "primary", Bold: true},
		"subtitle":      {Color: "secondary.muted", Faint: true},
		"code":          {Color: "secondary", Background: "surface.muted", PaddingX: 1},
		"emphasis":      {Bold: true},
		"text-xs":       {Faint: true},
		"text-sm":       {},
		"text-base":     {},
		"text-lg":       {Bold: true},
		"text-xl":       {Bold: true, Underline: true},
		"text-2xl":      {Bold: true, Underline: true, MarginTop: 1},
		"text-3xl":      {Bold: true, Underline: true, MarginTop: 1, MarginBottom: 1},
		"font-light":    {Faint: true},
		"font-normal":   {},
		"font-medium":   {Bold: true},
		"font-semibold": {Bold: true, Underline: true},
		"font-bold":     {Bold: true, Italic: true},
	}
}

// addColourSet registers the four colours of a semantic slot as
// name, name.on, name.muted and name.contrast.
func addColourSet(colors map[string]lipgloss.AdaptiveColor, name string, cs ColourSet) {
	colors[name] = cs.Base
	colors[name+".on"] = cs.OnBase
	colors[name+".muted"] = cs.Muted
	colors[name+".contrast"] = cs.Contrast
}

// addShades registers a colour family as family.50 through family.900.
func addShades(colors map[string]lipgloss.AdaptiveColor, family string, hexes ...string) {
	for i, hex := range hexes {
		if i >= len(paletteShadeNames) {
			break
		}
		colors[family+"."+paletteShadeNames[i]] = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}
}

func cloneMap[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return nil
	}
	out := make(M, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
