package config

import (
	"fmt"
	"sort"

	"dario.cat/mergo"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Library is a built stylesheet: the final theme and every definition it
// makes available, built-ins included.
type Library struct {
	Name        string
	Theme       components.Theme
	Definitions map[string]*style.Definition
	// Declared lists the stylesheet's own components in document order.
	Declared []string
}

// Definition looks up a definition by name.
func (l *Library) Definition(name string) (*style.Definition, bool) {
	def, ok := l.Definitions[name]
	return def, ok
}

// Names returns every definition name in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.Definitions))
	for name := range l.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultLibrary returns the built-in definitions with the default theme.
func DefaultLibrary() *Library {
	return &Library{
		Name:        "builtin",
		Theme:       components.DefaultTheme(),
		Definitions: components.Builtins(),
	}
}

// BuildTheme layers the theme overrides over the selected built-in theme.
func (t ThemeConfig) BuildTheme() (components.Theme, error) {
	base, ok := components.ThemeByName(t.Base)
	if !ok {
		return components.Theme{}, stylekiterrors.NewValidationError("theme.base", fmt.Sprintf("unknown theme %q", t.Base), nil)
	}

	override := components.Theme{
		Spacing:    append([]int(nil), t.Spacing...),
		Typography: map[string]components.TypographyPreset{},
	}
	if len(t.Colors) > 0 {
		override.Colors = make(map[string]lipgloss.AdaptiveColor, len(t.Colors))
		for token, c := range t.Colors {
			override.Colors[token] = lipgloss.AdaptiveColor{Light: normalizeColour(c.Light), Dark: normalizeColour(c.Dark)}
		}
	}
	for name, preset := range t.Typography {
		override.Typography[name] = preset
	}

	if err := mergo.Merge(&override, base); err != nil {
		return components.Theme{}, fmt.Errorf("merge theme overrides: %w", err)
	}
	// mergo treats an explicit 0 as unset, so thresholds bypass it and use
	// the same overlay the validator checks.
	override.Breakpoints = effectiveThresholds(t)
	return override, nil
}

// Build turns a validated stylesheet into a Library. Components are defined
// parents first, so a component may extend one declared after it.
func (s *Stylesheet) Build(engine BaseChecker) (*Library, error) {
	theme, err := s.Theme.BuildTheme()
	if err != nil {
		return nil, err
	}

	lib := &Library{
		Name:        s.Name,
		Theme:       theme,
		Definitions: components.Builtins(),
		Declared:    make([]string, 0, len(s.Components)),
	}

	for _, i := range definitionOrder(s.Components) {
		comp := s.Components[i]

		var base style.Base
		if parent, ok := lib.Definitions[comp.Base]; ok {
			base = parent
		} else if engine.IsBaseElement(comp.Base) {
			base = style.Element(comp.Base)
		} else {
			return nil, stylekiterrors.NewValidationError(fieldForComponent(i, "base"), fmt.Sprintf("references unknown base %q", comp.Base), nil)
		}

		opts := []style.Option{style.WithName(comp.Name), style.WithStyles(comp.Style.Param)}
		for _, rule := range comp.Computed {
			opts = append(opts, style.WithCompute(rule.compute()))
		}

		def, err := style.Define(base, opts...)
		if err != nil {
			return nil, stylekiterrors.NewValidationError(fieldForComponent(i, "style"), err.Error(), err)
		}
		lib.Definitions[comp.Name] = def
	}

	for _, comp := range s.Components {
		lib.Declared = append(lib.Declared, comp.Name)
	}

	return lib, nil
}

// Warnings reports media keys that can never match, per component.
func (s *Stylesheet) Warnings() []string {
	var warnings []string
	for i, comp := range s.Components {
		for _, key := range style.InertMediaKeys(comp.Style.Param) {
			warnings = append(warnings, fmt.Sprintf("%s: media key %q never matches", fieldForComponent(i, "style"), key))
		}
		for j, rule := range comp.Computed {
			for _, key := range style.InertMediaKeys(rule.Style.Param) {
				warnings = append(warnings, fmt.Sprintf("%s: media key %q never matches", fieldForComponent(i, fmt.Sprintf("computed[%d].style", j)), key))
			}
		}
	}
	return warnings
}

func (r ComputedRule) compute() style.ComputeFunc {
	p := r.Style.Param
	return func(props style.Props) style.Param {
		if r.Matches(props) {
			return p
		}
		return style.Param{}
	}
}

func normalizeColour(s string) string {
	if hex, err := components.NormalizeHex(s); err == nil {
		return hex
	}
	return s
}
