package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
)

// Stylesheet is a YAML document declaring a theme and styled components.
type Stylesheet struct {
	Version    string            `yaml:"version" validate:"required,semver"`
	Name       string            `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Theme      ThemeConfig       `yaml:"theme,omitempty"`
	Components []ComponentConfig `yaml:"components" validate:"required,min=1,dive"`

	// Path is the file the stylesheet was loaded from, if any.
	Path string `yaml:"-"`
}

// ThemeConfig overrides parts of a built-in theme. Anything left out keeps the
// built-in value, including individual colours and breakpoints.
type ThemeConfig struct {
	Base        string                                 `yaml:"base,omitempty" validate:"omitempty,oneof=default light dark"`
	Colors      map[string]ColourConfig                `yaml:"colors,omitempty" validate:"omitempty,dive,keys,color_token,endkeys"`
	Spacing     []int                                  `yaml:"spacing,omitempty" validate:"omitempty,dive,min=0"`
	Breakpoints map[string]int                         `yaml:"breakpoints,omitempty" validate:"omitempty,dive,keys,breakpoint,endkeys,min=0"`
	Typography  map[string]components.TypographyPreset `yaml:"typography,omitempty"`
}

// ColourConfig is an adaptive colour. A plain scalar sets both variants.
type ColourConfig struct {
	Light string `yaml:"light" validate:"required,colour"`
	Dark  string `yaml:"dark" validate:"required,colour"`
}

// UnmarshalYAML accepts either "#rrggbb" or {light: ..., dark: ...}.
func (c *ColourConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		c.Light = value.Value
		c.Dark = value.Value
		return nil
	}

	type plain ColourConfig
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	if p.Dark == "" {
		p.Dark = p.Light
	}
	if p.Light == "" {
		p.Light = p.Dark
	}
	*c = ColourConfig(p)
	return nil
}

// ComponentConfig declares one styled component.
type ComponentConfig struct {
	Name string `yaml:"name" validate:"required,component_name"`
	// Base is a base element, a built-in definition or another component.
	Base     string         `yaml:"base" validate:"required"`
	Style    Param          `yaml:"style,omitempty"`
	Computed []ComputedRule `yaml:"computed,omitempty" validate:"omitempty,dive"`
}

// ComputedRule contributes Style to every instance whose props match When.
// An empty When matches every instance.
type ComputedRule struct {
	When  map[string]any `yaml:"when,omitempty"`
	Style Param          `yaml:"style"`
}

// Matches reports whether every When entry equals the corresponding prop.
// Values are compared by their printed form, so 1 and 1.0 match.
func (r ComputedRule) Matches(props map[string]any) bool {
	for key, want := range r.When {
		got, ok := props[key]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}
