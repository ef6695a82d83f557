package style

import (
	"errors"
	"fmt"
)

// Reserved keys that may never appear as plain properties.
const (
	KeyStyles = "styles"
	KeyHover  = "hover"
	KeyFocus  = "focus"
	KeyMedia  = "media"
)

var (
	// ErrReservedKey is returned when a plain property uses a reserved key.
	ErrReservedKey = errors.New("reserved key used as style property")
	// ErrNestedVariant is returned when hover or focus is nested inside hover or focus.
	ErrNestedVariant = errors.New("hover/focus may only be nested one level deep")
	// ErrNestedMedia is returned when media is nested inside a media entry or variant.
	ErrNestedMedia = errors.New("media may not be nested")
)

// Props holds plain style properties keyed by property name. Values are
// translated into declarations by an Engine.
type Props map[string]any

// Declarations holds concrete style output keyed by declaration name. It is
// both the "direct styles" block of a Param and the result of Engine translation.
type Declarations map[string]any

// Param is a style parameter: unconditional plain properties, a direct styles
// block, optional hover and focus variants and an optional media map.
type Param struct {
	Props  Props
	Styles Declarations
	Hover  *Param
	Focus  *Param
	Media  Media
}

// MediaRule binds a media condition key to the parameter it enables.
type MediaRule struct {
	Key   string
	Param Param
}

// Media is an ordered set of media rules. Keys are unique; order is the
// declaration order.
type Media []MediaRule

// Get returns the parameter registered for key.
func (m Media) Get(key string) (Param, bool) {
	for _, rule := range m {
		if rule.Key == key {
			return rule.Param, true
		}
	}
	return Param{}, false
}

// Set returns a media set with key bound to p. An existing key keeps its position.
func (m Media) Set(key string, p Param) Media {
	for i, rule := range m {
		if rule.Key == key {
			out := append(Media(nil), m...)
			out[i].Param = p
			return out
		}
	}
	return append(append(Media(nil), m...), MediaRule{Key: key, Param: p})
}

// Keys returns the media keys in declaration order.
func (m Media) Keys() []string {
	keys := make([]string, len(m))
	for i, rule := range m {
		keys[i] = rule.Key
	}
	return keys
}

// IsZero reports whether the parameter carries nothing at all.
func (p Param) IsZero() bool {
	return len(p.Props) == 0 && len(p.Styles) == 0 && p.Hover == nil && p.Focus == nil && len(p.Media) == 0
}

// WithoutMedia returns a shallow copy of p with its media map removed.
func (p Param) WithoutMedia() Param {
	p.Media = nil
	return p
}

// Validate checks the structural invariants of a parameter: reserved keys are
// not used as properties, variants nest one level only and media does not nest.
func (p Param) Validate() error {
	return p.validate(false, false)
}

func (p Param) validate(inVariant, inMedia bool) error {
	for key := range p.Props {
		if isReservedKey(key) {
			return fmt.Errorf("%w: %q", ErrReservedKey, key)
		}
	}

	variants := []struct {
		name  string
		param *Param
	}{{KeyHover, p.Hover}, {KeyFocus, p.Focus}}
	for _, v := range variants {
		if v.param == nil {
			continue
		}
		if inVariant {
			return fmt.Errorf("%w: %s", ErrNestedVariant, v.name)
		}
		if err := v.param.validate(true, inMedia); err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
	}

	if len(p.Media) == 0 {
		return nil
	}
	if inMedia || inVariant {
		return ErrNestedMedia
	}
	for _, rule := range p.Media {
		if err := rule.Param.validate(false, true); err != nil {
			return fmt.Errorf("media %q: %w", rule.Key, err)
		}
	}
	return nil
}

func isReservedKey(key string) bool {
	switch key {
	case KeyStyles, KeyHover, KeyFocus, KeyMedia:
		return true
	default:
		return false
	}
}
