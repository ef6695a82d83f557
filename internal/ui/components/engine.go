package components

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Base elements rendered by the terminal engine.
const (
	ElementBox    style.Element = "box"
	ElementText   style.Element = "text"
	ElementButton style.Element = "button"
	ElementHeader style.Element = "header"
	ElementBadge  style.Element = "badge"
)

// Elements lists the base elements in a stable order.
var Elements = []style.Element{ElementBox, ElementText, ElementButton, ElementHeader, ElementBadge}

// Declaration names produced by the engine and accepted in direct styles.
const (
	DeclBackground       = "background"
	DeclForeground       = "foreground"
	DeclBorderStyle      = "borderStyle"
	DeclBorderForeground = "borderForeground"
	DeclWidth            = "width"
	DeclHeight           = "height"
	DeclMarginTop        = "marginTop"
	DeclMarginRight      = "marginRight"
	DeclMarginBottom     = "marginBottom"
	DeclMarginLeft       = "marginLeft"
	DeclPaddingTop       = "paddingTop"
	DeclPaddingRight     = "paddingRight"
	DeclPaddingBottom    = "paddingBottom"
	DeclPaddingLeft      = "paddingLeft"
	DeclBold             = "bold"
	DeclItalic           = "italic"
	DeclUnderline        = "underline"
	DeclFaint            = "faint"
	DeclAlign            = "align"
	DeclDirection        = "direction"
)

var (
	// ErrUnknownBorder is returned for a border name the theme does not define.
	ErrUnknownBorder = errors.New("unknown border")
	// ErrUnknownTypography is returned for a typography preset the theme does not define.
	ErrUnknownTypography = errors.New("unknown typography preset")
	// ErrInvalidValue is returned when a prop value has the wrong shape.
	ErrInvalidValue = errors.New("invalid value")
)

type translator func(value any, theme Theme) (style.Declarations, error)

// propertyOrder is the translation order. Presets come first and single sides
// last, so the more specific prop wins when two write the same declaration.
var propertyOrder = []string{
	"typography",
	"bold", "italic", "underline", "faint",
	"color", "bg", "border", "borderColor",
	"w", "h",
	"m", "mx", "my", "mt", "mr", "mb", "ml",
	"p", "px", "py", "pt", "pr", "pb", "pl",
	"align", "direction",
}

var translators = map[string]translator{
	"typography":  translateTypography,
	"bold":        flag(DeclBold),
	"italic":      flag(DeclItalic),
	"underline":   flag(DeclUnderline),
	"faint":       flag(DeclFaint),
	"color":       colour(DeclForeground),
	"bg":          colour(DeclBackground),
	"border":      translateBorder,
	"borderColor": colour(DeclBorderForeground),
	"w":           size(DeclWidth),
	"h":           size(DeclHeight),
	"m":           spacing(DeclMarginTop, DeclMarginRight, DeclMarginBottom, DeclMarginLeft),
	"mx":          spacing(DeclMarginLeft, DeclMarginRight),
	"my":          spacing(DeclMarginTop, DeclMarginBottom),
	"mt":          spacing(DeclMarginTop),
	"mr":          spacing(DeclMarginRight),
	"mb":          spacing(DeclMarginBottom),
	"ml":          spacing(DeclMarginLeft),
	"p":           spacing(DeclPaddingTop, DeclPaddingRight, DeclPaddingBottom, DeclPaddingLeft),
	"px":          spacing(DeclPaddingLeft, DeclPaddingRight),
	"py":          spacing(DeclPaddingTop, DeclPaddingBottom),
	"pt":          spacing(DeclPaddingTop),
	"pr":          spacing(DeclPaddingRight),
	"pb":          spacing(DeclPaddingBottom),
	"pl":          spacing(DeclPaddingLeft),
	"align":       translateAlign,
	"direction":   translateDirection,
}

// classCovers lists, for shorthand props, the props whose classes a later
// shorthand class replaces.
var classCovers = map[string][]string{
	"m":  {"mx", "my", "mt", "mr", "mb", "ml"},
	"mx": {"ml", "mr"},
	"my": {"mt", "mb"},
	"p":  {"px", "py", "pt", "pr", "pb", "pl"},
	"px": {"pl", "pr"},
	"py": {"pt", "pb"},
}

// Engine is the terminal style engine. It translates style props into
// declarations against a Theme and renders declarations with lipgloss.
type Engine struct{}

var (
	_ style.Engine[Theme] = Engine{}
	_ style.PropFilter    = Engine{}
)

// NewEngine returns the terminal engine.
func NewEngine() Engine {
	return Engine{}
}

// StyleProps returns the recognised style props in translation order.
func StyleProps() []string {
	return append([]string(nil), propertyOrder...)
}

// GenerateStyles translates props into declarations. Unrecognised props are
// ignored.
func (Engine) GenerateStyles(props style.Props, theme Theme) (style.Declarations, error) {
	out := style.Declarations{}
	for _, name := range propertyOrder {
		value, ok := props[name]
		if !ok || value == nil {
			continue
		}
		decls, err := translators[name](value, theme)
		if err != nil {
			return nil, stylekiterrors.NewEngineError(name, value, err)
		}
		for k, v := range decls {
			out[k] = v
		}
	}
	return out, nil
}

// GenerateClasses derives utility class names such as "p-2" or "bg-primary"
// from props, in translation order.
func (Engine) GenerateClasses(props style.Props) []string {
	classes := make([]string, 0, len(props))
	for _, name := range propertyOrder {
		value, ok := props[name]
		if !ok || value == nil {
			continue
		}
		classes = append(classes, className(name, value))
	}
	return classes
}

// ResolveClassConflicts keeps, for every class group, the last class in the
// list. A shorthand class also replaces earlier classes of the sides it sets.
func (Engine) ResolveClassConflicts(classes []string) []string {
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		group := classGroup(class)
		kept := out[:0]
		for _, existing := range out {
			if existing == class || overrides(group, classGroup(existing)) {
				continue
			}
			kept = append(kept, existing)
		}
		out = append(kept, class)
	}
	return out
}

// IsBaseElement reports whether id is one of the terminal base elements.
func (Engine) IsBaseElement(id string) bool {
	for _, el := range Elements {
		if string(el) == id {
			return true
		}
	}
	return false
}

// IsStyleProp reports whether name is a style prop the engine translates.
func (Engine) IsStyleProp(name string) bool {
	_, ok := translators[name]
	return ok
}

func className(name string, value any) string {
	if b, ok := value.(bool); ok {
		if b {
			return name
		}
		return name + "-false"
	}
	text := fmt.Sprint(value)
	if !classSafe(text) {
		text = "[" + text + "]"
	}
	return name + "-" + text
}

func classSafe(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '.', r == '%':
		default:
			return false
		}
	}
	return true
}

// classGroup returns the prop a class was generated from, or the class itself
// for classes the engine did not generate.
func classGroup(class string) string {
	prefix, _, _ := strings.Cut(class, "-")
	if _, ok := translators[prefix]; ok {
		return prefix
	}
	return class
}

func overrides(later, earlier string) bool {
	if later == earlier {
		return true
	}
	for _, covered := range classCovers[later] {
		if covered == earlier {
			return true
		}
	}
	return false
}

func flag(decl string) translator {
	return func(value any, _ Theme) (style.Declarations, error) {
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: expected a boolean", ErrInvalidValue)
		}
		return style.Declarations{decl: b}, nil
	}
}

func colour(decl string) translator {
	return func(value any, theme Theme) (style.Declarations, error) {
		c, err := ResolveColour(value, theme)
		if err != nil {
			return nil, err
		}
		return style.Declarations{decl: c}, nil
	}
}

func spacing(decls ...string) translator {
	return func(value any, theme Theme) (style.Declarations, error) {
		n, err := toInt(value)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: spacing must not be negative", ErrInvalidValue)
		}
		cells := theme.SpacingValue(n)
		out := make(style.Declarations, len(decls))
		for _, decl := range decls {
			out[decl] = cells
		}
		return out, nil
	}
}

// size accepts a cell count, a percentage of the viewport width ("50%") or
// "full".
func size(decl string) translator {
	return func(value any, _ Theme) (style.Declarations, error) {
		if s, ok := value.(string); ok {
			s = strings.TrimSpace(s)
			if s == "full" {
				return style.Declarations{decl: "100%"}, nil
			}
			if pct, ok := strings.CutSuffix(s, "%"); ok {
				n, err := strconv.Atoi(pct)
				if err != nil || n < 0 {
					return nil, fmt.Errorf("%w: bad percentage %q", ErrInvalidValue, s)
				}
				return style.Declarations{decl: s}, nil
			}
		}
		n, err := toInt(value)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: size must not be negative", ErrInvalidValue)
		}
		return style.Declarations{decl: n}, nil
	}
}

func translateBorder(value any, theme Theme) (style.Declarations, error) {
	var name string
	switch v := value.(type) {
	case bool:
		name = "none"
		if v {
			name = "normal"
		}
	case string:
		name = strings.TrimSpace(v)
	default:
		return nil, fmt.Errorf("%w: expected a border name", ErrInvalidValue)
	}
	if _, ok := theme.Border(name); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
	}
	return style.Declarations{DeclBorderStyle: name}, nil
}

func translateTypography(value any, theme Theme) (style.Declarations, error) {
	name, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected a preset name", ErrInvalidValue)
	}
	preset, ok := theme.Typography[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTypography, name)
	}

	out := style.Declarations{}
	if preset.Color != "" {
		c, err := ResolveColour(preset.Color, theme)
		if err != nil {
			return nil, err
		}
		out[DeclForeground] = c
	}
	if preset.Background != "" {
		c, err := ResolveColour(preset.Background, theme)
		if err != nil {
			return nil, err
		}
		out[DeclBackground] = c
	}
	for decl, set := range map[string]bool{
		DeclBold:      preset.Bold,
		DeclItalic:    preset.Italic,
		DeclUnderline: preset.Underline,
		DeclFaint:     preset.Faint,
	} {
		if set {
			out[decl] = true
		}
	}
	if preset.PaddingX > 0 {
		out[DeclPaddingLeft] = preset.PaddingX
		out[DeclPaddingRight] = preset.PaddingX
	}
	if preset.MarginTop > 0 {
		out[DeclMarginTop] = preset.MarginTop
	}
	if preset.MarginBottom > 0 {
		out[DeclMarginBottom] = preset.MarginBottom
	}
	return out, nil
}

func translateAlign(value any, _ Theme) (style.Declarations, error) {
	s, _ := value.(string)
	a, err := ParseAlignment(s)
	if err != nil {
		return nil, err
	}
	return style.Declarations{DeclAlign: a.String()}, nil
}

func translateDirection(value any, _ Theme) (style.Declarations, error) {
	s, _ := value.(string)
	d, err := ParseDirection(s)
	if err != nil {
		return nil, err
	}
	return style.Declarations{DeclDirection: d.String()}, nil
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %v is not a whole number", ErrInvalidValue, v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: expected a number, got %T", ErrInvalidValue, value)
	}
}
