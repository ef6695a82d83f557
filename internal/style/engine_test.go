package style

import (
	"errors"
)

const (
	smallFontSize = "14px"
	largeFontSize = "18px"
)

var errTestEngine = errors.New("cannot translate")

type testTheme struct {
	thresholds Thresholds
}

func (t testTheme) Thresholds() Thresholds { return t.thresholds }

// testEngine mirrors a tiny property vocabulary: s (small/large), enlarge,
// color and fail, which always errors.
type testEngine struct{}

func (testEngine) GenerateStyles(props Props, _ testTheme) (Declarations, error) {
	styles := Declarations{}
	if props["s"] == "small" {
		styles["fontSize"] = smallFontSize
	}
	if props["enlarge"] == true || props["s"] == "large" {
		styles["fontSize"] = largeFontSize
	}
	if color, ok := props["color"]; ok {
		styles["color"] = color
	}
	if _, ok := props["fail"]; ok {
		return nil, errTestEngine
	}
	return styles, nil
}

func (testEngine) GenerateClasses(props Props) []string {
	if props["s"] == "small" {
		return []string{"small"}
	}
	if props["s"] == "large" || props["enlarge"] == true {
		return []string{"large"}
	}
	return nil
}

func (testEngine) ResolveClassConflicts(classes []string) []string {
	if len(classes) == 0 {
		return []string{}
	}
	return classes[len(classes)-1:]
}

func (testEngine) IsBaseElement(id string) bool { return id == "div" }

func (testEngine) IsStyleProp(name string) bool {
	switch name {
	case "s", "enlarge", "color", "fail":
		return true
	default:
		return false
	}
}

func newTestResolver(width int, opts ...ResolverOption) *Resolver[testTheme] {
	theme := testTheme{thresholds: testThresholds}
	return NewResolver[testTheme](testEngine{}, theme, append([]ResolverOption{WithWidth(width)}, opts...)...)
}
