package style

// Parsed is a parameter split into the parts the resolution pipeline consumes.
// Every map is non-nil.
type Parsed struct {
	Props       Props
	Styles      Declarations
	HoverProps  Props
	HoverStyles Declarations
	FocusProps  Props
	FocusStyles Declarations

	// Media is returned untouched; ApplyMedia flattens it before parsing.
	Media Media

	HoverSpecified bool
	FocusSpecified bool
}

// Parse decomposes a parameter into its plain properties, direct styles and
// the hover/focus variants of both.
func Parse(p Param) Parsed {
	parsed := Parsed{
		Props:       orEmpty(p.Props),
		Styles:      orEmpty(p.Styles),
		HoverProps:  Props{},
		HoverStyles: Declarations{},
		FocusProps:  Props{},
		FocusStyles: Declarations{},
		Media:       p.Media,
	}

	if p.Hover != nil {
		parsed.HoverProps = orEmpty(p.Hover.Props)
		parsed.HoverStyles = orEmpty(p.Hover.Styles)
	}
	if p.Focus != nil {
		parsed.FocusProps = orEmpty(p.Focus.Props)
		parsed.FocusStyles = orEmpty(p.Focus.Styles)
	}

	parsed.HoverSpecified = len(parsed.HoverProps) > 0 || len(parsed.HoverStyles) > 0
	parsed.FocusSpecified = len(parsed.FocusProps) > 0 || len(parsed.FocusStyles) > 0

	return parsed
}

// Select returns the plain properties and direct styles active for the given
// interaction state. Focus overrides the base and hover overrides focus.
func (p Parsed) Select(state State) (Props, Declarations) {
	props := []Props{p.Props}
	styles := []Declarations{p.Styles}

	if state.Focused {
		props = append(props, p.FocusProps)
		styles = append(styles, p.FocusStyles)
	}
	if state.Hovered {
		props = append(props, p.HoverProps)
		styles = append(styles, p.HoverStyles)
	}

	return orEmpty(Overlay(props...)), orEmpty(Overlay(styles...))
}

func orEmpty[M ~map[string]V, V any](m M) M {
	if m == nil {
		return M{}
	}
	return m
}
