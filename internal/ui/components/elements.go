package components

import (
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// variantSlots maps variant names to colour slots. Aliases keep the names
// older themes used.
var variantSlots = map[string]string{
	"primary":   "primary",
	"secondary": "secondary",
	"success":   "success",
	"warning":   "warning",
	"danger":    "danger",
	"error":     "danger",
	"info":      "info",
	"neutral":   "neutral",
	"muted":     "neutral",
	"default":   "neutral",
}

// Predefined styled definitions.
var (
	Box  = style.MustDefine(ElementBox, style.WithName("Box"))
	Text = style.MustDefine(ElementText, style.WithName("Text"))

	Row = style.MustDefine(ElementBox, style.WithName("Row"), style.WithStyles(style.Param{
		Props: style.Props{"direction": "row"},
	}))
	Col = style.MustDefine(ElementBox, style.WithName("Col"), style.WithStyles(style.Param{
		Props: style.Props{"direction": "column"},
	}))

	Button = style.MustDefine(ElementButton,
		style.WithName("Button"),
		style.WithStyles(style.Param{
			Props: style.Props{"px": 2, "border": "rounded", "borderColor": "neutral"},
			Hover: &style.Param{Props: style.Props{"borderColor": "primary"}},
			Focus: &style.Param{Props: style.Props{"border": "thick", "bold": true}},
		}),
		style.WithCompute(variantFill("primary")),
	)

	Header = style.MustDefine(ElementHeader, style.WithName("Header"), style.WithStyles(style.Param{
		Props: style.Props{"typography": "title", "mb": 1},
	}))

	Badge = style.MustDefine(ElementBadge,
		style.WithName("Badge"),
		style.WithStyles(style.Param{Props: style.Props{"px": 1}}),
		style.WithCompute(variantFill("neutral")),
	)
)

// Builtins returns the predefined definitions by name.
func Builtins() map[string]*style.Definition {
	return map[string]*style.Definition{
		"Box":    Box,
		"Text":   Text,
		"Row":    Row,
		"Col":    Col,
		"Button": Button,
		"Header": Header,
		"Badge":  Badge,
	}
}

// variantFill colours an element from its variant prop, falling back to
// fallback for a missing or unknown variant. A disabled element is faint and
// keeps its colours on hover.
func variantFill(fallback string) style.ComputeFunc {
	return func(props style.Props) style.Param {
		slot := fallback
		if name, ok := props["variant"].(string); ok {
			if s, ok := variantSlots[name]; ok {
				slot = s
			}
		}

		p := style.Param{Props: style.Props{"bg": slot, "color": slot + ".on"}}
		if disabled, _ := props["disabled"].(bool); disabled {
			p.Props["faint"] = true
			return p
		}
		p.Hover = &style.Param{Props: style.Props{"bg": slot + ".muted"}}
		return p
	}
}
