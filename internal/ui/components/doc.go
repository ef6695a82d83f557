// Package components is the terminal style engine.
//
// # Overview
//
// Engine implements style.Engine for a Theme. It translates style props into
// lipgloss declarations, derives Tailwind-style class names and renders
// resolved declarations with a lipgloss renderer.
//
// # Style props
//
//   - bg, color, borderColor: theme colour token ("primary", "danger.muted",
//     "blue.500"), hex literal or ANSI index
//   - w, h: cells, a percentage of the viewport width ("50%") or "full"
//   - m, mx, my, mt, mr, mb, ml and p, px, py, pt, pr, pb, pl: spacing scale
//     index; values past the scale are used as cells
//   - typography: a preset from the theme ("title", "code", "text-lg")
//   - bold, italic, underline, faint: booleans
//   - border: a border name ("rounded", "thick") or a boolean
//   - align: left, center or right
//   - direction: row or column, for elements with several children
//
// Any other prop is left to the caller as a pass-through attribute.
//
// # Theme System
//
// Themes are plain values passed explicitly through RenderContext. A partial
// theme is completed with Normalize:
//
//	theme, err := components.Theme{
//		Breakpoints: style.Thresholds{style.BreakpointMD: 70},
//	}.Normalize()
//
// # Rendering
//
//	engine := components.NewEngine()
//	resolver := style.NewResolver[components.Theme](engine, theme, style.WithWidth(100))
//	resolved, err := resolver.Resolve(components.Button, style.Props{"variant": "success"}, style.State{})
//	out, err := engine.Render(ctx, resolved, "Save")
package components
