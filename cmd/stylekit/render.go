package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
)

type renderOptions struct {
	file    string
	width   int
	hover   bool
	focus   bool
	props   []string
	content string
	explain bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Resolve and render one component instance",
		Long: `Render resolves a component for the given width and interaction state and
prints the result. Without --width the terminal width is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Stylesheet to load (built-in components only when empty)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Viewport width in columns")
	cmd.Flags().BoolVar(&opts.hover, "hover", false, "Render in the hovered state")
	cmd.Flags().BoolVar(&opts.focus, "focus", false, "Render in the focused state")
	cmd.Flags().StringArrayVarP(&opts.props, "prop", "p", nil, "Instance prop as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.content, "content", "", "Content to render (defaults to the component name)")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Print the resolution breakdown before the output")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, name string, opts *renderOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	engine := components.NewEngine()
	lib, _, err := loadLibrary("render", opts.file, engine, log)
	if err != nil {
		return err
	}

	def, err := lookupDefinition("render", lib, name)
	if err != nil {
		return err
	}

	props, err := parseProps(opts.props)
	if err != nil {
		return newCommandError("render", "parsing --prop", err, "Pass props as key=value, for example --prop variant=danger.")
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	inst := style.NewInstance(def, props)
	if opts.hover {
		inst.PointerEnter()
	}
	if opts.focus {
		inst.Focus()
	}

	resolver := style.NewResolver[components.Theme](engine, lib.Theme, style.WithWidth(width), style.WithLogger(log))
	resolved, err := resolver.ResolveInstance(inst)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("resolving %s", name), err, "Check the theme tokens and property values the component uses.")
	}

	content := opts.content
	if content == "" {
		content = name
	}

	ctx := components.RenderContext{
		Theme:    lib.Theme,
		Renderer: components.NewRenderer(cmd.OutOrStdout(), root.noColor),
		Width:    width,
	}
	output, err := engine.Render(ctx, resolved, content)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("rendering %s", name), err, "Check the declarations the component produces with --explain.")
	}

	out := cmd.OutOrStdout()
	if opts.explain {
		writeExplain(out, name, width, inst.State(), resolved)
	}
	fmt.Fprintln(out, output)
	return nil
}

func writeExplain(out io.Writer, name string, width int, state style.State, resolved style.Resolved) {
	fmt.Fprintf(out, "Component: %s\n", name)
	fmt.Fprintf(out, "Width:     %d (%s)\n", width, tierNames(resolved.Active))
	fmt.Fprintf(out, "State:     hovered=%t focused=%t\n", state.Hovered, state.Focused)
	fmt.Fprintf(out, "Listeners: hover=%t focus=%t\n", resolved.Listeners.Hover, resolved.Listeners.Focus)
	fmt.Fprintf(out, "Classes:   %s\n", resolved.ClassName)

	for _, source := range resolved.Sources {
		fmt.Fprintf(out, "\n[%s]\n", source.Name)
		writeMap(out, "props", source.Props)
		writeMap(out, "styles", source.Styles)
	}

	if len(resolved.Attributes) > 0 {
		fmt.Fprintln(out)
		writeMap(out, "attributes", resolved.Attributes)
	}

	fmt.Fprintln(out, "\nDeclarations:")
	for _, key := range sortedKeys(resolved.Styles) {
		fmt.Fprintf(out, "  %s = %v\n", key, resolved.Styles[key])
	}
	fmt.Fprintln(out)
}

func writeMap[M ~map[string]any](out io.Writer, label string, m M) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(out, "  %s:\n", label)
	for _, key := range sortedKeys(m) {
		fmt.Fprintf(out, "    %s = %v\n", key, m[key])
	}
}

func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
