package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/tui"
	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
)

type previewOptions struct {
	file  string
	props []string
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [component...]",
		Short: "Preview components live with resize, hover and focus",
		Long: `Preview opens an interactive view of the given components, or of every
component the stylesheet declares. Resize the terminal to cross breakpoints,
move the mouse to hover and press tab to move focus.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Stylesheet to load (built-in components only when empty)")
	cmd.Flags().StringArrayVarP(&opts.props, "prop", "p", nil, "Prop applied to every instance as key=value (repeatable)")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, names []string, opts *previewOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	engine := components.NewEngine()
	lib, _, err := loadLibrary("preview", opts.file, engine, log)
	if err != nil {
		return err
	}

	props, err := parseProps(opts.props)
	if err != nil {
		return newCommandError("preview", "parsing --prop", err, "Pass props as key=value, for example --prop variant=danger.")
	}

	items, err := previewItems(lib, names, props)
	if err != nil {
		return err
	}

	width := terminalWidth(os.Stdout)
	// The program owns the screen, so resolution and render logs are dropped.
	resolver := style.NewResolver[components.Theme](engine, lib.Theme, style.WithWidth(width), style.WithCache(style.NewCache(0)))
	ctx := components.RenderContext{
		Theme:    lib.Theme,
		Renderer: components.NewRenderer(os.Stdout, root.noColor),
		Width:    width,
	}

	model := tui.NewModel(resolver, engine, ctx, items, nil)
	log.WithFields(map[string]any{"items": len(items), "width": width}).Info("launching preview")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return newCommandError("preview", "running the preview", err, "Run the preview in an interactive terminal.")
	}

	log.Info("preview closed")
	return nil
}

// previewItems instances the named components, or every declared component,
// or every definition when the library declares none.
func previewItems(lib *config.Library, names []string, props style.Props) ([]tui.Item, error) {
	if len(names) == 0 {
		names = lib.Declared
	}
	if len(names) == 0 {
		names = lib.Names()
	}

	items := make([]tui.Item, 0, len(names))
	for _, name := range names {
		def, err := lookupDefinition("preview", lib, name)
		if err != nil {
			return nil, err
		}
		items = append(items, tui.Item{
			Name:     name,
			Instance: style.NewInstance(def, props),
			Content:  fmt.Sprintf("%s preview", name),
		})
	}
	return items, nil
}
