package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
	"github.com/alexisbeaulieu97/stylekit/pkg/diff"
)

type diffOptions struct {
	file  string
	from  string
	to    string
	props []string
}

// snapshot is one width and interaction state a component is resolved at.
type snapshot struct {
	width int
	state style.State
}

func (s snapshot) String() string {
	parts := []string{fmt.Sprintf("width %d", s.width)}
	if s.state.Hovered {
		parts = append(parts, "hover")
	}
	if s.state.Focused {
		parts = append(parts, "focus")
	}
	return strings.Join(parts, " ")
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <component>",
		Short: "Compare a component's declarations between two widths or states",
		Long: `Diff resolves a component twice and prints the declarations that change.
Snapshots are written WIDTH[:STATE[+STATE]], for example 50, 100:hover or
120:hover+focus.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Stylesheet to load (built-in components only when empty)")
	cmd.Flags().StringVar(&opts.from, "from", "40", "Snapshot to compare from")
	cmd.Flags().StringVar(&opts.to, "to", "120", "Snapshot to compare to")
	cmd.Flags().StringArrayVarP(&opts.props, "prop", "p", nil, "Instance prop as key=value (repeatable)")

	return cmd
}

func runDiff(cmd *cobra.Command, root *rootFlags, name string, opts *diffOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	from, err := parseSnapshot(opts.from)
	if err != nil {
		return newCommandError("diff", "parsing --from", err, "Use WIDTH[:STATE[+STATE]], for example 100:hover.")
	}
	to, err := parseSnapshot(opts.to)
	if err != nil {
		return newCommandError("diff", "parsing --to", err, "Use WIDTH[:STATE[+STATE]], for example 100:hover.")
	}

	engine := components.NewEngine()
	lib, _, err := loadLibrary("diff", opts.file, engine, log)
	if err != nil {
		return err
	}

	def, err := lookupDefinition("diff", lib, name)
	if err != nil {
		return err
	}

	props, err := parseProps(opts.props)
	if err != nil {
		return newCommandError("diff", "parsing --prop", err, "Pass props as key=value, for example --prop variant=danger.")
	}

	before, err := resolveSnapshot(engine, lib, def, props, from, log)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("resolving %s at %s", name, from), err, "Check the theme tokens and property values the component uses.")
	}
	after, err := resolveSnapshot(engine, lib, def, props, to, log)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("resolving %s at %s", name, to), err, "Check the theme tokens and property values the component uses.")
	}

	out := cmd.OutOrStdout()
	result := diff.Maps(before.Styles, after.Styles, from.String(), to.String())
	if result == "" {
		fmt.Fprintf(out, "%s resolves identically at %s and %s\n", name, from, to)
		return nil
	}
	fmt.Fprint(out, result)
	return nil
}

func resolveSnapshot(engine components.Engine, lib *config.Library, def *style.Definition, props style.Props, snap snapshot, log *logger.Logger) (style.Resolved, error) {
	resolver := style.NewResolver[components.Theme](engine, lib.Theme, style.WithWidth(snap.width), style.WithLogger(log))
	return resolver.Resolve(def, props, snap.state)
}

func parseSnapshot(s string) (snapshot, error) {
	widthPart, statePart, _ := strings.Cut(strings.TrimSpace(s), ":")

	width, err := strconv.Atoi(widthPart)
	if err != nil || width < 0 {
		return snapshot{}, fmt.Errorf("invalid width %q", widthPart)
	}

	snap := snapshot{width: width}
	if statePart == "" {
		return snap, nil
	}
	for _, part := range strings.Split(statePart, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "hover":
			snap.state.Hovered = true
		case "focus":
			snap.state.Focused = true
		default:
			return snapshot{}, fmt.Errorf("unknown state %q", part)
		}
	}
	return snap, nil
}
