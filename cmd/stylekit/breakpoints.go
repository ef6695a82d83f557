package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
)

type breakpointsOptions struct {
	file  string
	width int
}

func newBreakpointsCmd(root *rootFlags) *cobra.Command {
	opts := &breakpointsOptions{}

	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "Show breakpoint thresholds and which tiers are active for a width",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreakpoints(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Stylesheet whose theme thresholds to use")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Viewport width in columns (defaults to the terminal width)")

	return cmd
}

func runBreakpoints(cmd *cobra.Command, root *rootFlags, opts *breakpointsOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	lib, _, err := loadLibrary("show breakpoints", opts.file, components.NewEngine(), log)
	if err != nil {
		return err
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	thresholds := lib.Theme.Thresholds()
	active := style.ComputeActiveBreakpoints(width, thresholds)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Width: %d\n", width)
	for i, bp := range style.Breakpoints {
		state := "inactive"
		if active.Has(bp) {
			state = "active"
		}
		// A tier switches on at the previous tier's threshold.
		from := 0
		if i > 0 {
			from = thresholds.Threshold(style.Breakpoints[i-1])
		}
		fmt.Fprintf(out, "  %-4s threshold %4d  from %4d  %s\n", bp, thresholds.Threshold(bp), from, state)
	}

	return nil
}
