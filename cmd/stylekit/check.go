package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <stylesheet>",
		Short: "Validate a stylesheet and report media keys that never match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, args[0])
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootFlags, path string) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	lib, warnings, err := loadLibrary("check", path, components.NewEngine(), log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	name := lib.Name
	if name == "" {
		name = path
	}
	fmt.Fprintf(out, "Stylesheet %s is valid\n", name)

	fmt.Fprintf(out, "Components (%d):\n", len(lib.Declared))
	for _, comp := range lib.Declared {
		fmt.Fprintf(out, "  - %s (%s)\n", comp, lib.Definitions[comp].Element())
	}

	if len(warnings) > 0 {
		fmt.Fprintf(out, "Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	return nil
}
