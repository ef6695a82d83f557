package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logLevel string
	noColor  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "Stylekit resolves responsive, stateful component styles for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Render without colours")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newBreakpointsCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger. --verbose wins over --log-level.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "stylekit",
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}
	return log, nil
}
