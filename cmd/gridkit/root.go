package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridkit/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gridkit",
		Short:         "gridkit sorts, filters and pages tabular datasets in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newQueryCmd(flags))
	cmd.AddCommand(newViewCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds a console logger for a command. --verbose wins over --log-level.
func newLogger(flags *rootFlags, w io.Writer, component string) (*logger.Logger, error) {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w, Component: component})
}
