package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	"github.com/alexisbeaulieu97/gridkit/internal/tui/tableview"
	"github.com/alexisbeaulieu97/gridkit/internal/ui/components"
)

type viewOptions struct {
	logFile       string
	printSelected bool
}

func newViewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <dataset>",
		Short: "Browse a dataset in an interactive table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (the terminal is owned by the UI)")
	cmd.Flags().BoolVar(&opts.printSelected, "print-selected", false, "Print selected row ids on exit")

	return cmd
}

func runView(cmd *cobra.Command, rootFlags *rootFlags, opts *viewOptions, path string) error {
	log := logger.Nop()
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return newCommandError("view", "opening log file", err, "Choose a writable --log-file path.")
		}
		defer file.Close()

		log, err = newLogger(rootFlags, file, "view")
		if err != nil {
			return newCommandError("view", "configuring logging", err, "Use one of: debug, info, warn, error.")
		}
	}

	ds, err := loadDataset("view", path)
	if err != nil {
		return err
	}

	tableOpts := ds.Options()
	tableOpts.Logger = log
	tableOpts.OnRowClick = func(_ datatable.Row, index int) {
		log.DebugFields("row opened", map[string]any{"index": index})
	}

	// rows arrive through the loader so the spinner path is shared with slow sources
	table, err := datatable.New(nil, ds.DataColumns(), tableOpts)
	if err != nil {
		return newCommandError("view", "building table", err, "Run 'gridkit validate' on the file for details.")
	}

	model := tableview.NewModel(table,
		tableview.WithTitle(ds.Title),
		tableview.WithLogger(log),
		tableview.WithRenderContext(components.DefaultContext().WithUnicode(supportsUnicode(cmd.OutOrStdout()))),
		tableview.WithLoader(func() ([]datatable.Row, error) { return ds.Rows, nil }),
	)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return newCommandError("view", "running interactive table", err, "Make sure you are in an interactive terminal.")
	}

	if opts.printSelected {
		for _, id := range table.State().Selection.IDs() {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
	}
	return nil
}
