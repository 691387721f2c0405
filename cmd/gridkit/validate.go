package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <dataset>",
		Short: "Check a dataset file without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(rootFlags, cmd.ErrOrStderr(), "validate")
			if err != nil {
				return newCommandError("validate", "configuring logging", err, "Use one of: debug, info, warn, error.")
			}

			ds, err := loadDataset("validate", args[0])
			if err != nil {
				return err
			}

			opts := ds.Options()
			opts.Logger = log
			table, err := datatable.New(ds.Rows, ds.DataColumns(), opts)
			if err != nil {
				return newCommandError("validate", "checking column schema", err, "Fix the column definitions and try again.")
			}

			marker := "[OK]"
			if supportsUnicode(cmd.OutOrStdout()) {
				marker = "✓"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid: %d columns, %d rows\n",
				marker, args[0], len(table.Columns()), len(table.Records()))
			return nil
		},
	}

	return cmd
}
