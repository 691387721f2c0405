package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridkit/internal/config"
	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
)

type queryOptions struct {
	sortKey    string
	descending bool
	filter     string
	page       int
	pageSize   int
	all        bool
	jsonOutput bool
}

func newQueryCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query <dataset>",
		Short: "Sort, filter and page a dataset and print the result",
		Long: `Run the table pipeline headlessly: rows are sorted, then filtered, then paged,
exactly as the interactive view would show them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.sortKey, "sort", "", "Column key to sort by")
	cmd.Flags().BoolVar(&opts.descending, "desc", false, "Sort descending (requires --sort)")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Case-insensitive text matched against searchable columns")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page number (clamped to the available pages)")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "Rows per page (defaults to the dataset setting)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Print every matching row on one page")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runQuery(cmd *cobra.Command, rootFlags *rootFlags, opts *queryOptions, path string) error {
	log, err := newLogger(rootFlags, cmd.ErrOrStderr(), "query")
	if err != nil {
		return newCommandError("query", "configuring logging", err, "Use one of: debug, info, warn, error.")
	}

	if opts.descending && opts.sortKey == "" {
		return newCommandError("query", "parsing flags", fmt.Errorf("--desc given without --sort"), "Pass --sort <column> together with --desc.")
	}

	ds, err := loadDataset("query", path)
	if err != nil {
		return err
	}

	tableOpts := ds.Options()
	tableOpts.Logger = log
	if opts.pageSize > 0 {
		tableOpts.PageSize = opts.pageSize
	}
	if opts.all {
		tableOpts.DisablePagination = true
	}

	table, err := datatable.New(ds.Rows, ds.DataColumns(), tableOpts)
	if err != nil {
		return newCommandError("query", "building table", err, "Run 'gridkit validate' on the file for details.")
	}

	if opts.sortKey != "" {
		if err := requireSortable(table.Columns(), opts.sortKey, tableOpts.DisableSort); err != nil {
			return err
		}
		applySort(table, opts.sortKey, opts.descending)
	}
	table.SetFilter(opts.filter)
	table.SetPage(opts.page)

	view := table.View()
	if opts.jsonOutput {
		return renderQueryJSON(cmd, ds, view)
	}
	return renderQueryTable(cmd, ds, view)
}

// applySort drives the table's header-click reducer until it reaches the
// requested direction, clearing any dataset default first.
func applySort(table *datatable.Table, key string, descending bool) {
	table.ClearSort()
	table.Sort(key)
	if descending {
		table.Sort(key)
	}
}

func renderQueryTable(cmd *cobra.Command, ds *config.Dataset, view datatable.View) error {
	out := cmd.OutOrStdout()
	if ds.Title != "" {
		fmt.Fprintln(out, ds.Title)
		fmt.Fprintln(out)
	}

	if view.Empty {
		fmt.Fprintln(out, view.EmptyMessage)
		return nil
	}

	useUnicode := supportsUnicode(out)
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	headers := make([]string, len(view.Headers))
	for i, h := range view.Headers {
		headers[i] = strings.ToUpper(h.Column.Label()) + sortMarker(h.Direction, useUnicode)
	}
	fmt.Fprintln(writer, strings.Join(headers, "\t"))

	for _, row := range view.Rows {
		fmt.Fprintln(writer, strings.Join(row.Cells, "\t"))
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if view.ShowPagination {
		fmt.Fprintf(out, "\nPage %d of %d (%d rows)\n", view.Page, view.TotalPages, view.TotalItems)
	} else {
		fmt.Fprintf(out, "\n%d rows\n", view.TotalItems)
	}
	return nil
}

func sortMarker(direction datatable.SortDirection, useUnicode bool) string {
	switch direction {
	case datatable.SortAscending:
		if useUnicode {
			return " ▲"
		}
		return " (asc)"
	case datatable.SortDescending:
		if useUnicode {
			return " ▼"
		}
		return " (desc)"
	default:
		return ""
	}
}

type queryJSONSort struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

type queryJSONRow struct {
	ID     string            `json:"id"`
	Index  int               `json:"index"`
	Cells  map[string]string `json:"cells"`
	Values datatable.Row     `json:"values"`
}

type queryJSONPayload struct {
	Version    string         `json:"version"`
	Title      string         `json:"title,omitempty"`
	Sort       *queryJSONSort `json:"sort,omitempty"`
	Filter     string         `json:"filter,omitempty"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	TotalItems int            `json:"total_items"`
	Columns    []string       `json:"columns"`
	Rows       []queryJSONRow `json:"rows"`
}

func renderQueryJSON(cmd *cobra.Command, ds *config.Dataset, view datatable.View) error {
	payload := queryJSONPayload{
		Version:    "1.0",
		Title:      ds.Title,
		Filter:     view.Filter,
		Page:       view.Page,
		PageSize:   view.PageSize,
		TotalPages: view.TotalPages,
		TotalItems: view.TotalItems,
		Columns:    make([]string, len(view.Headers)),
		Rows:       make([]queryJSONRow, len(view.Rows)),
	}
	if view.Sort.Active() {
		payload.Sort = &queryJSONSort{Key: view.Sort.Key, Direction: view.Sort.Direction.String()}
	}
	for i, h := range view.Headers {
		payload.Columns[i] = h.Column.Key
	}
	for i, row := range view.Rows {
		cells := make(map[string]string, len(row.Cells))
		for c, h := range view.Headers {
			cells[h.Column.Key] = row.Cells[c]
		}
		payload.Rows[i] = queryJSONRow{
			ID:     string(row.Record.ID),
			Index:  row.Record.Index,
			Cells:  cells,
			Values: row.Record.Row,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
