package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/gridkit/internal/config"
	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
	gkerrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

// loadDataset parses path and wraps failures with a suggestion suited to the error kind.
func loadDataset(operation, path string) (*config.Dataset, error) {
	ds, err := config.ParseDataset(path)
	if err == nil {
		return ds, nil
	}

	var (
		parseErr  *gkerrors.ParseError
		valErr    *gkerrors.ValidationError
		coerceErr *gkerrors.CoercionError
	)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, newCommandError(operation, fmt.Sprintf("reading %s", path), err, "Check the dataset path and try again.")
	case errors.As(err, &parseErr):
		return nil, newCommandError(operation, "parsing dataset", err, "Fix the YAML syntax near the reported line.")
	case errors.As(err, &valErr):
		return nil, newCommandError(operation, "validating dataset", err, fmt.Sprintf("Correct the %q field in %s.", valErr.Field, path))
	case errors.As(err, &coerceErr):
		return nil, newCommandError(operation, "converting row values", err, fmt.Sprintf("Make every %q value match the column type, or set type: auto.", coerceErr.Column))
	default:
		return nil, newCommandError(operation, "loading dataset", err, "Run 'gridkit validate' on the file for details.")
	}
}

// requireSortable reports sort keys the table would silently ignore: any key
// when sorting is disabled, otherwise unknown or unsortable columns.
func requireSortable(columns []datatable.Column, key string, disabled bool) error {
	if disabled {
		return newCommandError("query", fmt.Sprintf("sorting by %q", key),
			errors.New("sorting is disabled for this dataset"),
			"Drop --sort, or remove table.disable_sort from the dataset.")
	}
	var sortable []string
	for _, col := range columns {
		if !col.Sortable() {
			continue
		}
		if col.Key == key {
			return nil
		}
		sortable = append(sortable, col.Key)
	}
	return newCommandError("query", fmt.Sprintf("sorting by %q", key),
		errors.New("column is unknown or not sortable"),
		fmt.Sprintf("Use one of: %s.", strings.Join(sortable, ", ")))
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
