package config

import (
	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
)

// Column value types understood by the loader.
const (
	TypeAuto   = "auto"
	TypeString = "string"
	TypeNumber = "number"
	TypeDate   = "date"
)

// Dataset is a YAML document holding a column schema, rows and table options.
type Dataset struct {
	Version string          `yaml:"version" validate:"required,semver"`
	Title   string          `yaml:"title,omitempty" validate:"max=200"`
	Table   TableSettings   `yaml:"table,omitempty"`
	Columns []ColumnSpec    `yaml:"columns" validate:"required,min=1,dive"`
	Rows    []datatable.Row `yaml:"rows,omitempty"`
}

// TableSettings maps onto datatable.Options.
type TableSettings struct {
	PageSize          int       `yaml:"page_size,omitempty" validate:"omitempty,min=1,max=1000"`
	Selectable        bool      `yaml:"selectable,omitempty"`
	DisableSort       bool      `yaml:"disable_sort,omitempty"`
	DisableFilter     bool      `yaml:"disable_filter,omitempty"`
	DisablePagination bool      `yaml:"disable_pagination,omitempty"`
	EmptyMessage      string    `yaml:"empty_message,omitempty"`
	Sort              *SortSpec `yaml:"sort,omitempty"`
}

// SortSpec is an initial sort.
type SortSpec struct {
	Key       string `yaml:"key" validate:"required,column_key"`
	Direction string `yaml:"direction,omitempty" validate:"omitempty,oneof=asc desc"`
}

// ColumnSpec describes one column. Sortable and Searchable default to true
// when omitted.
type ColumnSpec struct {
	Key        string `yaml:"key" validate:"required,column_key"`
	Title      string `yaml:"title,omitempty"`
	Width      int    `yaml:"width,omitempty" validate:"gte=0,lte=200"`
	Align      string `yaml:"align,omitempty" validate:"omitempty,oneof=left center right"`
	Format     string `yaml:"format,omitempty" validate:"omitempty,oneof=none currency"`
	Type       string `yaml:"type,omitempty" validate:"omitempty,oneof=auto string number date"`
	Sortable   *bool  `yaml:"sortable,omitempty"`
	Searchable *bool  `yaml:"searchable,omitempty"`
}

// Column converts the YAML column to a datatable column.
func (c ColumnSpec) Column() datatable.Column {
	return datatable.Column{
		Key:           c.Key,
		Title:         c.Title,
		Width:         c.Width,
		Align:         datatable.Align(c.Align),
		Format:        datatable.Format(c.Format),
		DisableSort:   c.Sortable != nil && !*c.Sortable,
		DisableSearch: c.Searchable != nil && !*c.Searchable,
	}
}

// ValueType returns the declared type, defaulting to auto.
func (c ColumnSpec) ValueType() string {
	if c.Type == "" {
		return TypeAuto
	}
	return c.Type
}

// DataColumns returns the datatable schema for the dataset.
func (d *Dataset) DataColumns() []datatable.Column {
	cols := make([]datatable.Column, len(d.Columns))
	for i, spec := range d.Columns {
		cols[i] = spec.Column()
	}
	return cols
}

// Options returns table options from the dataset settings. Callbacks and
// logger are left for the caller.
func (d *Dataset) Options() datatable.Options {
	opts := datatable.Options{
		PageSize:          d.Table.PageSize,
		Selectable:        d.Table.Selectable,
		DisableSort:       d.Table.DisableSort,
		DisableFilter:     d.Table.DisableFilter,
		DisablePagination: d.Table.DisablePagination,
		EmptyMessage:      d.Table.EmptyMessage,
	}
	if s := d.Table.Sort; s != nil {
		direction := datatable.SortAscending
		if s.Direction == "desc" {
			direction = datatable.SortDescending
		}
		opts.InitialSort = datatable.SortState{Key: s.Key, Direction: direction}
	}
	return opts
}
