package datatable

import (
	"fmt"
	"strconv"
)

// Row is an opaque record mapping column keys to values.
type Row map[string]any

// RowID is the stable identity of a row across sort, filter and page changes.
type RowID string

// IdentityFunc derives a row identity from the row and its index in the original collection.
type IdentityFunc func(row Row, index int) RowID

// IDField is the row key consulted by DefaultIdentity.
const IDField = "id"

// DefaultIdentity uses the row's "id" value when present and non-nil, and its original index otherwise.
func DefaultIdentity(row Row, index int) RowID {
	if v, ok := row[IDField]; ok && !isNil(v) {
		return KeyID(v)
	}
	return IndexID(index)
}

// KeyID returns the identity DefaultIdentity assigns to a row with the given explicit id.
func KeyID(v any) RowID {
	return RowID("id:" + fmt.Sprint(v))
}

// IndexID returns the identity DefaultIdentity assigns to a row without an explicit id.
func IndexID(index int) RowID {
	return RowID("#" + strconv.Itoa(index))
}

// Record is a row paired with its position in the original collection and its identity.
type Record struct {
	Row   Row
	Index int
	ID    RowID
}

// Records wraps rows in original order. A nil identity uses DefaultIdentity.
func Records(rows []Row, identity IdentityFunc) []Record {
	if identity == nil {
		identity = DefaultIdentity
	}
	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = Record{Row: row, Index: i, ID: identity(row, i)}
	}
	return out
}

// Align controls horizontal placement of cell content.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Format selects a default number presentation for a column.
type Format string

const (
	FormatNone     Format = "none"
	FormatCurrency Format = "currency"
)

// RenderFunc produces custom cell content from the cell value and the whole row.
type RenderFunc func(value any, row Row) string

// Column describes one table column.
type Column struct {
	Key   string `validate:"required"`
	Title string
	// Width is a display hint in cells. Zero lets the renderer size the column.
	Width  int    `validate:"gte=0"`
	Align  Align  `validate:"omitempty,oneof=left center right"`
	Format Format `validate:"omitempty,oneof=none currency"`
	// DisableSort and DisableSearch opt a column out; columns are sortable and searchable by default.
	DisableSort   bool
	DisableSearch bool
	Render        RenderFunc
}

// Sortable reports whether the column accepts sort requests.
func (c Column) Sortable() bool {
	return !c.DisableSort
}

// Searchable reports whether the column participates in filtering.
func (c Column) Searchable() bool {
	return !c.DisableSearch
}

// Alignment returns the column alignment, defaulting to left.
func (c Column) Alignment() Align {
	if c.Align == "" {
		return AlignLeft
	}
	return c.Align
}

// Label returns the title, falling back to the key.
func (c Column) Label() string {
	if c.Title == "" {
		return c.Key
	}
	return c.Title
}

func findColumn(columns []Column, key string) (Column, bool) {
	for _, col := range columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column{}, false
}

// SortDirection is the ordering applied to the sort column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// SortState names the sort column and direction. The zero value means unsorted.
type SortState struct {
	Key       string
	Direction SortDirection
}

// Active reports whether a sort key and direction are both set.
func (s SortState) Active() bool {
	return s.Key != "" && s.Direction != SortNone
}
