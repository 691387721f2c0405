package datatable

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	gkerrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

// DefaultEmptyMessage is shown when no rows survive the pipeline.
const DefaultEmptyMessage = "No data available"

// Options configures a Table. The zero value is a sortable, filterable,
// paginated table with ten rows per page and selection turned off.
type Options struct {
	PageSize          int
	DisableSort       bool
	DisableFilter     bool
	DisablePagination bool
	Selectable        bool
	// Loading short-circuits View to a loading placeholder.
	Loading      bool
	EmptyMessage string
	InitialSort  SortState
	Identity     IdentityFunc
	Logger       *logger.Logger
	// OnRowClick receives the activated row and its index in the original collection.
	OnRowClick func(row Row, index int)
	// OnSelectionChange receives every selected row in original order after each selection change.
	OnSelectionChange func(selected []Row)
	// DisableCache recomputes sort and filter on every View.
	DisableCache bool
}

// Target is the part of a row that received an activation.
type Target int

const (
	TargetRow Target = iota
	TargetCheckbox
	TargetAction
)

// Table is a stateful controller over the pipeline stages. It never modifies
// the rows it is given. It is not safe for concurrent use.
type Table struct {
	id      string
	rows    []Row
	records []Record
	columns []Column
	opts    Options
	state   State
	gen     uint64
	cache   derivedCache
	log     *logger.Logger
}

// New validates the column schema and options and mounts a table with the initial state.
func New(rows []Row, columns []Column, opts Options) (*Table, error) {
	if err := ValidateColumns(columns); err != nil {
		return nil, err
	}
	if err := validatorInstance().Var(opts.PageSize, "gte=0"); err != nil {
		return nil, gkerrors.NewValidationError("options.page_size", "page size must not be negative", err)
	}
	if opts.PageSize == 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.EmptyMessage == "" {
		opts.EmptyMessage = DefaultEmptyMessage
	}

	id := uuid.NewString()
	t := &Table{
		id:      id,
		columns: append([]Column(nil), columns...),
		opts:    opts,
		state:   InitialState(),
		log:     opts.Logger.WithField("table_id", id),
	}
	if opts.InitialSort.Active() {
		t.state.Sort = opts.InitialSort
	}
	t.SetRows(rows)
	return t, nil
}

// ID returns the table instance id used in log entries.
func (t *Table) ID() string {
	return t.id
}

// Columns returns a copy of the column schema.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// State returns the current UI state.
func (t *Table) State() State {
	return t.state
}

// Records returns the rows wrapped in original order.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

// SetRows replaces the row collection. Selection is kept by identity, so rows
// that reappear with the same identity stay selected.
func (t *Table) SetRows(rows []Row) {
	t.rows = rows
	t.records = Records(rows, t.opts.Identity)
	t.gen++
	t.cache = derivedCache{}

	if dups := duplicateIDs(t.records); len(dups) > 0 {
		t.log.WithField("duplicates", dups).Warn("rows share identities; selection will treat them as one")
	}
	t.log.DebugFields("rows replaced", map[string]any{"rows": len(rows)})
}

// SetLoading toggles the loading placeholder.
func (t *Table) SetLoading(loading bool) {
	t.opts.Loading = loading
}

// Sort applies a header click for key. Unknown or unsortable columns are ignored.
func (t *Table) Sort(key string) {
	if t.opts.DisableSort {
		return
	}
	col, ok := findColumn(t.columns, key)
	if !ok || !col.Sortable() {
		return
	}
	t.state = OnSort(t.state, key)
	t.log.DebugFields("sort changed", map[string]any{"key": key, "direction": t.state.Sort.Direction.String()})
}

// ClearSort returns the table to input order.
func (t *Table) ClearSort() {
	t.state = ClearSort(t.state)
	t.log.Debug("sort cleared")
}

// SetFilter updates the filter text and returns to page 1 when it changed.
func (t *Table) SetFilter(text string) {
	if t.opts.DisableFilter {
		return
	}
	t.state = OnFilterChange(t.state, text)
	t.log.DebugFields("filter changed", map[string]any{"filter": text, "page": t.state.Page})
}

// SetPage moves to page, clamped to the available pages.
func (t *Table) SetPage(page int) {
	total := TotalPages(len(t.derived()), t.pageSize())
	t.state = OnPageChange(t.state, page, total)
	t.log.DebugFields("page changed", map[string]any{"requested": page, "page": t.state.Page, "total_pages": total})
}

// NextPage advances one page, stopping at the last.
func (t *Table) NextPage() {
	t.SetPage(t.state.Page + 1)
}

// PrevPage goes back one page, stopping at the first.
func (t *Table) PrevPage() {
	t.SetPage(t.state.Page - 1)
}

// ToggleRow flips the selection of one row by identity.
func (t *Table) ToggleRow(id RowID) {
	if !t.opts.Selectable {
		return
	}
	t.state = OnToggleSelect(t.state, id)
	t.selectionChanged("row toggled")
}

// SelectPage selects every row on the visible page.
func (t *Table) SelectPage() {
	if !t.opts.Selectable || t.opts.Loading {
		return
	}
	t.state = OnSelectAll(t.state, t.currentPage().Rows)
	t.selectionChanged("page selected")
}

// DeselectPage clears every row on the visible page.
func (t *Table) DeselectPage() {
	if !t.opts.Selectable || t.opts.Loading {
		return
	}
	t.state = OnDeselectAll(t.state, t.currentPage().Rows)
	t.selectionChanged("page deselected")
}

// TogglePage behaves like a header checkbox: a fully selected page is
// cleared, anything else becomes fully selected.
func (t *Table) TogglePage() {
	if PageCheckState(t.state.Selection, t.currentPage().Rows) == CheckAll {
		t.DeselectPage()
		return
	}
	t.SelectPage()
}

// Activate handles a click or Enter/Space on the row at pos within the
// visible page. Checkbox targets toggle selection; action targets are left
// to the control itself. OnRowClick fires only for TargetRow and the return
// value reports whether it did.
func (t *Table) Activate(pos int, target Target) bool {
	rows := t.currentPage().Rows
	if pos < 0 || pos >= len(rows) {
		return false
	}
	rec := rows[pos]
	switch target {
	case TargetCheckbox:
		t.ToggleRow(rec.ID)
		return false
	case TargetAction:
		return false
	}
	if t.opts.OnRowClick == nil {
		return false
	}
	t.opts.OnRowClick(rec.Row, rec.Index)
	return true
}

// SelectedRows returns selected rows present in the collection, in original order.
func (t *Table) SelectedRows() []Row {
	selected := t.state.Selection.Selected(t.records)
	out := make([]Row, len(selected))
	for i, rec := range selected {
		out[i] = rec.Row
	}
	return out
}

// IsSelected reports whether the row identity is selected.
func (t *Table) IsSelected(id RowID) bool {
	return t.state.Selection.Has(id)
}

func (t *Table) selectionChanged(msg string) {
	t.log.DebugFields(msg, map[string]any{"selected": t.state.Selection.Len()})
	if t.opts.OnSelectionChange != nil {
		t.opts.OnSelectionChange(t.SelectedRows())
	}
}

func (t *Table) pageSize() int {
	return t.opts.PageSize
}

// effectiveSort and effectiveFilter ignore state for disabled features.
func (t *Table) effectiveSort() SortState {
	if t.opts.DisableSort {
		return SortState{}
	}
	return t.state.Sort
}

func (t *Table) effectiveFilter() string {
	if t.opts.DisableFilter {
		return ""
	}
	return t.state.Filter
}

// derived returns sorted then filtered records, memoized per rows generation, sort and filter.
func (t *Table) derived() []Record {
	key := cacheKey{gen: t.gen, sort: t.effectiveSort(), filter: t.effectiveFilter()}
	if !t.opts.DisableCache {
		if recs, ok := t.cache.lookup(key); ok {
			return recs
		}
	}
	recs := Filter(Sort(t.records, key.sort, t.columns), key.filter, t.columns)
	if !t.opts.DisableCache {
		t.cache.store(key, recs)
	}
	return recs
}

// currentPage paginates the derived records. A page left out of range by a
// shrinking result set resets the table to page 1. Nothing is visible while
// loading.
func (t *Table) currentPage() Page {
	if t.opts.Loading {
		return Page{}
	}
	recs := t.derived()
	if t.opts.DisablePagination {
		size := len(recs)
		if size == 0 {
			size = 1
		}
		return Paginate(recs, 1, size)
	}
	page := Paginate(recs, t.state.Page, t.pageSize())
	if page.IsEmpty() && page.TotalItems > 0 && t.state.Page != 1 {
		t.log.DebugFields("page out of range, resetting", map[string]any{"page": t.state.Page, "total_pages": page.TotalPages})
		t.state.Page = 1
		page = Paginate(recs, 1, t.pageSize())
	}
	return page
}

func duplicateIDs(records []Record) []RowID {
	seen := make(map[RowID]bool, len(records))
	var dups []RowID
	for _, rec := range records {
		if reported, ok := seen[rec.ID]; ok {
			if !reported {
				dups = append(dups, rec.ID)
				seen[rec.ID] = true
			}
			continue
		}
		seen[rec.ID] = false
	}
	return dups
}
