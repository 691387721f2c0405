package datatable

// Header is the derived state of one column header.
type Header struct {
	Column    Column
	Sortable  bool
	Direction SortDirection
}

// ViewRow is one visible row with its rendered cells.
type ViewRow struct {
	Record   Record
	Cells    []string
	Selected bool
}

// View is everything a renderer needs for one frame.
type View struct {
	Loading      bool
	Empty        bool
	EmptyMessage string

	Headers []Header
	Rows    []ViewRow

	Filter     string
	Sort       SortState
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int

	// ShowPagination is false when pagination is disabled or there are no pages.
	ShowPagination bool
	ShowSearch     bool
	Selectable     bool
	HeaderCheck    CheckState
	SelectedCount  int
}

// View derives the current frame. Loading tables skip the pipeline entirely.
func (t *Table) View() View {
	v := View{
		Loading:      t.opts.Loading,
		EmptyMessage: t.opts.EmptyMessage,
		Headers:      t.headers(),
		Filter:       t.state.Filter,
		Sort:         t.effectiveSort(),
		ShowSearch:   !t.opts.DisableFilter,
		Selectable:   t.opts.Selectable,
	}
	if v.Loading {
		return v
	}

	page := t.currentPage()
	v.Page = page.Number
	v.PageSize = page.Size
	v.TotalPages = page.TotalPages
	v.TotalItems = page.TotalItems
	v.Empty = page.TotalItems == 0
	v.ShowPagination = !t.opts.DisablePagination && page.TotalPages > 0
	v.SelectedCount = len(t.state.Selection.Selected(t.records))

	v.Rows = make([]ViewRow, len(page.Rows))
	for i, rec := range page.Rows {
		cells := make([]string, len(t.columns))
		for c, col := range t.columns {
			cells[c] = RenderCell(rec.Row, col)
		}
		v.Rows[i] = ViewRow{Record: rec, Cells: cells, Selected: t.state.Selection.Has(rec.ID)}
	}
	if t.opts.Selectable {
		v.HeaderCheck = PageCheckState(t.state.Selection, page.Rows)
	}
	return v
}

func (t *Table) headers() []Header {
	sortState := t.effectiveSort()
	headers := make([]Header, len(t.columns))
	for i, col := range t.columns {
		h := Header{Column: col, Sortable: !t.opts.DisableSort && col.Sortable()}
		if sortState.Active() && sortState.Key == col.Key {
			h.Direction = sortState.Direction
		}
		headers[i] = h
	}
	return headers
}
