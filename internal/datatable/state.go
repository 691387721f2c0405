package datatable

// State is the transient UI state of one table. Reducers below take a State
// and return the next one; none of them mutate their input.
type State struct {
	Sort      SortState
	Filter    string
	Page      int
	Selection Selection
}

// InitialState is the state a table mounts with.
func InitialState() State {
	return State{Page: 1, Selection: NewSelection()}
}

// OnSort handles a header click. The same key flips direction, a new key
// starts ascending. It never returns to unsorted; use ClearSort for that.
func OnSort(s State, key string) State {
	if key == "" {
		return s
	}
	if s.Sort.Key == key && s.Sort.Direction == SortAscending {
		s.Sort.Direction = SortDescending
		return s
	}
	s.Sort = SortState{Key: key, Direction: SortAscending}
	return s
}

// ClearSort drops the sort key.
func ClearSort(s State) State {
	s.Sort = SortState{}
	return s
}

// OnFilterChange stores new filter text and returns to page 1 whenever the text changes.
func OnFilterChange(s State, text string) State {
	if text == s.Filter {
		return s
	}
	s.Filter = text
	s.Page = 1
	return s
}

// OnPageChange moves to page, clamped to [1, totalPages].
func OnPageChange(s State, page, totalPages int) State {
	s.Page = ClampPage(page, totalPages)
	return s
}

// OnToggleSelect flips the selection of one row identity.
func OnToggleSelect(s State, id RowID) State {
	s.Selection = s.Selection.Toggle(id)
	return s
}

// OnSelectAll selects every row on the visible page.
func OnSelectAll(s State, page []Record) State {
	s.Selection = s.Selection.SelectAll(page)
	return s
}

// OnDeselectAll clears the selection of every row on the visible page.
func OnDeselectAll(s State, page []Record) State {
	s.Selection = s.Selection.DeselectAll(page)
	return s
}
