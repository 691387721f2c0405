package datatable

import "sort"

// Selection is an immutable set of row identities. Every mutation returns a
// new Selection and leaves the receiver untouched. The zero value is empty.
type Selection struct {
	ids map[RowID]struct{}
}

// NewSelection builds a selection containing ids.
func NewSelection(ids ...RowID) Selection {
	return Selection{}.With(ids...)
}

// Has reports membership.
func (s Selection) Has(id RowID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected identities, including rows currently hidden.
func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the identities in lexical order.
func (s Selection) IDs() []RowID {
	out := make([]RowID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// With returns a selection that also contains ids.
func (s Selection) With(ids ...RowID) Selection {
	next := s.clone(len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}
	return Selection{ids: next}
}

// Without returns a selection that no longer contains ids.
func (s Selection) Without(ids ...RowID) Selection {
	next := s.clone(0)
	for _, id := range ids {
		delete(next, id)
	}
	return Selection{ids: next}
}

// Toggle flips membership of id.
func (s Selection) Toggle(id RowID) Selection {
	if s.Has(id) {
		return s.Without(id)
	}
	return s.With(id)
}

// SelectAll adds every record on the given page. Rows on other pages are untouched.
func (s Selection) SelectAll(page []Record) Selection {
	return s.With(recordIDs(page)...)
}

// DeselectAll removes every record on the given page. Rows on other pages are untouched.
func (s Selection) DeselectAll(page []Record) Selection {
	return s.Without(recordIDs(page)...)
}

// Selected filters records down to selected ones, keeping their order.
func (s Selection) Selected(records []Record) []Record {
	out := make([]Record, 0, len(s.ids))
	for _, rec := range records {
		if s.Has(rec.ID) {
			out = append(out, rec)
		}
	}
	return out
}

func (s Selection) clone(extra int) map[RowID]struct{} {
	next := make(map[RowID]struct{}, len(s.ids)+extra)
	for id := range s.ids {
		next[id] = struct{}{}
	}
	return next
}

func recordIDs(records []Record) []RowID {
	ids := make([]RowID, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	return ids
}

// CheckState is the tri-state of a header checkbox.
type CheckState int

const (
	CheckNone CheckState = iota
	CheckPartial
	CheckAll
)

// PageCheckState reports how much of page is selected. It only inspects the
// page's own identities. An empty page is CheckNone.
func PageCheckState(s Selection, page []Record) CheckState {
	if len(page) == 0 {
		return CheckNone
	}
	selected := 0
	for _, rec := range page {
		if s.Has(rec.ID) {
			selected++
		}
	}
	switch selected {
	case 0:
		return CheckNone
	case len(page):
		return CheckAll
	default:
		return CheckPartial
	}
}
