package datatable

import (
	"cmp"
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort returns records ordered by the sort column. The input is never modified.
//
// When the state is inactive, or names a column that is unknown or not
// sortable, the input is returned unchanged. Equal keys keep their input
// order and nil values sort last in both directions.
func Sort(records []Record, state SortState, columns []Column) []Record {
	if !state.Active() {
		return records
	}
	col, ok := findColumn(columns, state.Key)
	if !ok || !col.Sortable() {
		return records
	}

	out := make([]Record, len(records))
	copy(out, records)

	cmpValues := newComparator()
	descending := state.Direction == SortDescending

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Row[col.Key], out[j].Row[col.Key]
		switch {
		case isNil(a):
			return false
		case isNil(b):
			return true
		}
		c := cmpValues(a, b)
		if descending {
			c = -c
		}
		return c < 0
	})
	return out
}

// newComparator picks the comparison per value pair: numeric when both sides
// are numbers, chronological when both are times, collated strings otherwise.
// The collator is not safe for concurrent use, so each sort builds its own.
func newComparator() func(a, b any) int {
	collator := collate.New(language.English)
	return func(a, b any) int {
		if an, ok := numericValue(a); ok {
			if bn, ok := numericValue(b); ok {
				return cmp.Compare(an, bn)
			}
		}
		if at, ok := a.(time.Time); ok {
			if bt, ok := b.(time.Time); ok {
				return at.Compare(bt)
			}
		}
		return collator.CompareString(fmt.Sprint(a), fmt.Sprint(b))
	}
}
