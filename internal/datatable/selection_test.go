package datatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectionIsImmutable(t *testing.T) {
	t.Parallel()

	base := NewSelection(KeyID(1))
	next := base.With(KeyID(2))
	toggled := next.Toggle(KeyID(1))

	require.Equal(t, 1, base.Len())
	require.Equal(t, 2, next.Len())
	require.True(t, next.Has(KeyID(1)))
	require.False(t, toggled.Has(KeyID(1)))
	require.True(t, toggled.Has(KeyID(2)))
}

func TestZeroSelectionIsUsable(t *testing.T) {
	t.Parallel()

	var s Selection
	require.False(t, s.Has(KeyID(1)))
	require.Equal(t, 0, s.Len())
	require.True(t, s.Toggle(KeyID(1)).Has(KeyID(1)))
	require.Empty(t, s.IDs())
}

func TestSelectAllOnlyTouchesPage(t *testing.T) {
	t.Parallel()

	recs := Records(numberedRows(25), nil)
	page2 := Paginate(recs, 2, 10).Rows

	s := NewSelection(KeyID(1)).SelectAll(page2)
	require.Equal(t, 11, s.Len())
	require.True(t, s.Has(KeyID(1)))
	require.True(t, s.Has(KeyID(11)))
	require.True(t, s.Has(KeyID(20)))
	require.False(t, s.Has(KeyID(21)))

	s = s.DeselectAll(page2)
	require.Equal(t, []RowID{KeyID(1)}, s.IDs())
}

func TestPageCheckState(t *testing.T) {
	t.Parallel()

	page := Paginate(Records(numberedRows(3), nil), 1, 10).Rows

	require.Equal(t, CheckNone, PageCheckState(NewSelection(), page))
	require.Equal(t, CheckPartial, PageCheckState(NewSelection(KeyID(2)), page))
	require.Equal(t, CheckAll, PageCheckState(NewSelection().SelectAll(page), page))
	require.Equal(t, CheckNone, PageCheckState(NewSelection(KeyID(2)), nil))
	// identities outside the page do not count
	require.Equal(t, CheckNone, PageCheckState(NewSelection(KeyID(99)), page))
}

func TestSelectedKeepsRecordOrder(t *testing.T) {
	t.Parallel()

	recs := Records(numberedRows(5), nil)
	s := NewSelection(KeyID(4), KeyID(2))

	got := s.Selected(recs)
	require.Equal(t, []RowID{KeyID(2), KeyID(4)}, ids(got))
}

func TestSelectionIdentityStabilityProperty(t *testing.T) {
	t.Parallel()

	cols := peopleColumns()
	for seed := uint64(1); seed <= 10; seed++ {
		recs := Records(randomRows(seed, 30), nil)
		s := NewSelection(recs[3].ID, recs[7].ID, recs[20].ID, IndexID(999))
		before := ids(s.Selected(recs))

		state := InitialState()
		state.Selection = s
		state = OnSort(state, "age")
		state = OnFilterChange(state, "n1")
		state = OnSort(state, "age")
		state = OnFilterChange(state, "")
		view := Filter(Sort(recs, state.Sort, cols), state.Filter, cols)

		require.Equal(t, s.IDs(), state.Selection.IDs())
		require.ElementsMatch(t, before, ids(state.Selection.Selected(view)))
	}
}
