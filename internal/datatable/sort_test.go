package datatable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByAgeAscendingIsStable(t *testing.T) {
	t.Parallel()

	recs := Records(peopleRows(), nil)
	sorted := Sort(recs, SortState{Key: "age", Direction: SortAscending}, peopleColumns())

	require.Equal(t, []string{"Amy", "Cid", "Bob"}, names(sorted))
}

func TestSortDescendingKeepsTieOrder(t *testing.T) {
	t.Parallel()

	recs := Records(peopleRows(), nil)
	sorted := Sort(recs, SortState{Key: "age", Direction: SortDescending}, peopleColumns())

	require.Equal(t, []string{"Bob", "Amy", "Cid"}, names(sorted))
}

func TestSortPassthrough(t *testing.T) {
	t.Parallel()

	cols := append(peopleColumns(), Column{Key: "notes", DisableSort: true})
	recs := Records(peopleRows(), nil)

	cases := []struct {
		name  string
		state SortState
	}{
		{name: "no key", state: SortState{}},
		{name: "key without direction", state: SortState{Key: "age"}},
		{name: "unknown column", state: SortState{Key: "missing", Direction: SortAscending}},
		{name: "unsortable column", state: SortState{Key: "notes", Direction: SortAscending}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, ids(recs), ids(Sort(recs, tc.state, cols)))
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	recs := Records(peopleRows(), nil)
	before := ids(recs)
	_ = Sort(recs, SortState{Key: "name", Direction: SortAscending}, peopleColumns())

	require.Equal(t, before, ids(recs))
}

func TestSortNilsLastInBothDirections(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{"id": 1, "age": nil},
		{"id": 2, "age": 5},
		{"id": 3},
		{"id": 4, "age": 1},
	}
	for _, dir := range []SortDirection{SortAscending, SortDescending} {
		sorted := Sort(Records(rows, nil), SortState{Key: "age", Direction: dir}, peopleColumns())
		require.Len(t, sorted, 4)
		assert.NotNil(t, sorted[0].Row["age"], dir.String())
		assert.NotNil(t, sorted[1].Row["age"], dir.String())
		assert.Nil(t, sorted[2].Row["age"], dir.String())
		assert.Nil(t, sorted[3].Row["age"], dir.String())
		// nils keep input order among themselves
		assert.Equal(t, []RowID{KeyID(1), KeyID(3)}, ids(sorted[2:]), dir.String())
	}
}

func TestSortTypedNilsSortLast(t *testing.T) {
	t.Parallel()

	var missing *string
	rows := []Row{
		{"id": 1, "age": 2.0},
		{"id": 2, "age": missing},
		{"id": 3, "age": []int(nil)},
		{"id": 4, "age": 1.0},
	}
	for _, dir := range []SortDirection{SortAscending, SortDescending} {
		sorted := Sort(Records(rows, nil), SortState{Key: "age", Direction: dir}, peopleColumns())
		assert.Equal(t, []RowID{KeyID(2), KeyID(3)}, ids(sorted[2:]), dir.String())
	}
}

func TestSortComparesNumbersNumerically(t *testing.T) {
	t.Parallel()

	rows := []Row{{"v": 10}, {"v": 9.5}, {"v": int64(100)}, {"v": uint8(2)}}
	cols := []Column{{Key: "v"}}
	sorted := Sort(Records(rows, nil), SortState{Key: "v", Direction: SortAscending}, cols)

	var got []any
	for _, rec := range sorted {
		got = append(got, rec.Row["v"])
	}
	require.Equal(t, []any{uint8(2), 9.5, 10, int64(100)}, got)
}

func TestSortComparesDates(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	rows := []Row{{"d": day(3)}, {"d": day(1)}, {"d": day(2)}}
	cols := []Column{{Key: "d"}}

	sorted := Sort(Records(rows, nil), SortState{Key: "d", Direction: SortDescending}, cols)
	require.Equal(t, []int{0, 2, 1}, []int{sorted[0].Index, sorted[1].Index, sorted[2].Index})
}

func TestSortMixedTypesFallsBackToStrings(t *testing.T) {
	t.Parallel()

	rows := []Row{{"v": "b"}, {"v": 1}, {"v": nil}, {"v": "a"}}
	cols := []Column{{Key: "v"}}

	require.NotPanics(t, func() {
		sorted := Sort(Records(rows, nil), SortState{Key: "v", Direction: SortAscending}, cols)
		require.Equal(t, []int{1, 3, 0, 2}, []int{sorted[0].Index, sorted[1].Index, sorted[2].Index, sorted[3].Index})
	})
}

func TestSortStringsIgnoreCaseFirst(t *testing.T) {
	t.Parallel()

	rows := []Row{{"name": "bob"}, {"name": "Amy"}, {"name": "cid"}}
	sorted := Sort(Records(rows, nil), SortState{Key: "name", Direction: SortAscending}, peopleColumns())

	require.Equal(t, []string{"Amy", "bob", "cid"}, names(sorted))
}

func TestSortStabilityProperty(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 20; seed++ {
		recs := Records(randomRows(seed, 60), nil)
		for _, dir := range []SortDirection{SortAscending, SortDescending} {
			sorted := Sort(recs, SortState{Key: "age", Direction: dir}, peopleColumns())
			require.Len(t, sorted, len(recs))

			seenNil := false
			for i := 1; i < len(sorted); i++ {
				prev, cur := sorted[i-1], sorted[i]
				if prev.Row["age"] == nil {
					seenNil = true
				}
				if seenNil {
					require.Nil(t, cur.Row["age"], "defined value after nil (seed %d)", seed)
				}
				if prev.Row["age"] == cur.Row["age"] {
					require.Less(t, prev.Index, cur.Index, "tie order broken (seed %d)", seed)
				}
			}
		}
	}
}
