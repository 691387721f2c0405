package datatable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFilterMatchesCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	got := Filter(Records(peopleRows(), nil), "b", peopleColumns())

	require.Len(t, got, 1)
	require.Equal(t, KeyID(1), got[0].ID)
}

func TestFilterBlankTextReturnsInput(t *testing.T) {
	t.Parallel()

	recs := Records(peopleRows(), nil)
	for _, text := range []string{"", "   ", "\t\n"} {
		require.Equal(t, ids(recs), ids(Filter(recs, text, peopleColumns())))
	}
}

func TestFilterTrimsAndLowercasesText(t *testing.T) {
	t.Parallel()

	got := Filter(Records(peopleRows(), nil), "  AMY ", peopleColumns())
	require.Equal(t, []string{"Amy"}, names(got))
}

func TestFilterSkipsUnsearchableColumns(t *testing.T) {
	t.Parallel()

	// "1" only appears in the id column, which is not searchable.
	got := Filter(Records(peopleRows(), nil), "1", peopleColumns())
	require.Empty(t, got)
}

func TestFilterStringifiesNumbersAndDates(t *testing.T) {
	t.Parallel()

	cols := []Column{{Key: "spend"}, {Key: "joined"}}
	rows := []Row{
		{"spend": 12.75, "joined": time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{"spend": 300, "joined": time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}

	require.Len(t, Filter(Records(rows, nil), "2.7", cols), 1)
	require.Len(t, Filter(Records(rows, nil), "1/2/2024", cols), 1)
	require.Len(t, Filter(Records(rows, nil), "300", cols), 1)
	require.Len(t, Filter(Records(rows, nil), "2023", cols), 1)
}

func TestFilterNilNeverMatches(t *testing.T) {
	t.Parallel()

	cols := []Column{{Key: "note"}}
	rows := []Row{{"note": nil}, {}}

	require.Empty(t, Filter(Records(rows, nil), "nil", cols))
	require.Empty(t, Filter(Records(rows, nil), "<nil>", cols))
}

func TestFilterTypedNilNeverMatches(t *testing.T) {
	t.Parallel()

	var note *string
	cols := []Column{{Key: "note"}}
	rows := []Row{{"note": note}, {"note": map[string]int(nil)}}

	require.Empty(t, Filter(Records(rows, nil), "nil", cols))
	require.Empty(t, Filter(Records(rows, nil), "map", cols))
}

func TestFilterMonotonicityProperty(t *testing.T) {
	t.Parallel()

	cols := peopleColumns()
	for seed := uint64(1); seed <= 10; seed++ {
		recs := Records(randomRows(seed, 40), nil)
		for _, text := range []string{"n", "n1", "3", "zz", "N5"} {
			got := Filter(recs, text, cols)
			require.LessOrEqual(t, len(got), len(recs))
			for _, rec := range got {
				require.True(t, Matches(rec.Row, text, cols), "row %v should match %q", rec.Row, text)
			}
		}
	}
}
