package datatable

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	gkerrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

func newTable(t *testing.T, rows []Row, opts Options) *Table {
	t.Helper()
	table, err := New(rows, peopleColumns(), opts)
	require.NoError(t, err)
	return table
}

func viewIDs(v View) []RowID {
	out := make([]RowID, len(v.Rows))
	for i, row := range v.Rows {
		out[i] = row.Record.ID
	}
	return out
}

func TestNewRejectsBrokenSchema(t *testing.T) {
	t.Parallel()

	_, err := New(peopleRows(), []Column{{Title: "No key"}}, Options{})
	var validationErr *gkerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = New(peopleRows(), peopleColumns(), Options{PageSize: -1})
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "options.page_size", validationErr.Field)
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	table := newTable(t, nil, Options{})
	v := table.View()

	require.Equal(t, DefaultPageSize, v.PageSize)
	require.Equal(t, DefaultEmptyMessage, v.EmptyMessage)
	require.NotEmpty(t, table.ID())
	require.Equal(t, 1, table.State().Page)
}

func TestTableSortScenario(t *testing.T) {
	t.Parallel()

	table := newTable(t, peopleRows(), Options{})
	table.Sort("age")

	v := table.View()
	require.Equal(t, []RowID{KeyID(2), KeyID(3), KeyID(1)}, viewIDs(v))
	require.Equal(t, SortAscending, v.Headers[2].Direction)
	require.Equal(t, SortNone, v.Headers[1].Direction)
	require.Equal(t, []string{"2", "Amy", "25"}, v.Rows[0].Cells)
}

func TestTableFilterScenario(t *testing.T) {
	t.Parallel()

	table := newTable(t, peopleRows(), Options{})
	table.SetFilter("b")

	require.Equal(t, []RowID{KeyID(1)}, viewIDs(table.View()))
}

func TestTablePageScenario(t *testing.T) {
	t.Parallel()

	table := newTable(t, numberedRows(25), Options{PageSize: 10})
	table.SetPage(3)

	v := table.View()
	require.Equal(t, 3, v.Page)
	require.Equal(t, 3, v.TotalPages)
	require.Len(t, v.Rows, 5)
	require.Equal(t, KeyID(21), v.Rows[0].Record.ID)
	require.True(t, v.ShowPagination)
}

func TestTableSelectionSurvivesFilterRoundTrip(t *testing.T) {
	t.Parallel()

	table := newTable(t, numberedRows(15), Options{Selectable: true})
	table.ToggleRow(KeyID(2))

	table.SetFilter("row 1")
	v := table.View()
	assert.NotContains(t, viewIDs(v), KeyID(2))
	assert.True(t, table.IsSelected(KeyID(2)))

	table.SetFilter("")
	v = table.View()
	require.Equal(t, KeyID(2), v.Rows[1].Record.ID)
	require.True(t, v.Rows[1].Selected)
	require.Equal(t, 1, v.SelectedCount)
}

func TestTableFilterChangeResetsPageScenario(t *testing.T) {
	t.Parallel()

	table := newTable(t, numberedRows(25), Options{PageSize: 10})
	table.SetFilter("row")
	table.SetPage(2)
	require.Equal(t, 2, table.State().Page)

	table.SetFilter("row 1")
	require.Equal(t, 1, table.State().Page)
}

func TestTableCustomRenderScenario(t *testing.T) {
	t.Parallel()

	cols := []Column{
		{Key: "name"},
		{Key: "status", Format: FormatCurrency, Render: func(value any, row Row) string {
			return "<" + value.(string) + ">"
		}},
	}
	table, err := New([]Row{{"name": "Amy", "status": "active"}}, cols, Options{})
	require.NoError(t, err)

	require.Equal(t, "<active>", table.View().Rows[0].Cells[1])
}

func TestTableSortToggleAndClear(t *testing.T) {
	t.Parallel()

	table := newTable(t, peopleRows(), Options{})
	table.Sort("age")
	table.Sort("age")
	require.Equal(t, []RowID{KeyID(1), KeyID(2), KeyID(3)}, viewIDs(table.View()))

	table.Sort("unknown")
	require.Equal(t, SortState{Key: "age", Direction: SortDescending}, table.State().Sort)

	table.ClearSort()
	require.False(t, table.State().Sort.Active())
}

func TestTableDisabledFeatures(t *testing.T) {
	t.Parallel()

	table := newTable(t, numberedRows(25), Options{DisableSort: true, DisableFilter: true, DisablePagination: true})
	table.Sort("age")
	table.SetFilter("row 01")

	v := table.View()
	require.False(t, table.State().Sort.Active())
	require.Empty(t, table.State().Filter)
	require.Len(t, v.Rows, 25)
	require.False(t, v.ShowPagination)
	require.False(t, v.ShowSearch)
	for _, h := range v.Headers {
		require.False(t, h.Sortable)
	}
}

func TestTableSelectionRequiresSelectable(t *testing.T) {
	t.Parallel()

	table := newTable(t, peopleRows(), Options{})
	table.ToggleRow(KeyID(1))
	table.SelectPage()

	require.Equal(t, 0, table.State().Selection.Len())
	require.Equal(t, CheckNone, table.View().HeaderCheck)
}

func TestTableTogglePageTracksHeaderCheck(t *testing.T) {
	t.Parallel()

	table := newTable(t, numberedRows(25), Options{Selectable: true})
	table.ToggleRow(KeyID(3))
	require.Equal(t, CheckPartial, table.View().HeaderCheck)

	table.TogglePage()
	require.Equal(t, CheckAll, table.View().HeaderCheck)
	require.Equal(t, 10, table.State().Selection.Len())

	table.NextPage()
	require.Equal(t, CheckNone, table.View().HeaderCheck)

	table.PrevPage()
	table.TogglePage()
	require.Equal(t, CheckNone, table.View().HeaderCheck)
	require.Equal(t, 0, table.State().Selection.Len())
}

func TestTableSelectionChangeReportsOriginalOrder(t *testing.T) {
	t.Parallel()

	var calls [][]Row
	table := newTable(t, numberedRows(5), Options{
		Selectable:        true,
		OnSelectionChange: func(selected []Row) { calls = append(calls, selected) },
	})
	table.Sort("name")
	table.Sort("name")
	table.ToggleRow(KeyID(4))
	table.ToggleRow(KeyID(2))
	table.ToggleRow(KeyID(4))

	require.Len(t, calls, 3)
	require.Len(t, calls[1], 2)
	require.Equal(t, 2, calls[1][0]["id"])
	require.Equal(t, 4, calls[1][1]["id"])
	require.Len(t, calls[2], 1)
	require.Equal(t, 2, calls[2][0]["id"])
}

func TestTableActivate(t *testing.T) {
	t.Parallel()

	type click struct {
		row   Row
		index int
	}
	var clicks []click
	table := newTable(t, peopleRows(), Options{
		Selectable: true,
		OnRowClick: func(row Row, index int) { clicks = append(clicks, click{row, index}) },
	})
	table.Sort("age")

	require.True(t, table.Activate(0, TargetRow))
	require.Len(t, clicks, 1)
	require.Equal(t, "Amy", clicks[0].row["name"])
	require.Equal(t, 1, clicks[0].index)

	require.False(t, table.Activate(2, TargetCheckbox))
	require.Len(t, clicks, 1)
	require.True(t, table.IsSelected(KeyID(1)))

	require.False(t, table.Activate(1, TargetAction))
	require.False(t, table.Activate(7, TargetRow))
	require.Len(t, clicks, 1)
}

func TestTableLoadingShortCircuits(t *testing.T) {
	t.Parallel()

	table := newTable(t, peopleRows(), Options{Loading: true})
	v := table.View()
	require.True(t, v.Loading)
	require.Empty(t, v.Rows)
	require.Len(t, v.Headers, 3)

	table.SetLoading(false)
	require.Len(t, table.View().Rows, 3)
}

func TestTableLoadingIgnoresPageActions(t *testing.T) {
	t.Parallel()

	var selectionCalls, clicks int
	table := newTable(t, numberedRows(5), Options{
		Selectable:        true,
		Loading:           true,
		OnSelectionChange: func([]Row) { selectionCalls++ },
		OnRowClick:        func(Row, int) { clicks++ },
	})

	table.SelectPage()
	table.TogglePage()
	table.DeselectPage()
	assert.False(t, table.Activate(0, TargetRow))
	assert.False(t, table.Activate(0, TargetCheckbox))

	assert.Empty(t, table.SelectedRows())
	assert.Zero(t, selectionCalls)
	assert.Zero(t, clicks)

	table.SetLoading(false)
	table.SelectPage()
	assert.Len(t, table.SelectedRows(), 5)
	assert.Equal(t, 1, selectionCalls)
}

func TestTableEmptyState(t *testing.T) {
	t.Parallel()

	table := newTable(t, peopleRows(), Options{EmptyMessage: "Nobody here"})
	table.SetFilter("zzz")

	v := table.View()
	require.True(t, v.Empty)
	require.Equal(t, "Nobody here", v.EmptyMessage)
	require.Equal(t, 0, v.TotalPages)
	require.False(t, v.ShowPagination)

	table.SetPage(4)
	require.Equal(t, 1, table.State().Page)
}

func TestTableResetsPageWhenRowsShrink(t *testing.T) {
	t.Parallel()

	table := newTable(t, numberedRows(25), Options{})
	table.SetPage(3)
	table.SetRows(numberedRows(5))

	v := table.View()
	require.Equal(t, 1, v.Page)
	require.Equal(t, 1, table.State().Page)
	require.Len(t, v.Rows, 5)
}

func TestTableKeepsSelectionAcrossSetRows(t *testing.T) {
	t.Parallel()

	table := newTable(t, numberedRows(5), Options{Selectable: true})
	table.ToggleRow(KeyID(5))
	table.SetRows(numberedRows(3))
	require.Empty(t, table.SelectedRows())

	table.SetRows(numberedRows(6))
	require.Len(t, table.SelectedRows(), 1)
	require.Equal(t, 5, table.SelectedRows()[0]["id"])
}

func TestTablePositionalIdentity(t *testing.T) {
	t.Parallel()

	rows := []Row{{"name": "b"}, {"name": "a"}}
	table := newTable(t, rows, Options{Selectable: true})
	table.Sort("name")
	table.Activate(0, TargetCheckbox)

	require.True(t, table.IsSelected(IndexID(1)))
	require.Equal(t, "a", table.SelectedRows()[0]["name"])
}

func TestDefaultIdentityTypedNilFallsBackToIndex(t *testing.T) {
	t.Parallel()

	var id *int
	require.Equal(t, IndexID(4), DefaultIdentity(Row{"id": id}, 4))
	require.Equal(t, KeyID(7), DefaultIdentity(Row{"id": 7}, 4))
}

func TestTableCachedAndUncachedAgree(t *testing.T) {
	t.Parallel()

	cached := newTable(t, randomRows(7, 50), Options{Selectable: true})
	uncached := newTable(t, randomRows(7, 50), Options{Selectable: true, DisableCache: true})

	steps := []func(*Table){
		func(tb *Table) { tb.Sort("age") },
		func(tb *Table) { tb.SetFilter("n1") },
		func(tb *Table) { tb.NextPage() },
		func(tb *Table) { tb.Sort("age") },
		func(tb *Table) { tb.SelectPage() },
		func(tb *Table) { tb.SetFilter("") },
		func(tb *Table) { tb.SetPage(3) },
	}
	for i, step := range steps {
		step(cached)
		step(uncached)
		require.Equal(t, viewIDs(uncached.View()), viewIDs(cached.View()), "step %d", i)
	}
}

func TestTableDoesNotMutateRows(t *testing.T) {
	t.Parallel()

	rows := peopleRows()
	table := newTable(t, rows, Options{Selectable: true})
	table.Sort("name")
	table.SetFilter("a")
	table.SelectPage()
	_ = table.View()

	require.Equal(t, peopleRows(), rows)
}

func TestTableLogsWithTableID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	table := newTable(t, []Row{{"id": 1}, {"id": 1}}, Options{Logger: log})
	table.Sort("age")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	var warn map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	require.Equal(t, "warn", warn["level"])
	require.Equal(t, table.ID(), warn["table_id"])

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	require.Equal(t, "sort changed", last["message"])
	require.Equal(t, "asc", last["direction"])
}
