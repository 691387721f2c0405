package tableview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
)

// RowsLoadedMsg replaces the table rows and ends the loading state.
type RowsLoadedMsg struct {
	Rows []datatable.Row
}

// LoadFailedMsg ends the loading state with an error banner.
type LoadFailedMsg struct {
	Err error
}

// ClearStatusMsg hides the status line if it is still the one set under Seq.
type ClearStatusMsg struct {
	Seq int
}

// StatusTimeout is how long informational status lines stay up. Errors stay until replaced.
const StatusTimeout = 3 * time.Second

// clearStatusCmd schedules a ClearStatusMsg for the status set under seq.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}

// Loader fetches rows off the update loop.
type Loader func() ([]datatable.Row, error)

// loadCmd runs loader and reports the outcome as a message.
func loadCmd(loader Loader) tea.Cmd {
	return func() tea.Msg {
		rows, err := loader()
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return RowsLoadedMsg{Rows: rows}
	}
}
