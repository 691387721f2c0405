package tableview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ctx = m.ctx.WithMaxWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		return m.handleTableKeys(msg)

	case spinner.TickMsg:
		if !m.table.View().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RowsLoadedMsg:
		m.table.SetRows(msg.Rows)
		m.table.SetLoading(false)
		m.cursor = 0
		cmd := m.setStatus(fmt.Sprintf("Loaded %d rows", len(msg.Rows)), false)
		return m, cmd

	case LoadFailedMsg:
		m.table.SetLoading(false)
		m.log.Error(msg.Err, "row loader failed")
		m.setStatus(fmt.Sprintf("Failed to load rows: %v", msg.Err), true)
		return m, nil

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.isError = false
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.searchKeys.Accept):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.searchKeys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.table.State().Filter {
		m.applyFilter()
	}
	return m, cmd
}

func (m Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.table.View().Rows)

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursorUp(rows)

	case key.Matches(msg, m.keys.Down):
		m.moveCursorDown(rows)

	case key.Matches(msg, m.keys.PrevPage):
		m.table.PrevPage()
		m.cursor = 0

	case key.Matches(msg, m.keys.NextPage):
		m.table.NextPage()
		m.cursor = 0

	case key.Matches(msg, m.keys.NextColumn):
		m.columns.Next()

	case key.Matches(msg, m.keys.PrevColumn):
		m.columns.Prev()

	case key.Matches(msg, m.keys.Sort):
		if col := m.FocusedColumn(); col != "" {
			m.table.Sort(col)
			sortState := m.table.State().Sort
			cmd = m.setStatus(fmt.Sprintf("Sorted by %s (%s)", col, sortState.Direction), false)
		}

	case key.Matches(msg, m.keys.ClearSort):
		m.table.ClearSort()
		cmd = m.setStatus("Sort cleared", false)

	case key.Matches(msg, m.keys.Search):
		if !m.table.View().ShowSearch {
			return m, nil
		}
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Clear):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyFilter()
		}

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.cursorRow(); ok {
			m.table.ToggleRow(row.Record.ID)
		}

	case key.Matches(msg, m.keys.TogglePage):
		m.table.TogglePage()

	case key.Matches(msg, m.keys.Activate):
		if row, ok := m.cursorRow(); ok && m.table.Activate(m.cursor, datatable.TargetRow) {
			cmd = m.setStatus(fmt.Sprintf("Opened row %d", row.Record.Index+1), false)
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.clampCursor()
	return m, cmd
}

func (m *Model) applyFilter() {
	m.table.SetFilter(m.search.Value())
	m.cursor = 0
	m.log.DebugFields("filter applied", map[string]any{"filter": m.search.Value()})
}

func (m *Model) cursorRow() (datatable.ViewRow, bool) {
	rows := m.table.View().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return datatable.ViewRow{}, false
	}
	return rows[m.cursor], true
}

// setStatus shows status and, unless it is an error, schedules its removal.
func (m *Model) setStatus(status string, isError bool) tea.Cmd {
	m.statusSeq++
	m.status = status
	m.isError = isError
	if isError {
		return nil
	}
	return clearStatusCmd(m.statusSeq)
}
