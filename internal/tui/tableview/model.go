package tableview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	"github.com/alexisbeaulieu97/gridkit/internal/ui/components"
	"github.com/alexisbeaulieu97/gridkit/internal/ui/state"
)

// Model is the interactive table screen. The wrapped Table is shared by
// pointer, so copies of Model observe the same table state.
type Model struct {
	table  *datatable.Table
	title  string
	loader Loader
	log    *logger.Logger

	keys       keyMap
	searchKeys searchKeys
	help       help.Model
	search     textinput.Model
	spinner    spinner.Model
	position   pagePosition
	columns    *state.Select

	cursor    int
	searching bool
	status    string
	statusSeq int
	isError   bool
	width     int
	height    int
	quitting  bool
	ctx       components.RenderContext
}

// Option configures a Model.
type Option func(*Model)

// WithTitle sets the heading shown above the table.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// WithLoader loads rows asynchronously on Init. The table is marked loading
// until the rows arrive.
func WithLoader(loader Loader) Option {
	return func(m *Model) { m.loader = loader }
}

// WithLogger attaches a logger for key handling diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithRenderContext overrides the theme and glyph set.
func WithRenderContext(ctx components.RenderContext) Option {
	return func(m *Model) { m.ctx = ctx }
}

// NewModel creates the table screen.
func NewModel(table *datatable.Table, opts ...Option) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = components.DefaultSearchPlaceholder
	search.SetValue(table.State().Filter)

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		table:      table,
		keys:       defaultKeyMap(),
		searchKeys: defaultSearchKeys(),
		help:       help.New(),
		search:     search,
		spinner:    s,
		position:   newPagePosition(20),
		columns:    columnSelect(table.View().Headers),
		ctx:        components.DefaultContext(),
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.loader != nil {
		table.SetLoading(true)
	}
	return m
}

// Init starts the loader and spinner when rows are pending.
func (m Model) Init() tea.Cmd {
	if m.loader != nil {
		return tea.Batch(m.spinner.Tick, loadCmd(m.loader))
	}
	if m.table.View().Loading {
		return m.spinner.Tick
	}
	return nil
}

// Table returns the wrapped table.
func (m Model) Table() *datatable.Table {
	return m.table
}

// Cursor returns the highlighted row position within the page.
func (m Model) Cursor() int {
	return m.cursor
}

// Searching reports whether the search box has focus.
func (m Model) Searching() bool {
	return m.searching
}

// FocusedColumn returns the key of the column sort acts on.
func (m Model) FocusedColumn() string {
	if opt, ok := m.columns.Highlighted(); ok {
		return opt.Value
	}
	return ""
}

func columnSelect(headers []datatable.Header) *state.Select {
	opts := make([]state.Option, len(headers))
	for i, h := range headers {
		opts[i] = state.Option{Value: h.Column.Key, Label: h.Column.Label(), Disabled: !h.Sortable}
	}
	sel := state.NewSelect(opts...)
	sel.Home()
	return sel
}

func (m *Model) moveCursorUp(rows int) {
	if rows == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = rows - 1
	}
}

func (m *Model) moveCursorDown(rows int) {
	if rows == 0 {
		return
	}
	m.cursor++
	if m.cursor >= rows {
		m.cursor = 0
	}
}

func (m *Model) clampCursor() {
	rows := len(m.table.View().Rows)
	if m.cursor >= rows {
		m.cursor = max(rows-1, 0)
	}
}
