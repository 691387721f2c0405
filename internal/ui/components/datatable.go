package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
)

const (
	// DefaultLoadingMessage is shown in place of rows while a table is loading.
	DefaultLoadingMessage = "Loading..."

	columnGap    = "  "
	maxAutoWidth = 40
)

// DataTable renders a datatable.View frame. It holds no table state of its own
// beyond the cursor and focused column supplied by the caller.
type DataTable struct {
	BaseComponent
	view           datatable.View
	cursor         int
	focusColumn    int
	loadingMessage string
	title          string
}

// NewDataTable creates a renderer for the given frame.
// The cursor and focused column start unset.
func NewDataTable(view datatable.View) *DataTable {
	return &DataTable{
		BaseComponent:  NewBaseComponent(),
		view:           view,
		cursor:         -1,
		focusColumn:    -1,
		loadingMessage: DefaultLoadingMessage,
	}
}

// WithCursor highlights the row at pos within the page. Negative disables it.
func (d *DataTable) WithCursor(pos int) *DataTable {
	d.cursor = pos
	return d
}

// WithFocusColumn underlines the header at index col. Negative disables it.
func (d *DataTable) WithFocusColumn(col int) *DataTable {
	d.focusColumn = col
	return d
}

// WithLoadingMessage overrides the loading placeholder.
func (d *DataTable) WithLoadingMessage(msg string) *DataTable {
	d.loadingMessage = msg
	return d
}

// WithTitle renders a title line above the table.
func (d *DataTable) WithTitle(title string) *DataTable {
	d.title = title
	return d
}

// View renders the table.
func (d *DataTable) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the table with the given theme context.
func (d *DataTable) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	widths := d.columnWidths()

	var lines []string
	if d.title != "" {
		lines = append(lines, TypographyStyle(theme, TypographyVariantTitle).Render(d.title))
	}
	if d.view.ShowSearch && d.view.Filter != "" {
		lines = append(lines, NewSearchBox(d.view.Filter).ViewWithContext(ctx))
	}

	header := d.headerLine(ctx, widths)
	lines = append(lines, header, d.separator(ctx, lipgloss.Width(header)))

	switch {
	case d.view.Loading:
		lines = append(lines, "  "+theme.Table.Placeholder.Render(d.loadingMessage))
	case d.view.Empty:
		lines = append(lines, "  "+theme.Table.Placeholder.Render(d.view.EmptyMessage))
	default:
		for i, row := range d.view.Rows {
			lines = append(lines, d.rowLine(ctx, widths, i, row))
		}
	}

	if footer := d.footer(ctx); footer != "" {
		lines = append(lines, "", footer)
	}

	if ctx.MaxWidth > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, ctx.MaxWidth, ellipsis(ctx))
		}
	}
	return d.ComputeStyle(theme).Render(strings.Join(lines, "\n"))
}

func (d *DataTable) columnWidths() []int {
	widths := make([]int, len(d.view.Headers))
	for i, h := range d.view.Headers {
		if h.Column.Width > 0 {
			widths[i] = h.Column.Width
			continue
		}
		w := lipgloss.Width(h.Column.Label())
		if h.Sortable {
			w += 2
		}
		for _, row := range d.view.Rows {
			if i < len(row.Cells) {
				w = max(w, lipgloss.Width(row.Cells[i]))
			}
		}
		widths[i] = min(w, maxAutoWidth)
	}
	return widths
}

func (d *DataTable) headerLine(ctx RenderContext, widths []int) string {
	styles := ctx.Theme.Table
	prefix := "  "
	if d.view.Selectable {
		prefix += NewCheckbox(d.view.HeaderCheck).ViewWithContext(ctx) + " "
	}
	cells := make([]string, 0, len(d.view.Headers))
	for i, h := range d.view.Headers {
		label := h.Column.Label()
		if indicator := sortIndicator(h.Direction, ctx.UseUnicode); indicator != "" {
			label += " " + indicator
		}
		style := styles.Header
		if h.Direction != datatable.SortNone {
			style = styles.SortedBy
		}
		if i == d.focusColumn {
			style = style.Underline(true)
		}
		cells = append(cells, style.Render(fit(label, widths[i], h.Column.Alignment(), ctx)))
	}
	return prefix + strings.Join(cells, columnGap)
}

func (d *DataTable) rowLine(ctx RenderContext, widths []int, pos int, row datatable.ViewRow) string {
	styles := ctx.Theme.Table
	marker := "  "
	if pos == d.cursor {
		marker = "> "
		if ctx.UseUnicode {
			marker = "› "
		}
	}

	prefix := marker
	if d.view.Selectable {
		prefix += CheckboxFor(row.Selected).ViewWithContext(ctx) + " "
	}
	cells := make([]string, 0, len(d.view.Headers))
	for i, h := range d.view.Headers {
		text := ""
		if i < len(row.Cells) {
			text = row.Cells[i]
		}
		cells = append(cells, fit(text, widths[i], h.Column.Alignment(), ctx))
	}

	line := prefix + strings.Join(cells, columnGap)
	switch {
	case pos == d.cursor:
		return styles.Cursor.Render(line)
	case row.Selected:
		return styles.Selected.Render(line)
	default:
		return styles.Cell.Render(line)
	}
}

func (d *DataTable) separator(ctx RenderContext, width int) string {
	glyph := "-"
	if ctx.UseUnicode {
		glyph = "─"
	}
	return ctx.Theme.Table.Separator.Render(strings.Repeat(glyph, max(width, 1)))
}

func (d *DataTable) footer(ctx RenderContext) string {
	var parts []string
	if d.view.ShowPagination && !d.view.Loading {
		parts = append(parts, NewPagination(d.view.Page, d.view.TotalPages).
			WithTotals(d.view.TotalItems, d.view.PageSize).
			ViewWithContext(ctx))
	}
	if d.view.Selectable && d.view.SelectedCount > 0 {
		parts = append(parts, PrimaryBadge(fmt.Sprintf("%d selected", d.view.SelectedCount)).ViewWithContext(ctx))
	}
	return strings.Join(parts, "  ")
}

func sortIndicator(direction datatable.SortDirection, unicode bool) string {
	switch direction {
	case datatable.SortAscending:
		if unicode {
			return "▲"
		}
		return "^"
	case datatable.SortDescending:
		if unicode {
			return "▼"
		}
		return "v"
	default:
		return ""
	}
}

// fit truncates text to width and pads it according to align.
func fit(text string, width int, align datatable.Align, ctx RenderContext) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) > width {
		text = ansi.Truncate(text, width, ellipsis(ctx))
	}
	return lipgloss.NewStyle().Width(width).Align(position(align)).Render(text)
}

func position(align datatable.Align) lipgloss.Position {
	switch align {
	case datatable.AlignCenter:
		return lipgloss.Center
	case datatable.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func ellipsis(ctx RenderContext) string {
	if ctx.UseUnicode {
		return "…"
	}
	return "."
}

var _ ContextualRenderable = (*DataTable)(nil)
