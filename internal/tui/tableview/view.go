package tableview

import (
	"strings"

	"github.com/alexisbeaulieu97/gridkit/internal/ui/components"
)

// View renders the table screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.ctx
	theme := ctx.Theme
	var b strings.Builder

	if m.title != "" {
		b.WriteString(components.TypographyStyle(theme, components.TypographyVariantTitle).Render(m.title))
		b.WriteString("\n")
	}

	frame := m.table.View()
	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
		// the focused input already shows the filter text
		frame.Filter = ""
	}

	table := components.NewDataTable(frame).
		WithCursor(m.cursor).
		WithFocusColumn(m.columns.HighlightedIndex())
	if frame.Loading {
		table = table.WithLoadingMessage(m.spinner.View() + " Loading rows...")
	}
	b.WriteString(table.ViewWithContext(ctx))
	b.WriteString("\n")
	if frame.ShowPagination {
		if bar := m.position.View(frame.Page, frame.TotalPages); bar != "" {
			b.WriteString(bar)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.isError {
			b.WriteString(components.NewBadge(m.status).WithVariant(components.BadgeVariantError).ViewWithContext(ctx))
		} else {
			b.WriteString(components.TypographyStyle(theme, components.TypographyVariantMuted).Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
