// Package components renders gridkit widgets to terminal strings with lipgloss.
//
// Components are builders: construct one, chain WithX setters, then call View
// for the default theme or ViewWithContext to supply a Theme and width budget.
//
//	ctx := components.DefaultContext().WithMaxWidth(80)
//	out := components.NewDataTable(table.View()).WithCursor(0).ViewWithContext(ctx)
//
// Styling flows through StyleFunc appliers (Background, Foreground, Border,
// PaddingX, Typography) and a VariantRegistry held by the Theme, so no
// component reads global state.
//
// The DataTable renderer draws a datatable.View frame: headers with sort
// indicators, an optional checkbox column, the loading placeholder or empty
// message, and pagination controls that are omitted when there are no pages.
package components
