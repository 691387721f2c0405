// Package datatable implements the headless state of a data table widget.
//
// A table owns a read-only row collection, a column schema and transient UI
// state (sort, filter text, current page, selected rows). Rendering is derived
// through three pure stages applied in order:
//
//	Sort -> Filter -> Paginate
//
// Every stage works on [Record] values, which pair a caller row with its
// original index and its stable identity. Selection is an immutable set of
// identities, so sorting, filtering or paging never changes which rows are
// selected.
//
// The stages and the reducers in state.go are usable on their own. [Table]
// bundles them with options, callbacks and a memoized derived view for callers
// that want a ready-made controller:
//
//	table, err := datatable.New(rows, columns, datatable.Options{PageSize: 10, Selectable: true})
//	if err != nil {
//		return err
//	}
//	table.Sort("age")
//	table.SetFilter("bo")
//	view := table.View()
//
// A Table is not safe for concurrent use. UI event loops drive it from a
// single goroutine.
package datatable
