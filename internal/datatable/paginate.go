package datatable

// DefaultPageSize applies when a page size below one is requested.
const DefaultPageSize = 10

// Page is one slice of a record collection.
type Page struct {
	Rows       []Record
	Number     int
	Size       int
	TotalPages int
	TotalItems int
}

// IsEmpty reports whether the page carries no rows.
func (p Page) IsEmpty() bool {
	return len(p.Rows) == 0
}

// Paginate slices records for the 1-based page. It does not clamp: pages
// outside [1, TotalPages] come back empty and the caller decides how to
// recover. TotalPages is zero when there are no records.
func Paginate(records []Record, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(records)
	result := Page{
		Rows:       []Record{},
		Number:     page,
		Size:       pageSize,
		TotalPages: TotalPages(total, pageSize),
		TotalItems: total,
	}
	if page < 1 {
		return result
	}

	start := (page - 1) * pageSize
	if start >= total {
		return result
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	result.Rows = records[start:end:end]
	return result
}

// TotalPages returns ceil(items / pageSize), zero for an empty collection.
func TotalPages(items, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if items <= 0 {
		return 0
	}
	return (items + pageSize - 1) / pageSize
}

// ClampPage bounds page to [1, totalPages]. It returns 1 when there are no pages.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
