package datatable

import "strings"

// Filter keeps records where any searchable column contains text, ignoring case.
//
// Whitespace-only text returns the input unchanged. Nil values never match.
func Filter(records []Record, text string, columns []Column) []Record {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return records
	}

	keys := searchableKeys(columns)
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if matches(rec.Row, keys, needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether row satisfies the filter predicate for text.
func Matches(row Row, text string, columns []Column) bool {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return true
	}
	return matches(row, searchableKeys(columns), needle)
}

func searchableKeys(columns []Column) []string {
	keys := make([]string, 0, len(columns))
	for _, col := range columns {
		if col.Searchable() {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

func matches(row Row, keys []string, needle string) bool {
	for _, key := range keys {
		v := row[key]
		if isNil(v) {
			continue
		}
		if strings.Contains(strings.ToLower(searchText(v)), needle) {
			return true
		}
	}
	return false
}
