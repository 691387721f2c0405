package datatable

type cacheKey struct {
	gen    uint64
	sort   SortState
	filter string
}

// derivedCache holds the last sort+filter result. It is an optimization only:
// a miss recomputes the same records from scratch.
type derivedCache struct {
	valid   bool
	key     cacheKey
	records []Record
}

func (c *derivedCache) lookup(key cacheKey) ([]Record, bool) {
	if !c.valid || c.key != key {
		return nil, false
	}
	return c.records, true
}

func (c *derivedCache) store(key cacheKey, records []Record) {
	c.valid = true
	c.key = key
	c.records = records
}
