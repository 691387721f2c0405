package datatable

import (
	"fmt"
	"math/rand/v2"
)

func peopleColumns() []Column {
	return []Column{
		{Key: "id", Title: "ID", DisableSearch: true},
		{Key: "name", Title: "Name"},
		{Key: "age", Title: "Age", Align: AlignRight},
	}
}

func peopleRows() []Row {
	return []Row{
		{"id": 1, "name": "Bob", "age": 30},
		{"id": 2, "name": "Amy", "age": 25},
		{"id": 3, "name": "Cid", "age": 25},
	}
}

// numberedRows builds n rows with ids 1..n and names "row 01".."row n".
func numberedRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{"id": i + 1, "name": fmt.Sprintf("row %02d", i+1), "age": 20 + i%7}
	}
	return rows
}

// randomRows builds rows with many duplicate ages and some nil ages.
func randomRows(seed uint64, n int) []Row {
	r := rand.New(rand.NewPCG(seed, seed+1))
	rows := make([]Row, n)
	for i := range rows {
		var age any = r.IntN(5)
		if r.IntN(6) == 0 {
			age = nil
		}
		rows[i] = Row{"id": i, "name": fmt.Sprintf("n%d", r.IntN(20)), "age": age}
	}
	return rows
}

func ids(records []Record) []RowID {
	out := make([]RowID, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = fmt.Sprint(rec.Row["name"])
	}
	return out
}
