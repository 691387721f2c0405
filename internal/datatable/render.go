package datatable

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// EmptyCell is shown for nil values.
const EmptyCell = "—"

// CurrencySymbol prefixes values in currency columns.
const CurrencySymbol = "$"

// RenderCell returns the display text of the column's value in row.
//
// A column Render func wins outright. Otherwise nil renders as EmptyCell,
// numbers use English digit grouping (two fraction digits and a currency
// symbol for currency columns), times use DateLayout and anything else is
// formatted with fmt.
func RenderCell(row Row, col Column) string {
	value := row[col.Key]
	if col.Render != nil {
		return col.Render(value, row)
	}
	if isNil(value) {
		return EmptyCell
	}
	if n, ok := numericValue(value); ok {
		return formatNumber(value, n, col.Format)
	}
	if t, ok := value.(time.Time); ok {
		return t.Format(DateLayout)
	}
	return fmt.Sprint(value)
}

func formatNumber(value any, n float64, format Format) string {
	p := message.NewPrinter(language.English)
	if format != FormatCurrency {
		return p.Sprint(number.Decimal(value, number.MaxFractionDigits(3)))
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + CurrencySymbol + p.Sprint(number.Decimal(n, number.Scale(2)))
}
