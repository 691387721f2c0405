package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/gridkit/internal/datatable"
	gkerrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

// dateLayouts are tried in order when a date column holds a string.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	datatable.DateLayout,
}

// CoerceRows converts row values in place according to each column's declared
// type. Missing and null values are left alone. yaml.v3 leaves timestamps as
// strings when decoding into interfaces, so date columns parse them here.
func CoerceRows(ds *Dataset) error {
	for i, row := range ds.Rows {
		if row == nil {
			ds.Rows[i] = datatable.Row{}
			continue
		}
		for _, col := range ds.Columns {
			value, ok := row[col.Key]
			if !ok || value == nil {
				continue
			}
			converted, err := coerceValue(value, col.ValueType())
			if err != nil {
				return gkerrors.NewCoercionError(i, col.Key, value, err)
			}
			row[col.Key] = converted
		}
	}
	return nil
}

func coerceValue(value any, kind string) (any, error) {
	switch kind {
	case TypeString:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return fmt.Sprint(value), nil
	case TypeNumber:
		return toNumber(value)
	case TypeDate:
		return toDate(value)
	default:
		return value, nil
	}
}

func toNumber(value any) (any, error) {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return v, nil
	case string:
		trimmed := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, errors.New("not a number")
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported type %T for number column", value)
	}
}

func toDate(value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, nil
			}
		}
		return nil, errors.New("not a date (expected YYYY-MM-DD, RFC3339 or M/D/YYYY)")
	default:
		return nil, fmt.Errorf("unsupported type %T for date column", value)
	}
}
