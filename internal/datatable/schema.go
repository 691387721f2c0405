package datatable

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	gkerrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// ValidateColumns rejects schemas that would render broken columns: no
// columns, a missing or duplicate key, a negative width, or an unknown
// alignment or format.
func ValidateColumns(columns []Column) error {
	if len(columns) == 0 {
		return gkerrors.NewValidationError("columns", "at least one column is required", nil)
	}

	v := validatorInstance()
	seen := make(map[string]int, len(columns))
	for i, col := range columns {
		if err := v.Struct(col); err != nil {
			return convertValidationError(i, err)
		}
		if first, dup := seen[col.Key]; dup {
			return gkerrors.NewValidationError(
				fieldForColumn(i, "key"),
				fmt.Sprintf("duplicate column key %q (first used by columns[%d])", col.Key, first),
				nil,
			)
		}
		seen[col.Key] = i
	}
	return nil
}

func convertValidationError(index int, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := fieldForColumn(index, strings.ToLower(ve.Field()))
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return gkerrors.NewValidationError(field, msg, err)
	}
	return gkerrors.NewValidationError(fieldForColumn(index, ""), err.Error(), err)
}

func fieldForColumn(index int, field string) string {
	if field == "" {
		return fmt.Sprintf("columns[%d]", index)
	}
	return fmt.Sprintf("columns[%d].%s", index, field)
}
