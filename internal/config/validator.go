package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	gkerrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	columnKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)
)

// validatorInstance configures and returns the shared validator used across the config package.
// Field names are reported using their yaml tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("column_key", func(fl validator.FieldLevel) bool {
			return columnKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDataset performs schema and cross-field validation on a dataset.
// It does not touch row values; see CoerceRows.
func ValidateDataset(ds *Dataset) error {
	if ds == nil {
		return gkerrors.NewValidationError("dataset", "dataset is nil", nil)
	}

	if err := validatorInstance().Struct(ds); err != nil {
		return convertValidationError(err)
	}

	keys := make(map[string]int, len(ds.Columns))
	for i, col := range ds.Columns {
		if first, exists := keys[col.Key]; exists {
			return gkerrors.NewValidationError(fieldForColumn(i, "key"),
				fmt.Sprintf("duplicate column key %q (first defined at columns[%d])", col.Key, first), nil)
		}
		keys[col.Key] = i
	}

	if s := ds.Table.Sort; s != nil {
		idx, ok := keys[s.Key]
		if !ok {
			return gkerrors.NewValidationError("table.sort.key", fmt.Sprintf("references unknown column %q", s.Key), nil)
		}
		if spec := ds.Columns[idx]; spec.Sortable != nil && !*spec.Sortable {
			return gkerrors.NewValidationError("table.sort.key", fmt.Sprintf("column %q is not sortable", s.Key), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into gridkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return gkerrors.NewValidationError(field, msg, err)
	}

	return gkerrors.NewValidationError("dataset", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, so
// "Dataset.columns[1].key" becomes "columns[1].key".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForColumn(index int, field string) string {
	return fmt.Sprintf("columns[%d].%s", index, field)
}
