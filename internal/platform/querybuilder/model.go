package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel prepares an insert of every db-tagged field of model.
// Fields tagged `db:"-"` or carrying the ",readonly" option are skipped.
func InsertModel(table string, model any) (*InsertBuilder, error) {
	fields, err := modelFields(model)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, f := range fields {
		if f.readonly {
			continue
		}
		columns = append(columns, f.column)
		values = append(values, f.value)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("model %T has no writable db columns", model)
	}
	return InsertInto(table).Columns(columns...).Values(values...), nil
}

// ModelColumns lists every db column of model in field order, read-only ones included.
func ModelColumns(model any) []string {
	fields, err := modelFields(model)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.column)
	}
	return out
}

type modelField struct {
	column   string
	readonly bool
	value    any
}

func modelFields(model any) ([]modelField, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	out := make([]modelField, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		out = append(out, modelField{
			column:   name,
			readonly: strings.TrimSpace(opts) == "readonly",
			value:    value.Field(i).Interface(),
		})
	}
	return out, nil
}
