package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// WriteCSV writes records as CSV with CRLF line endings. The header row is built
// from the json names of the struct fields; fields tagged "-" are skipped.
func WriteCSV[T any](w io.Writer, records []T) error {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("csv export needs struct records, got %s", typ.Kind())
	}

	cols := csvColumns(typ)
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i, rec := range records {
		v := reflect.ValueOf(rec)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				break
			}
			v = v.Elem()
		}
		row := make([]string, len(cols))
		if v.Kind() == reflect.Struct {
			for j, c := range cols {
				row[j] = csvValue(v.Field(c.index))
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMapCSV writes a key/value document as two columns sorted by key.
// Nested values are written as JSON.
func WriteMapCSV(w io.Writer, doc map[string]any) error {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write([]string{"key", "value"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, k := range keys {
		val := ""
		switch v := doc[k].(type) {
		case nil:
		case string:
			val = v
		case float64, bool, json.Number:
			val = fmt.Sprint(v)
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("failed to encode %q: %w", k, err)
			}
			val = string(b)
		}
		if err := cw.Write([]string{k, val}); err != nil {
			return fmt.Errorf("failed to write csv row %q: %w", k, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

type csvColumn struct {
	name  string
	index int
}

func csvColumns(typ reflect.Type) []csvColumn {
	cols := make([]csvColumn, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		cols = append(cols, csvColumn{name: name, index: i})
	}
	return cols
}

func csvValue(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Struct:
		if v.Kind() != reflect.Struct && v.IsNil() {
			return ""
		}
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return fmt.Sprint(v.Interface())
		}
		return string(b)
	}
	return fmt.Sprint(v.Interface())
}
