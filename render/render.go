// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/star-atlas/cliparse"
	"github.com/danielhkuo/star-atlas/models"
	"github.com/danielhkuo/star-atlas/router"
)

// Null is printed in tables for unknown values.
const Null = "NULL"

// Write renders report results in the given format.
func Write(w io.Writer, format string, results []router.Result) error {
	switch format {
	case cliparse.FormatJSON:
		return writeJSON(w, results)
	case cliparse.FormatYAML:
		return writeYAML(w, results)
	case cliparse.FormatTable:
		return writeTables(w, results)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// WriteError renders a failure. JSON output gets an error object so that
// consumers can always parse stdout.
func WriteError(w io.Writer, format string, err error) error {
	if format == cliparse.FormatJSON {
		return writeJSON(w, models.ErrorResponse{Error: "report failed", Message: err.Error()})
	}
	_, werr := fmt.Fprintf(w, "error: %v\n", err)
	return werr
}

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func writeTables(w io.Writer, results []router.Result) error {
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%s): %s ==\n", result.Title, result.Name, rowCount(result.Count))

		if err := writeTable(w, result.Rows); err != nil {
			return fmt.Errorf("failed to render %s: %w", result.Name, err)
		}
	}
	return nil
}

// writeTable prints a slice of structs with one column per field, headed by
// the field's json name.
func writeTable(w io.Writer, rows any) error {
	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("rows must be a slice, got %T", rows)
	}

	elem := v.Type().Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("rows must be structs, got %s", elem)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, elem.NumField())
	for i := range headers {
		headers[i] = columnName(elem.Field(i))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for i := 0; i < v.Len(); i++ {
		row := v.Index(i)
		cells := make([]string, row.NumField())
		for j := range cells {
			cells[j] = Cell(row.Field(j).Interface())
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

func columnName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// Cell formats one value for a text table.
func Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return Null
	case *float64:
		if x == nil {
			return Null
		}
		return Cell(*x)
	case *int:
		if x == nil {
			return Null
		}
		return Cell(*x)
	case *string:
		if x == nil {
			return Null
		}
		return *x
	case float64:
		return humanize.FtoaWithDigits(x, 4)
	case int:
		return humanize.Comma(int64(x))
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func rowCount(n int) string {
	if n == 1 {
		return "1 row"
	}
	return humanize.Comma(int64(n)) + " rows"
}
