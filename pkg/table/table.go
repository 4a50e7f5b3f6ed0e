// Package table holds the tabular shape shared by the spreadsheet reader,
// the report builders and the publishers: a named tab with ordered columns.
package table

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

func New(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns}
}

// FromValues builds a table from a raw grid where the first row is the header.
// Short rows are padded with empty strings.
func FromValues(name string, values [][]any) *Table {
	t := &Table{Name: name}
	if len(values) == 0 {
		return t
	}

	t.Columns = make([]string, len(values[0]))
	for i, h := range values[0] {
		t.Columns[i] = Format(h)
	}

	for _, raw := range values[1:] {
		row := make([]any, len(t.Columns))
		for i := range row {
			if i < len(raw) && raw[i] != nil {
				row[i] = raw[i]
			} else {
				row[i] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (t *Table) Append(values ...any) {
	t.Rows = append(t.Rows, values)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of column or -1.
func (t *Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Records returns every row keyed by column name. Unnamed columns are dropped.
func (t *Table) Records() []map[string]any {
	out := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for i, c := range t.Columns {
			if c == "" {
				continue
			}
			if i < len(row) {
				rec[c] = row[i]
			} else {
				rec[c] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

// Column returns the values of a single column.
func (t *Table) Column(column string) []any {
	idx := t.Index(column)
	if idx < 0 {
		return nil
	}
	out := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out
}

// SortBy sorts rows ascending by the given columns, keeping the original
// order of equal rows. Unknown columns are ignored.
func (t *Table) SortBy(columns ...string) {
	idx := make([]int, 0, len(columns))
	for _, c := range columns {
		if i := t.Index(c); i >= 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(t.Rows, func(a, b int) bool {
		for _, i := range idx {
			if c := Compare(cell(t.Rows[a], i), cell(t.Rows[b], i)); c != 0 {
				return c < 0
			}
		}
		return false
	})
}

// Values returns the header followed by all rows.
func (t *Table) Values() [][]any {
	out := make([][]any, 0, len(t.Rows)+1)
	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	out = append(out, header)
	return append(out, t.Rows...)
}

func cell(row []any, i int) any {
	if i < len(row) {
		return row[i]
	}
	return nil
}

// Compare orders numbers numerically and everything else by its text form.
// Numbers sort before text.
func Compare(a, b any) int {
	da, aNum := number(a)
	db, bNum := number(b)
	switch {
	case aNum && bNum:
		return da.Cmp(db)
	case aNum:
		return -1
	case bNum:
		return 1
	}

	sa, sb := Format(a), Format(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

func number(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case float64:
		return decimal.NewFromFloat(n), true
	case decimal.Decimal:
		return n, true
	}
	return decimal.Zero, false
}

// Format renders a cell the way it appears in an identifier or a text cell.
// Integral floats drop their fraction so 40.0 reads as "40".
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case decimal.Decimal:
		return x.String()
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	}
	return fmt.Sprint(v)
}
