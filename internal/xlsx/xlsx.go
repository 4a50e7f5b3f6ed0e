// Package xlsx reads and writes local Excel workbooks, mirroring the
// spreadsheet client for command line use.
package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

type Workbook struct {
	dir string
}

// New writes workbooks into dir, creating it when needed.
func New(dir string) *Workbook {
	return &Workbook{dir: dir}
}

// Publish writes one sheet per table to <dir>/<title>.xlsx and returns the
// file path. Workbooks are local files, so shareWith is ignored.
func (w *Workbook) Publish(ctx context.Context, title string, tabs []*table.Table, _ []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", w.dir, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	rtl := true
	for i, t := range tabs {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), t.Name); err != nil {
				return "", fmt.Errorf("failed to name sheet %s: %w", t.Name, err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return "", fmt.Errorf("failed to add sheet %s: %w", t.Name, err)
		}

		if err := f.SetSheetView(t.Name, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return "", fmt.Errorf("failed to set view of %s: %w", t.Name, err)
		}

		for r, row := range t.Values() {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return "", err
			}
			values := cellValues(row)
			if err := f.SetSheetRow(t.Name, cell, &values); err != nil {
				return "", fmt.Errorf("failed to write %s row %d: %w", t.Name, r+1, err)
			}
		}
	}

	path := filepath.Join(w.dir, fileName(title))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, nil
}

// ReadSpreadsheet reads every sheet of the workbook at path, first row as header.
func (w *Workbook) ReadSpreadsheet(ctx context.Context, path string) ([]*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var tabs []*table.Table
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		values := make([][]any, len(rows))
		for i, row := range rows {
			values[i] = make([]any, len(row))
			for j, v := range row {
				values[i][j] = v
			}
		}
		tabs = append(tabs, table.FromValues(name, values))
	}
	return tabs, nil
}

func cellValues(row []any) []any {
	out := make([]any, len(row))
	for i, v := range row {
		switch x := v.(type) {
		case nil:
			out[i] = ""
		case decimal.Decimal:
			out[i] = x.InexactFloat64()
		default:
			out[i] = x
		}
	}
	return out
}

func fileName(title string) string {
	name := strings.NewReplacer(":", "-", "/", "-", " ", "_").Replace(title)
	return name + ".xlsx"
}
