package report

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

// BackupTable lays a collection out as one tab. Columns are the union of all
// document fields in first-seen order (alphabetical within a document), with
// the document ID first. Nested values become JSON text.
func BackupTable(collection string, docs []entities.Document) *table.Table {
	seen := make(map[string]struct{})
	var fields []string
	for _, d := range docs {
		for _, k := range slices.Sorted(maps.Keys(d)) {
			if _, ok := seen[k]; ok || k == entities.IDField {
				continue
			}
			seen[k] = struct{}{}
			fields = append(fields, k)
		}
	}
	columns := append([]string{entities.IDField}, fields...)

	t := table.New(collection, columns...)
	for _, d := range docs {
		row := make([]any, len(columns))
		for i, c := range columns {
			row[i] = backupCell(d, c)
		}
		t.Append(row...)
	}
	return t
}

func backupCell(d entities.Document, key string) any {
	switch v := d[key].(type) {
	case nil:
		return ""
	case string, bool, int, int64, float64:
		return v
	case []any, map[string]any, entities.Document:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return d.String(key)
	}
}
