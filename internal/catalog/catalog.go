// Package catalog turns the tabs of the catalog spreadsheet into documents.
//
// Every known tab has a fixed list of attribute columns. A row's document ID
// is the tab name followed by those attribute values, joined with "_", so two
// rows with the same attributes land on the same document. Product tabs share
// the "products" collection and are told apart by the "kind" field.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

const ProductsCollection = "products"

var ErrMissingColumn = errors.New("missing id column")

var idFields = map[string][]string{
	string(entities.KindTights):  {"denier", "leg", "size", "color"},
	string(entities.KindLace):    {"lace", "color", "size"},
	string(entities.KindShort):   {"length", "size", "color"},
	string(entities.KindThermal): {"leg", "size", "color"},
	"colors":                     {"name"},
	"pickups":                    {"name"},
	"sales":                      {"name"},
	"admins":                     {"email"},
	"contact":                    {"first_name", "last_name"},
}

// SyncedCollections are emptied before a sync rewrites them.
var SyncedCollections = []string{
	ProductsCollection,
	"colors",
	"pickups",
	"sales",
	"admins",
	"contact",
}

// IDFields returns the attribute columns that identify a row of tab.
func IDFields(tab string) ([]string, bool) {
	f, ok := idFields[tab]
	return f, ok
}

func CollectionFor(tab string) string {
	if entities.Kind(tab).IsProduct() {
		return ProductsCollection
	}
	return tab
}

func DocumentID(tab string, values []string) string {
	return tab + "_" + strings.Join(values, "_")
}

type Write struct {
	Collection string
	ID         string
	Doc        entities.Document
}

// Plan computes the writes for every tab with an ID rule, in tab order.
// Tabs without a rule are returned as skipped.
func Plan(tabs []*table.Table) ([]Write, []string, error) {
	var (
		writes  []Write
		skipped []string
	)

	for _, tab := range tabs {
		fields, ok := IDFields(tab.Name)
		if !ok {
			skipped = append(skipped, tab.Name)
			continue
		}

		for _, f := range fields {
			if tab.Index(f) < 0 {
				return nil, nil, fmt.Errorf("tab %q: %w %q", tab.Name, ErrMissingColumn, f)
			}
		}

		collection := CollectionFor(tab.Name)
		for _, rec := range tab.Records() {
			values := make([]string, len(fields))
			for i, f := range fields {
				values[i] = table.Format(rec[f])
			}

			doc := entities.Document(rec)
			id := DocumentID(tab.Name, values)
			doc["id"] = id
			doc["kind"] = tab.Name

			writes = append(writes, Write{Collection: collection, ID: id, Doc: doc})
		}
	}

	return writes, skipped, nil
}
