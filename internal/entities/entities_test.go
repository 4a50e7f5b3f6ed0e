package entities_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
)

func TestDocument_Accessors(t *testing.T) {
	d := entities.Document{
		"int":      7,
		"float":    float64(40),
		"fraction": 2.75,
		"numeric":  " 12.5 ",
		"number":   json.Number("19.9"),
		"word":     "abc",
		"when":     time.Date(2025, 12, 1, 9, 30, 0, 0, time.UTC),
		"nested":   map[string]any{"a": "b"},
	}

	assert.Equal(t, "7", d.String("int"))
	assert.Equal(t, "40", d.String("float"))
	assert.Equal(t, "19.9", d.String("number"))
	assert.Equal(t, "2025-12-01 09:30:00", d.String("when"))
	assert.Equal(t, "", d.String("missing"))

	assert.Equal(t, "12.5", d.Decimal("numeric").String())
	assert.Equal(t, "19.9", d.Decimal("number").String())
	assert.True(t, d.Decimal("word").IsZero())

	assert.Equal(t, 7, d.Int("int"))
	assert.Equal(t, 2, d.Int("fraction"))
	assert.Equal(t, 12, d.Int("numeric"))
	assert.Equal(t, 0, d.Int("word"))

	assert.Equal(t, "b", d.Doc("nested").String("a"))
	assert.Empty(t, d.Doc("word"))
}

func TestOrderFromDocument(t *testing.T) {
	d := entities.Document{
		entities.IDField:          "doc-1",
		"firstName":               "Dana",
		"lastName":                "Cohen",
		"phoneNumber":             "0501234567",
		"prefferedPickupLocation": "ariel",
		"totalCost":               float64(100),
		"totalCostAfterDiscount":  "90.5",
		"products": []any{
			map[string]any{"amount": float64(2), "product": map[string]any{"id": "tights_1", "kind": "tights", "supplier": "acme"}},
			"garbage",
			map[string]any{"amount": 3, "product": map[string]any{"id": "lace_1", "kind": "lace"}},
		},
	}

	o := entities.OrderFromDocument(d)

	assert.Equal(t, "doc-1", o.ID)
	assert.Equal(t, "ariel", o.PickupLocation)
	assert.Equal(t, "0501234567", o.Phone)
	assert.Equal(t, "100", o.TotalCost.String())
	assert.Equal(t, "90.5", o.TotalAfterDiscount.String())
	assert.Len(t, o.Lines, 2)
	assert.Equal(t, 5, o.ItemCount())
	assert.Equal(t, entities.KindTights, o.Lines[0].Product.Kind)
	assert.Equal(t, "acme", o.Lines[0].Product.Supplier)
}

func TestProduct_Stock(t *testing.T) {
	p := entities.ProductFromDocument(entities.Document{
		"kind":             "short",
		"stock_liron":      float64(4),
		"units_in_package": "6",
	})

	assert.Equal(t, 4, p.Stock("liron"))
	assert.Equal(t, 0, p.Stock("sharale"))
	assert.Equal(t, 6, p.UnitsInPackage)
	assert.True(t, p.Kind.IsProduct())
	assert.False(t, entities.Kind("colors").IsProduct())
}
