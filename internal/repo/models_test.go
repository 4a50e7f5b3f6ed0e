package repo

import (
	"testing"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
)

func TestDocumentRow_ToEntity(t *testing.T) {
	row := documentRow{
		Collection: "products",
		ID:         "tights_40_long_M_black",
		Data:       types.JSONText(`{"kind":"tights","price":25,"stock_liron":3}`),
	}

	doc, err := row.toEntity()
	require.NoError(t, err)

	assert.Equal(t, "tights_40_long_M_black", doc[entities.IDField])
	assert.Equal(t, "tights", doc.String("kind"))
	assert.Equal(t, 3, doc.Int("stock_liron"))
	assert.Equal(t, "25", doc.Decimal("price").String())
}

func TestDocumentRow_ToEntity_Invalid(t *testing.T) {
	row := documentRow{ID: "x", Data: types.JSONText(`[1,2]`)}

	_, err := row.toEntity()
	assert.ErrorIs(t, err, entities.ErrInvalidDocument)
}

func TestWithoutID(t *testing.T) {
	doc := entities.Document{entities.IDField: "a", "name": "black"}

	out := withoutID(doc)

	assert.NotContains(t, out, entities.IDField)
	assert.Equal(t, "black", out["name"])
	assert.Contains(t, doc, entities.IDField, "input must not be modified")
}
