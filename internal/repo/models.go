package repo

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
)

type documentRow struct {
	Collection string         `db:"collection"`
	ID         string         `db:"id"`
	Data       types.JSONText `db:"data"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r documentRow) toEntity() (entities.Document, error) {
	doc := entities.Document{}
	if err := r.Data.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidDocument, err)
	}
	doc[entities.IDField] = r.ID
	return doc, nil
}

// withoutID strips the read-side ID field so it is never persisted.
func withoutID(doc entities.Document) entities.Document {
	if _, ok := doc[entities.IDField]; !ok {
		return doc
	}
	out := doc.Clone()
	delete(out, entities.IDField)
	return out
}
