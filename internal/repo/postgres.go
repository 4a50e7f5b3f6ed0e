package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/trm"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT        NOT NULL,
	id         TEXT        NOT NULL,
	data       JSONB       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
)`

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

// NewPostgresRepo stores every collection in a single JSONB table keyed by
// (collection, id).
func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

func (r *postgresRepo) ReadCollection(ctx context.Context, collection string) ([]entities.Document, error) {
	query, args := r.qb.Select("collection", "id", "data", "updated_at").
		From("documents").
		Where(sq.Eq{"collection": collection}).
		OrderBy("id").
		MustSql()

	var rows []documentRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", collection, err)
	}

	docs := make([]entities.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", collection, row.ID, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *postgresRepo) DeleteCollection(ctx context.Context, collection string) (int, error) {
	query, args := r.qb.Delete("documents").
		Where(sq.Eq{"collection": collection}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted %s: %w", collection, err)
	}
	return int(n), nil
}

func (r *postgresRepo) WriteDocument(ctx context.Context, collection, id string, doc entities.Document) error {
	data, err := json.Marshal(withoutID(doc))
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %v", entities.ErrInvalidDocument, collection, id, err)
	}

	query, args := r.qb.Insert("documents").
		Columns("collection", "id", "data").
		Values(collection, id, types.JSONText(data)).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
