package trm

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestNopManager_Do(t *testing.T) {
	m := NewNopManager()

	called := false
	err := m.Do(context.Background(), func(ctx context.Context) error {
		called = true
		assert.Nil(t, ExtractTx(ctx))
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	boom := errors.New("boom")
	err = m.Do(context.Background(), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestExtractTx(t *testing.T) {
	assert.Nil(t, ExtractTx(context.Background()))

	tx := &sqlx.Tx{}
	assert.Same(t, tx, ExtractTx(withTx(context.Background(), tx)))
}

func TestManager_DoJoinsOuterTransaction(t *testing.T) {
	// no db: a nested call must not try to begin a transaction
	m := NewManager(nil)
	tx := &sqlx.Tx{}
	ctx := withTx(context.Background(), tx)

	err := m.Do(ctx, func(ctx context.Context) error {
		assert.Same(t, tx, ExtractTx(ctx))
		return nil
	})
	assert.NoError(t, err)
}
