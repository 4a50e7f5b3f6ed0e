package xlsx_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-admin/internal/xlsx"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

func TestWorkbook_PublishAndRead(t *testing.T) {
	dir := t.TempDir()
	wb := xlsx.New(dir)

	orders := table.New("הזמנות", "שם", "מחיר")
	orders.Append("Dana", decimal.RequireFromString("90.5"))
	orders.Append("Noa", 40)
	summary := table.New("כללי", "נתון", "ערך")
	summary.Append("כמות הזמנות", 2)

	path, err := wb.Publish(context.Background(), "shop@2026-01-02 10:11:12", []*table.Table{orders, summary}, []string{"admin@example.com"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shop@2026-01-02_10-11-12.xlsx"), path)

	tabs, err := wb.ReadSpreadsheet(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, tabs, 2)

	assert.Equal(t, "הזמנות", tabs[0].Name)
	assert.Equal(t, []string{"שם", "מחיר"}, tabs[0].Columns)
	assert.Equal(t, []any{"Dana", "90.5"}, tabs[0].Rows[0])
	assert.Equal(t, []any{"Noa", "40"}, tabs[0].Rows[1])
	assert.Equal(t, "כללי", tabs[1].Name)
}

func TestWorkbook_Publish_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := xlsx.New(t.TempDir()).Publish(ctx, "x", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
