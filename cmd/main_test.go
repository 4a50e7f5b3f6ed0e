package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SergeyBogomolovv/shop-admin/internal/report"
)

func TestStockLocations(t *testing.T) {
	got := stockLocations([]string{"office:מלאי משרד", " home : מלאי בית", "garage"})

	assert.Equal(t, []report.StockLocation{
		{Key: "office", Label: "מלאי משרד"},
		{Key: "home", Label: "מלאי בית"},
		{Key: "garage", Label: ""},
	}, got)
}

func TestVersionCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	assert.NoError(t, root.Execute())
	assert.Equal(t, version+"\n", out.String())
}
