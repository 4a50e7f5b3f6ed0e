package entities

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

// Document is a schemaless record as stored in a collection.
type Document map[string]any

// IDField is added to every document read back from a store.
const IDField = "_id"

const timeLayout = "2006-01-02 15:04:05"

func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case time.Time:
		return v.Format(timeLayout)
	case json.Number:
		return v.String()
	default:
		return table.Format(v)
	}
}

// Decimal coerces numbers and numeric strings; anything else reads as zero.
func (d Document) Decimal(key string) decimal.Decimal {
	switch v := d[key].(type) {
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case decimal.Decimal:
		return v
	case json.Number:
		n, err := decimal.NewFromString(v.String())
		if err == nil {
			return n
		}
	case string:
		n, err := decimal.NewFromString(strings.TrimSpace(v))
		if err == nil {
			return n
		}
	}
	return decimal.Zero
}

// Int coerces like Decimal and truncates toward zero.
func (d Document) Int(key string) int {
	switch v := d[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return int(d.Decimal(key).IntPart())
}

func (d Document) Doc(key string) Document {
	switch v := d[key].(type) {
	case Document:
		return v
	case map[string]any:
		return Document(v)
	}
	return Document{}
}

func (d Document) List(key string) []any {
	if v, ok := d[key].([]any); ok {
		return v
	}
	return nil
}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

type SyncResult struct {
	Written map[string]int
	Skipped []string
}

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("unauthorized email")
	ErrInvalidDocument = errors.New("invalid document")
)
