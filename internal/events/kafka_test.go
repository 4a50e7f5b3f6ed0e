package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/internal/events"
)

func TestDecode(t *testing.T) {
	at := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(entities.Event{
		ID:      "e1",
		Type:    entities.EventOrdersExported,
		Actor:   "admin@example.com",
		At:      at,
		Details: map[string]any{"orders": 3},
	})
	require.NoError(t, err)

	event, err := events.Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, entities.EventOrdersExported, event.Type)
	assert.Equal(t, "admin@example.com", event.Actor)
	assert.True(t, at.Equal(event.At))
	assert.Equal(t, float64(3), event.Details["orders"])
}

func TestDecode_Invalid(t *testing.T) {
	_, err := events.Decode([]byte(`{"type":"catalog.synced"}`))
	assert.ErrorIs(t, err, entities.ErrInvalidDocument)

	_, err = events.Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	p := events.NewNopPublisher()

	assert.NoError(t, p.Publish(context.Background(), entities.Event{ID: "e1"}))
	assert.NoError(t, p.Close())
}
