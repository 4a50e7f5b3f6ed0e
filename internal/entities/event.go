package entities

import "time"

type EventType string

const (
	EventCatalogSynced  EventType = "catalog.synced"
	EventOrdersExported EventType = "orders.exported"
	EventBackupCreated  EventType = "backup.created"
)

// Event is the audit record published after an operation completes.
type Event struct {
	ID      string         `json:"id"`
	Type    EventType      `json:"type"`
	Actor   string         `json:"actor,omitempty"`
	At      time.Time      `json:"at"`
	Details map[string]any `json:"details,omitempty"`
}
