package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SergeyBogomolovv/shop-admin/internal/auth"
	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

type DocumentStore interface {
	ReadCollection(ctx context.Context, collection string) ([]entities.Document, error)

	// Writes are not retried: a full overwrite is idempotent, but a half
	// finished delete is not.
	DeleteCollection(ctx context.Context, collection string) (int, error)
	WriteDocument(ctx context.Context, collection, id string, doc entities.Document) error
}

type SheetReader interface {
	ReadSpreadsheet(ctx context.Context, spreadsheetID string) ([]*table.Table, error)
}

type Publisher interface {
	Publish(ctx context.Context, title string, tabs []*table.Table, shareWith []string) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.Event) error
}

type AdminLister interface {
	AllowedAdmins(ctx context.Context) ([]string, error)
}

type AdminInvalidator interface {
	Invalidate()
}

// spreadsheetTitle is "<prefix>@<local time>", the format admins sort their Drive by.
func spreadsheetTitle(prefix string, now time.Time) string {
	return prefix + "@" + now.Format("2006-01-02 15:04:05")
}

// publishEvent never fails the operation it reports on.
func publishEvent(ctx context.Context, logger *slog.Logger, events EventPublisher, typ entities.EventType, details map[string]any) {
	event := entities.Event{
		ID:      uuid.NewString(),
		Type:    typ,
		Actor:   auth.EmailFromContext(ctx),
		At:      time.Now().UTC(),
		Details: details,
	}
	if err := events.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish event", "type", typ, "error", err)
	}
}
