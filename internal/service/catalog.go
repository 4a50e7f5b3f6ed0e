package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-admin/internal/catalog"
	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
	"github.com/SergeyBogomolovv/shop-admin/pkg/trm"
	"github.com/SergeyBogomolovv/shop-admin/pkg/utils"
)

type catalogService struct {
	logger    *slog.Logger
	txManager trm.Manager
	store     DocumentStore
	reader    SheetReader
	source    string
	admins    AdminInvalidator
	events    EventPublisher
	retry     utils.RetryConfig
}

// NewCatalogService syncs the catalog spreadsheet identified by source into store.
func NewCatalogService(
	logger *slog.Logger,
	txManager trm.Manager,
	store DocumentStore,
	reader SheetReader,
	source string,
	admins AdminInvalidator,
	events EventPublisher,
	retry utils.RetryConfig,
) *catalogService {
	return &catalogService{
		logger:    logger.With(slog.String("service", "catalog")),
		txManager: txManager,
		store:     store,
		reader:    reader,
		source:    source,
		admins:    admins,
		events:    events,
		retry:     retry,
	}
}

// Sync replaces the synced collections with the content of the spreadsheet.
// Rows are validated before anything is deleted.
func (s *catalogService) Sync(ctx context.Context) (res entities.SyncResult, err error) {
	start := time.Now()
	defer func() { observe("sync", start, err) }()

	var tabs []*table.Table
	fn := func() error {
		var err error
		tabs, err = s.reader.ReadSpreadsheet(ctx, s.source)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return entities.SyncResult{}, fmt.Errorf("failed to read catalog spreadsheet: %w", err)
	}

	writes, skipped, err := catalog.Plan(tabs)
	if err != nil {
		return entities.SyncResult{}, err
	}
	for _, tab := range skipped {
		s.logger.WarnContext(ctx, "skipping tab without id rule", "tab", tab)
	}

	written := make(map[string]int)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		clear(written)
		for _, collection := range catalog.SyncedCollections {
			n, err := s.store.DeleteCollection(ctx, collection)
			if err != nil {
				return err
			}
			s.logger.DebugContext(ctx, "collection cleared", "collection", collection, "deleted", n)
		}

		for _, w := range writes {
			if err := s.store.WriteDocument(ctx, w.Collection, w.ID, w.Doc); err != nil {
				return err
			}
			written[w.Collection]++
		}
		return nil
	})
	if err != nil {
		return entities.SyncResult{}, fmt.Errorf("failed to sync catalog: %w", err)
	}

	s.admins.Invalidate()

	for collection, n := range written {
		documentsWritten.WithLabelValues(collection).Add(float64(n))
	}
	tabsSkipped.Add(float64(len(skipped)))

	res = entities.SyncResult{Written: written, Skipped: skipped}
	s.logger.InfoContext(ctx, "catalog synced", "written", written, "skipped", skipped)
	publishEvent(ctx, s.logger, s.events, entities.EventCatalogSynced, map[string]any{
		"written": written,
		"skipped": skipped,
	})
	return res, nil
}
