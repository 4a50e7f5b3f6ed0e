package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/internal/report"
	"github.com/SergeyBogomolovv/shop-admin/internal/repo"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
	"github.com/SergeyBogomolovv/shop-admin/pkg/utils"
)

type backupService struct {
	logger      *slog.Logger
	store       DocumentStore
	publisher   Publisher
	admins      AdminLister
	events      EventPublisher
	titlePrefix string
	location    *time.Location
	now         func() time.Time
	retry       utils.RetryConfig
}

func NewBackupService(
	logger *slog.Logger,
	store DocumentStore,
	publisher Publisher,
	admins AdminLister,
	events EventPublisher,
	titlePrefix string,
	location *time.Location,
	retry utils.RetryConfig,
) *backupService {
	if location == nil {
		location = time.Local
	}
	return &backupService{
		logger:      logger.With(slog.String("service", "backup")),
		store:       store,
		publisher:   publisher,
		admins:      admins,
		events:      events,
		titlePrefix: titlePrefix,
		location:    location,
		now:         time.Now,
		retry:       retry,
	}
}

// Backup dumps every collection into one tab each and publishes the result.
func (s *backupService) Backup(ctx context.Context) (url string, err error) {
	start := time.Now()
	defer func() { observe("backup", start, err) }()

	collections := repo.BackupCollections
	tabs := make([]*table.Table, len(collections))
	var adminEmails []string

	g, gctx := errgroup.WithContext(ctx)
	for i, collection := range collections {
		g.Go(func() error {
			var docs []entities.Document
			fn := func() error {
				var err error
				docs, err = s.store.ReadCollection(gctx, collection)
				return err
			}
			if err := utils.Retry(gctx, s.retry, fn); err != nil {
				return fmt.Errorf("failed to read %s: %w", collection, err)
			}
			tabs[i] = report.BackupTable(collection, docs)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		adminEmails, err = s.admins.AllowedAdmins(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	for _, t := range tabs {
		s.logger.DebugContext(ctx, "collection backed up", "collection", t.Name, "documents", t.Len())
	}

	title := spreadsheetTitle(s.titlePrefix+"-backup", s.now().In(s.location))
	url, err = s.publisher.Publish(ctx, title, tabs, adminEmails)
	if err != nil {
		return "", fmt.Errorf("failed to publish backup: %w", err)
	}

	s.logger.InfoContext(ctx, "backup created", "collections", len(tabs), "url", url)
	publishEvent(ctx, s.logger, s.events, entities.EventBackupCreated, map[string]any{
		"collections": len(tabs),
		"url":         url,
	})
	return url, nil
}
