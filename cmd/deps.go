package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SergeyBogomolovv/shop-admin/internal/config"
	"github.com/SergeyBogomolovv/shop-admin/internal/events"
	"github.com/SergeyBogomolovv/shop-admin/internal/firestore"
	"github.com/SergeyBogomolovv/shop-admin/internal/handler"
	"github.com/SergeyBogomolovv/shop-admin/internal/postgres"
	"github.com/SergeyBogomolovv/shop-admin/internal/report"
	"github.com/SergeyBogomolovv/shop-admin/internal/repo"
	"github.com/SergeyBogomolovv/shop-admin/internal/service"
	"github.com/SergeyBogomolovv/shop-admin/internal/sheets"
	"github.com/SergeyBogomolovv/shop-admin/pkg/cache"
	"github.com/SergeyBogomolovv/shop-admin/pkg/trm"
	"github.com/SergeyBogomolovv/shop-admin/pkg/utils"
)

type eventPublisher interface {
	service.EventPublisher
	io.Closer
}

// deps holds the collaborators shared by every command.
type deps struct {
	conf   config.Config
	logger *slog.Logger

	store      service.DocumentStore
	txManager  trm.Manager
	events     eventPublisher
	adminCache *cache.LRUCache[[]string]
	admins     interface {
		service.AdminLister
		service.AdminInvalidator
		IsAdmin(ctx context.Context, email string) (bool, error)
	}
	retry    utils.RetryConfig
	location *time.Location

	sheets  *sheets.Client
	closers []io.Closer
}

func newDeps(ctx context.Context, conf config.Config, logger *slog.Logger) (*deps, error) {
	d := &deps{
		conf:   conf,
		logger: logger,
		retry: utils.RetryConfig{
			MaxAttempts:  conf.Google.RetryAttempts,
			InitialDelay: conf.Google.RetryDelay,
			MaxDelay:     10 * time.Second,
			Multiplier:   2,
		},
	}

	loc, err := time.LoadLocation(conf.Export.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	d.location = loc

	switch conf.Store.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(ctx, conf.Postgres)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, db)
		logger.Info("postgres connected")

		pgRepo := repo.NewPostgresRepo(db)
		if err := pgRepo.Migrate(ctx); err != nil {
			d.Close()
			return nil, err
		}
		d.store = pgRepo
		d.txManager = trm.NewManager(db)
	case config.DriverFirestore:
		client, err := firestore.New(ctx, conf.Firestore, conf.Google)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, client)
		logger.Info("firestore connected", "project", conf.Firestore.ProjectID)

		d.store = repo.NewFirestoreRepo(client)
		d.txManager = trm.NewNopManager()
	default:
		return nil, fmt.Errorf("unknown store driver %q", conf.Store.Driver)
	}

	if conf.Kafka.Enabled {
		d.events = events.NewKafkaPublisher(logger, conf.Kafka)
	} else {
		d.events = events.NewNopPublisher()
	}
	d.closers = append(d.closers, d.events)

	d.adminCache = cache.NewLRUCache[[]string](1, conf.Auth.AdminCacheTTL)
	d.admins = service.NewAdminService(logger, d.store, d.adminCache, d.retry)

	return d, nil
}

// sheetsClient connects to Google Sheets on first use.
func (d *deps) sheetsClient(ctx context.Context) (*sheets.Client, error) {
	if d.sheets != nil {
		return d.sheets, nil
	}
	client, err := sheets.New(ctx, d.conf.Google, d.logger)
	if err != nil {
		return nil, err
	}
	d.sheets = client
	return client, nil
}

func (d *deps) catalogService(reader service.SheetReader, source string) handler.CatalogSyncer {
	return service.NewCatalogService(d.logger, d.txManager, d.store, reader, source, d.admins, d.events, d.retry)
}

func (d *deps) exportService(publisher service.Publisher) (handler.OrderExporter, error) {
	rate, err := decimal.NewFromString(d.conf.Export.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("invalid commission rate: %w", err)
	}

	opts := service.ExportOptions{
		TitlePrefix: d.conf.Export.TitlePrefix,
		Report: report.Options{
			FrontendBaseURL:  d.conf.Export.FrontendURL,
			CommissionRate:   rate,
			CommissionExempt: d.conf.Export.CommissionExempt,
			StockLocations:   stockLocations(d.conf.Export.StockLocations),
			Location:         d.location,
		},
	}
	return service.NewExportService(d.logger, d.store, publisher, d.admins, d.events, opts, d.retry), nil
}

func (d *deps) backupService(publisher service.Publisher) handler.BackupCreator {
	return service.NewBackupService(d.logger, d.store, publisher, d.admins, d.events, d.conf.Export.TitlePrefix, d.location, d.retry)
}

// Close releases connections in reverse order of creation.
func (d *deps) Close() error {
	var first error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	d.closers = nil
	return first
}

// stockLocations parses "key:label" pairs.
func stockLocations(pairs []string) []report.StockLocation {
	out := make([]report.StockLocation, 0, len(pairs))
	for _, p := range pairs {
		key, label, _ := strings.Cut(p, ":")
		out = append(out, report.StockLocation{Key: strings.TrimSpace(key), Label: strings.TrimSpace(label)})
	}
	return out
}
