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
	"github.com/SergeyBogomolovv/shop-admin/pkg/utils"
)

type ExportOptions struct {
	TitlePrefix string
	Report      report.Options
	Now         func() time.Time
}

type exportService struct {
	logger    *slog.Logger
	store     DocumentStore
	publisher Publisher
	admins    AdminLister
	events    EventPublisher
	opts      ExportOptions
	retry     utils.RetryConfig
}

func NewExportService(
	logger *slog.Logger,
	store DocumentStore,
	publisher Publisher,
	admins AdminLister,
	events EventPublisher,
	opts ExportOptions,
	retry utils.RetryConfig,
) *exportService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Report.Location == nil {
		opts.Report.Location = time.Local
	}
	return &exportService{
		logger:    logger.With(slog.String("service", "export")),
		store:     store,
		publisher: publisher,
		admins:    admins,
		events:    events,
		opts:      opts,
		retry:     retry,
	}
}

// Export builds the orders report and publishes it, shared with every admin.
// It returns where the report was published.
func (s *exportService) Export(ctx context.Context) (url string, err error) {
	start := time.Now()
	defer func() { observe("export", start, err) }()

	var orders, products, sales []entities.Document
	var adminEmails []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.read(gctx, repo.CollectionOrders, &orders) })
	g.Go(func() error { return s.read(gctx, repo.CollectionProducts, &products) })
	g.Go(func() error { return s.read(gctx, repo.CollectionSales, &sales) })
	g.Go(func() error {
		var err error
		adminEmails, err = s.admins.AllowedAdmins(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	in := report.Input{
		Orders:   make([]entities.Order, 0, len(orders)),
		Products: make([]entities.Product, 0, len(products)),
		Sales:    make([]entities.Sale, 0, len(sales)),
	}
	for _, d := range orders {
		in.Orders = append(in.Orders, entities.OrderFromDocument(d))
	}
	for _, d := range products {
		in.Products = append(in.Products, entities.ProductFromDocument(d))
	}
	for _, d := range sales {
		in.Sales = append(in.Sales, entities.SaleFromDocument(d))
	}

	now := s.opts.Now().In(s.opts.Report.Location)
	opts := s.opts.Report
	opts.Now = now

	rep := report.Build(in, opts)
	title := spreadsheetTitle(s.opts.TitlePrefix, now)

	url, err = s.publisher.Publish(ctx, title, rep.Tabs(), adminEmails)
	if err != nil {
		return "", fmt.Errorf("failed to publish report: %w", err)
	}

	s.logger.InfoContext(ctx, "orders exported", "orders", len(in.Orders), "url", url)
	publishEvent(ctx, s.logger, s.events, entities.EventOrdersExported, map[string]any{
		"orders": len(in.Orders),
		"url":    url,
	})
	return url, nil
}

func (s *exportService) read(ctx context.Context, collection string, dst *[]entities.Document) error {
	fn := func() error {
		var err error
		*dst, err = s.store.ReadCollection(ctx, collection)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return fmt.Errorf("failed to read %s: %w", collection, err)
	}
	return nil
}
