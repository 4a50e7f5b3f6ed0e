package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SergeyBogomolovv/shop-admin/internal/config"
	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/internal/firestore"
	"github.com/SergeyBogomolovv/shop-admin/internal/postgres"
	"github.com/SergeyBogomolovv/shop-admin/internal/repo"
)

type store interface {
	ReadCollection(ctx context.Context, collection string) ([]entities.Document, error)
	WriteDocument(ctx context.Context, collection, id string, doc entities.Document) error
}

var (
	firstNames = []string{"נועה", "מיכל", "שירה", "יעל", "תמר", "רחל"}
	lastNames  = []string{"כהן", "לוי", "מזרחי", "פרץ", "ביטון", "אברהם"}
	comments   = []string{"", "", "להתקשר לפני", "מידה גדולה בבקשה"}
)

func main() {
	godotenv.Load()

	var (
		count    int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "order-generator",
		Short: "Write random orders built from the synced catalog into the document store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), count, interval)
		},
	}
	cmd.Flags().IntVar(&count, "count", 20, "number of orders to write")
	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between orders")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, count int, interval time.Duration) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	products, err := s.ReadCollection(ctx, repo.CollectionProducts)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("no products found, run sync first")
	}
	pickups, err := s.ReadCollection(ctx, repo.CollectionPickups)
	if err != nil {
		return err
	}
	sales, err := s.ReadCollection(ctx, repo.CollectionSales)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		order := generateRandomOrder(products, pickups, sales)
		if err := s.WriteDocument(ctx, repo.CollectionOrders, order.String("id"), order); err != nil {
			return err
		}
		slog.Info("order generated", "id", order.String("id"), "total", order.String("totalCostAfterDiscount"))

		if interval > 0 {
			select {
			case <-time.After(interval):
			case <-ctx.Done():
				return nil
			}
		}
	}
	return nil
}

func openStore(ctx context.Context, cfg config.Config) (store, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		r := repo.NewPostgresRepo(db)
		if err := r.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return r, func() { db.Close() }, nil
	default:
		client, err := firestore.New(ctx, cfg.Firestore, cfg.Google)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewFirestoreRepo(client), func() { client.Close() }, nil
	}
}

func generateRandomOrder(products, pickups, sales []entities.Document) entities.Document {
	var lines []any
	total := decimal.Zero
	for range rand.Intn(3) + 1 {
		product := withoutID(products[rand.Intn(len(products))])
		amount := rand.Intn(4) + 1
		total = total.Add(product.Decimal("price").Mul(decimal.NewFromInt(int64(amount))))
		lines = append(lines, map[string]any{"amount": amount, "product": map[string]any(product)})
	}
	discount := decimal.NewFromInt(int64(rand.Intn(15))).Div(decimal.NewFromInt(100))
	afterDiscount := total.Sub(total.Mul(discount)).Round(2)

	pickup := "מרכז"
	if len(pickups) > 0 {
		pickup = pickups[rand.Intn(len(pickups))].String("name")
	}
	saleName := ""
	if len(sales) > 0 {
		saleName = sales[rand.Intn(len(sales))].String("name")
	}

	id := uuid.NewString()
	return entities.Document{
		"id":                      id,
		"date":                    time.Now().Format("02/01/2006 15:04"),
		"comments":                comments[rand.Intn(len(comments))],
		"email":                   fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		"firstName":               firstNames[rand.Intn(len(firstNames))],
		"lastName":                lastNames[rand.Intn(len(lastNames))],
		"phoneNumber":             fmt.Sprintf("05%08d", rand.Intn(100000000)),
		"prefferedPickupLocation": pickup,
		"saleName":                saleName,
		"totalCost":               total.InexactFloat64(),
		"totalCostAfterDiscount":  afterDiscount.InexactFloat64(),
		"products":                lines,
	}
}

func withoutID(d entities.Document) entities.Document {
	out := d.Clone()
	delete(out, entities.IDField)
	return out
}
