// Package report reshapes orders and the product catalog into the tabs of the
// fulfillment and accounting spreadsheet.
package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SergeyBogomolovv/shop-admin/internal/catalog"
	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

// Tab names.
const (
	TabOrders    = "הזמנות"
	TabPackaging = "אריזות"
	TabPickups   = "מכירות לפי ישוב"
	TabSuppliers = "ספקים"
	TabSummary   = "כללי"
)

// StockLocation is a place that holds stock, read from the stock_<Key> field.
type StockLocation struct {
	Key   string
	Label string
}

type Options struct {
	FrontendBaseURL  string
	CommissionRate   decimal.Decimal
	CommissionExempt []string
	StockLocations   []StockLocation
	Now              time.Time
	Location         *time.Location
}

type Input struct {
	Orders   []entities.Order
	Products []entities.Product
	Sales    []entities.Sale
}

type Report struct {
	Orders    *table.Table
	Packaging *table.Table
	Pickups   *table.Table
	Suppliers *table.Table
	Summary   *table.Table
}

func (r Report) Tabs() []*table.Table {
	return []*table.Table{r.Orders, r.Packaging, r.Pickups, r.Suppliers, r.Summary}
}

func Build(in Input, opts Options) Report {
	packing := PackingLines(in.Orders, in.Products)
	pickups := PickupTotals(in.Orders, opts.CommissionRate)
	suppliers := SupplierLines(packing, in.Products, opts.StockLocations)
	summary := Summarize(in.Orders, pickups, suppliers, opts.CommissionExempt)
	summary.CurrentSale = CurrentSale(in.Sales, opts.Now, opts.Location)

	return Report{
		Orders:    OrdersTable(in.Orders, opts.FrontendBaseURL),
		Packaging: PackagingTable(packing),
		Pickups:   PickupsTable(pickups),
		Suppliers: SuppliersTable(suppliers, opts.StockLocations),
		Summary:   SummaryTable(summary, opts.CommissionExempt),
	}
}

// OrderLink is the storefront page of an order.
func OrderLink(baseURL, orderID string) string {
	return strings.TrimRight(baseURL, "/") + "/order/" + orderID
}

// productIndex resolves catalog products by ID, keeping the first of duplicates.
func productIndex(products []entities.Product) map[string]entities.Product {
	idx := make(map[string]entities.Product, len(products))
	for _, p := range products {
		if _, ok := idx[p.ID]; !ok {
			idx[p.ID] = p
		}
	}
	return idx
}

func describe(line entities.OrderLine, byID map[string]entities.Product) string {
	if p, ok := byID[line.Product.ID]; ok {
		return catalog.ShortDescription(p)
	}
	return catalog.ShortDescription(line.Product)
}
