package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/internal/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tights(color string, stockLiron, pkg int, price string) entities.Product {
	return entities.ProductFromDocument(entities.Document{
		"id":               "tights_40_long_M_" + color,
		"kind":             "tights",
		"denier":           40,
		"leg":              "long",
		"size":             "M",
		"color":            color,
		"supplier":         "acme",
		"stock_liron":      stockLiron,
		"units_in_package": pkg,
		"price":            price,
	})
}

func order(id, pickup, last string, before, after string, lines ...entities.OrderLine) entities.Order {
	return entities.Order{
		ID:                 id,
		FirstName:          "Dana",
		LastName:           last,
		PickupLocation:     pickup,
		TotalCost:          dec(before),
		TotalAfterDiscount: dec(after),
		Lines:              lines,
	}
}

func TestPickupTotals(t *testing.T) {
	black := tights("black", 0, 12, "5")
	orders := []entities.Order{
		order("1", "ariel", "Cohen", "100", "90", entities.OrderLine{Amount: 2, Product: black}),
		order("2", "karnei", "Levi", "50.5", "45.25", entities.OrderLine{Amount: 1, Product: black}),
		order("3", "ariel", "Amar", "30", "27.5",
			entities.OrderLine{Amount: 3, Product: black},
			entities.OrderLine{Amount: 1, Product: black},
		),
	}

	totals := report.PickupTotals(orders, dec("0.1"))
	require.Len(t, totals, 2)

	ariel := totals[0]
	assert.Equal(t, "ariel", ariel.PickupLocation)
	assert.True(t, dec("130").Equal(ariel.TotalCost))
	assert.True(t, dec("117.5").Equal(ariel.TotalAfterDiscount))
	assert.Equal(t, 6, ariel.ItemCount)
	assert.Equal(t, 2, ariel.OrderCount)
	assert.True(t, dec("11.75").Equal(ariel.Commission), ariel.Commission.String())

	karnei := totals[1]
	assert.True(t, dec("4.525").Equal(karnei.Commission), karnei.Commission.String())
	assert.Equal(t, 1, karnei.OrderCount)
}

func TestPickupTotals_CommissionIsExactlyTenPercent(t *testing.T) {
	orders := []entities.Order{
		order("1", "ariel", "Cohen", "0", "33.33"),
		order("2", "ariel", "Levi", "0", "0.07"),
	}

	totals := report.PickupTotals(orders, dec("0.1"))
	require.Len(t, totals, 1)
	assert.Equal(t, "3.34", totals[0].Commission.String())
}

func TestReorderPackages(t *testing.T) {
	testCases := []struct {
		name  string
		units int
		size  int
		want  int
	}{
		{"exact multiple", 24, 12, 2},
		{"rounds up", 25, 12, 3},
		{"single unit", 1, 12, 1},
		{"nothing to order", 0, 12, 0},
		{"zero package size", 5, 0, 0},
		{"negative package size", 5, -3, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, report.ReorderPackages(tc.units, tc.size))
		})
	}
}

func TestSupplierLines(t *testing.T) {
	black := tights("black", 3, 12, "4.5")
	white := tights("white", 20, 6, "5")
	noPkg := tights("red", 0, 0, "7")
	locations := []report.StockLocation{{Key: "liron", Label: "לירון"}, {Key: "sharale", Label: "שהרלה"}}

	orders := []entities.Order{
		order("1", "ariel", "Cohen", "0", "0",
			entities.OrderLine{Amount: 10, Product: black},
			entities.OrderLine{Amount: 2, Product: white},
		),
		order("2", "ariel", "Levi", "0", "0",
			entities.OrderLine{Amount: 8, Product: black},
			entities.OrderLine{Amount: 4, Product: noPkg},
		),
	}
	products := []entities.Product{black, white, noPkg}

	packing := report.PackingLines(orders, products)
	lines := report.SupplierLines(packing, products, locations)
	require.Len(t, lines, 3)

	b := lines[0]
	assert.Equal(t, 18, b.Quantity)
	assert.Equal(t, []int{3, 0}, b.Stock)
	assert.Equal(t, 3, b.TotalStock)
	assert.Equal(t, 15, b.UnitsToOrder)
	assert.Equal(t, 2, b.Packages)
	assert.Equal(t, 24, b.OrderQuantity)
	assert.Equal(t, 9, b.Spare)
	assert.True(t, dec("108").Equal(b.Cost))

	w := lines[1]
	assert.Equal(t, 0, w.UnitsToOrder)
	assert.Equal(t, 0, w.Packages)
	assert.True(t, w.Cost.IsZero())

	r := lines[2]
	assert.Equal(t, 4, r.UnitsToOrder)
	assert.Equal(t, 0, r.Packages)
	assert.Equal(t, 0, r.OrderQuantity)
	assert.Equal(t, 0, r.Spare)
}

func TestSummarize(t *testing.T) {
	pickups := []report.PickupTotal{
		{PickupLocation: "ariel", Commission: dec("10")},
		{PickupLocation: "רבבה מרכז", Commission: dec("5")},
		{PickupLocation: "karnei", Commission: dec("2.5")},
	}
	suppliers := []report.SupplierLine{{Cost: dec("40")}, {Cost: dec("12.25")}}
	orders := []entities.Order{
		order("1", "ariel", "Cohen", "100", "90"),
		order("2", "karnei", "Levi", "80", "75"),
	}

	s := report.Summarize(orders, pickups, suppliers, []string{"רבבה", "יקיר"})

	assert.Equal(t, 2, s.OrderCount)
	assert.True(t, dec("52.25").Equal(s.SupplierCost))
	assert.True(t, dec("180").Equal(s.Revenue))
	assert.True(t, dec("165").Equal(s.RevenueAfterDisc))
	assert.True(t, dec("12.5").Equal(s.PayableCommissions))
	assert.True(t, dec("100.25").Equal(s.Profit), s.Profit.String())

	tab := report.SummaryTable(s, []string{"רבבה", "יקיר"})
	labels := tab.Column("נתון")
	assert.Contains(t, labels, "סכום עמלות ללא רבבה ויקיר")
	assert.Contains(t, labels, "רווח")
}

func TestCurrentSale(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	sales := []entities.Sale{
		{Name: "broken", Start: "soon", End: "later"},
		{Name: "winter", Start: "01/12/2025 08:00", End: "31/12/2025 20:00"},
		{Name: "spring", Start: "01/03/2026 08:00", End: "31/03/2026 20:00"},
	}

	testCases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"inside window", time.Date(2025, 12, 15, 12, 0, 0, 0, loc), "winter"},
		{"start is inclusive", time.Date(2026, 3, 1, 8, 0, 0, 0, loc), "spring"},
		{"end is inclusive", time.Date(2025, 12, 31, 20, 0, 0, 0, loc), "winter"},
		{"between sales", time.Date(2026, 1, 15, 12, 0, 0, 0, loc), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, report.CurrentSale(sales, tc.now, loc))
		})
	}
}

func TestBuild(t *testing.T) {
	black := tights("black", 0, 12, "5")
	orders := []entities.Order{
		order("b", "karnei", "Levi", "20", "18", entities.OrderLine{Amount: 1, Product: black}),
		order("a", "ariel", "Cohen", "40", "36", entities.OrderLine{Amount: 2, Product: black}),
	}

	r := report.Build(report.Input{Orders: orders, Products: []entities.Product{black}}, report.Options{
		FrontendBaseURL: "https://shop.example/",
		CommissionRate:  dec("0.1"),
		Now:             time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Location:        time.UTC,
	})

	tabs := r.Tabs()
	require.Len(t, tabs, 5)
	assert.Equal(t, report.TabOrders, tabs[0].Name)
	assert.Equal(t, report.TabSummary, tabs[4].Name)

	links := r.Orders.Column("קישור להזמנה")
	assert.Equal(t, []any{"https://shop.example/order/a", "https://shop.example/order/b"}, links)

	assert.Equal(t, 2, r.Packaging.Len())
	assert.Equal(t, []any{"ariel", "karnei"}, r.Pickups.Column("נקודת חלוקה"))
	assert.Equal(t, []any{"טייץ גרביון, 40 דניר, long רגל, מידה M, צבע black"}, r.Suppliers.Column("המוצר"))
}

func TestBackupTable(t *testing.T) {
	docs := []entities.Document{
		{entities.IDField: "o1", "name": "Dana", "products": []any{map[string]any{"amount": 1}}},
		{entities.IDField: "o2", "email": "x@y.z"},
	}

	tab := report.BackupTable("orders", docs)

	assert.Equal(t, "orders", tab.Name)
	assert.Equal(t, []string{"_id", "name", "products", "email"}, tab.Columns)
	assert.Equal(t, []any{"o1", "Dana", `[{"amount":1}]`, ""}, tab.Rows[0])
	assert.Equal(t, []any{"o2", "", "", "x@y.z"}, tab.Rows[1])
}
