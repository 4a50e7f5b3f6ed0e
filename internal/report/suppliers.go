package report

import (
	"github.com/shopspring/decimal"

	"github.com/SergeyBogomolovv/shop-admin/internal/catalog"
	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

const (
	colStockPrefix    = "מלאי "
	colUnitsInPackage = "יחידות באריזה"
	colUnitPrice      = "מחיר ליחידה"
	colTotalStock     = "מלאי כולל"
	colUnitsToOrder   = "כמה יחידות להזמין"
	colPackages       = "כמה אריזות להזמין"
	colOrderQuantity  = "כמות להזמנה"
	colSpare          = "ספייר"
	colCost           = "עלות"
)

// SupplierLine is the reorder calculation for one product of one supplier.
type SupplierLine struct {
	Supplier       string
	Product        string
	Quantity       int
	Stock          []int
	TotalStock     int
	UnitsInPackage int
	UnitPrice      decimal.Decimal
	UnitsToOrder   int
	Packages       int
	OrderQuantity  int
	Spare          int
	Cost           decimal.Decimal
}

// ReorderPackages is the number of whole packages covering units.
// A package size of zero or less orders nothing.
func ReorderPackages(units, packageSize int) int {
	if units <= 0 || packageSize <= 0 {
		return 0
	}
	return (units + packageSize - 1) / packageSize
}

type supplierKey struct {
	supplier string
	product  string
}

// SupplierLines sums packing quantities per (supplier, product) and joins each
// group to the first catalog product with the same description and supplier.
func SupplierLines(packing []PackingLine, products []entities.Product, locations []StockLocation) []SupplierLine {
	catalogByKey := make(map[supplierKey]entities.Product, len(products))
	for _, p := range products {
		k := supplierKey{supplier: p.Supplier, product: catalog.ShortDescription(p)}
		if _, ok := catalogByKey[k]; !ok {
			catalogByKey[k] = p
		}
	}

	var lines []SupplierLine
	pos := make(map[supplierKey]int)
	for _, pl := range packing {
		k := supplierKey{supplier: pl.Supplier, product: pl.Product}
		i, ok := pos[k]
		if !ok {
			i = len(lines)
			pos[k] = i
			lines = append(lines, SupplierLine{Supplier: pl.Supplier, Product: pl.Product})
		}
		lines[i].Quantity += pl.Amount
	}

	for i := range lines {
		l := &lines[i]
		p, found := catalogByKey[supplierKey{supplier: l.Supplier, product: l.Product}]

		l.Stock = make([]int, len(locations))
		if found {
			for j, loc := range locations {
				l.Stock[j] = p.Stock(loc.Key)
				l.TotalStock += l.Stock[j]
			}
			l.UnitsInPackage = p.UnitsInPackage
			l.UnitPrice = p.Price
		}

		l.UnitsToOrder = max(l.Quantity-l.TotalStock, 0)
		l.Packages = ReorderPackages(l.UnitsToOrder, l.UnitsInPackage)
		l.OrderQuantity = l.Packages * l.UnitsInPackage
		if l.UnitsInPackage > 0 {
			l.Spare = l.OrderQuantity - l.UnitsToOrder
		}
		l.Cost = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.OrderQuantity)))
	}
	return lines
}

func SuppliersTable(lines []SupplierLine, locations []StockLocation) *table.Table {
	cols := []string{colSupplier, colProduct, colAmount}
	for _, loc := range locations {
		cols = append(cols, colStockPrefix+loc.Label)
	}
	cols = append(cols,
		colUnitsInPackage, colUnitPrice, colTotalStock, colUnitsToOrder,
		colPackages, colOrderQuantity, colSpare, colCost,
	)

	t := table.New(TabSuppliers, cols...)
	for _, l := range lines {
		row := []any{l.Supplier, l.Product, l.Quantity}
		for _, s := range l.Stock {
			row = append(row, s)
		}
		row = append(row,
			l.UnitsInPackage, l.UnitPrice, l.TotalStock, l.UnitsToOrder,
			l.Packages, l.OrderQuantity, l.Spare, l.Cost,
		)
		t.Append(row...)
	}
	t.SortBy(colSupplier, colProduct)
	return t
}
