package entities

import "github.com/shopspring/decimal"

// Kind is the product category discriminator.
type Kind string

const (
	KindTights  Kind = "tights"
	KindLace    Kind = "lace"
	KindShort   Kind = "short"
	KindThermal Kind = "thermal"
)

var ProductKinds = []Kind{KindTights, KindLace, KindShort, KindThermal}

func (k Kind) IsProduct() bool {
	for _, pk := range ProductKinds {
		if k == pk {
			return true
		}
	}
	return false
}

type Product struct {
	ID             string
	Kind           Kind
	Name           string
	Supplier       string
	Price          decimal.Decimal
	UnitsInPackage int

	// Attrs keeps the whole record: kind-specific attributes and stock columns.
	Attrs Document
}

func ProductFromDocument(d Document) Product {
	return Product{
		ID:             d.String("id"),
		Kind:           Kind(d.String("kind")),
		Name:           d.String("name"),
		Supplier:       d.String("supplier"),
		Price:          d.Decimal("price"),
		UnitsInPackage: d.Int("units_in_package"),
		Attrs:          d,
	}
}

func (p Product) Attr(name string) string {
	return p.Attrs.String(name)
}

// Stock returns the count held at a stock location, stored as stock_<location>.
func (p Product) Stock(location string) int {
	return p.Attrs.Int("stock_" + location)
}
