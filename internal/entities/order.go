package entities

import "github.com/shopspring/decimal"

type Order struct {
	ID                 string
	Date               string
	Comments           string
	Email              string
	FirstName          string
	LastName           string
	Phone              string
	PickupLocation     string
	SaleName           string
	TotalCost          decimal.Decimal
	TotalAfterDiscount decimal.Decimal
	Lines              []OrderLine
}

type OrderLine struct {
	Amount  int
	Product Product
}

// OrderFromDocument maps a stored order; the field names are the ones the
// storefront writes, including its "prefferedPickupLocation" spelling.
func OrderFromDocument(d Document) Order {
	o := Order{
		ID:                 d.String("id"),
		Date:               d.String("date"),
		Comments:           d.String("comments"),
		Email:              d.String("email"),
		FirstName:          d.String("firstName"),
		LastName:           d.String("lastName"),
		Phone:              d.String("phoneNumber"),
		PickupLocation:     d.String("prefferedPickupLocation"),
		SaleName:           d.String("saleName"),
		TotalCost:          d.Decimal("totalCost"),
		TotalAfterDiscount: d.Decimal("totalCostAfterDiscount"),
	}
	if o.ID == "" {
		o.ID = d.String(IDField)
	}

	for _, raw := range d.List("products") {
		var line Document
		switch v := raw.(type) {
		case map[string]any:
			line = Document(v)
		case Document:
			line = v
		default:
			continue
		}
		o.Lines = append(o.Lines, OrderLine{
			Amount:  line.Int("amount"),
			Product: ProductFromDocument(line.Doc("product")),
		})
	}
	return o
}

// ItemCount is the total quantity across all lines.
func (o Order) ItemCount() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Amount
	}
	return n
}
