package report

import (
	"github.com/shopspring/decimal"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

const (
	colDate          = "תאריך"
	colPickup        = "נקודת חלוקה"
	colFirstName     = "שם פרטי"
	colLastName      = "שם משפחה"
	colAfterDiscount = "מחיר לאחר הנחה"
	colItemCount     = "כמות פריטים"
	colPhone         = "טלפון נייד"
	colComments      = "הערות"
	colPacked        = "האם נארז"
	colPaymentMethod = "אמצעי תשלום"
	colPaidTo        = "למי שולם"
	colEmail         = "כתובת מייל"
	colOrderLink     = "קישור להזמנה"
	colSaleName      = "שם מכירה"
	colBeforeDisc    = "מחיר לפני הנחה"

	colProduct        = "המוצר"
	colAmount         = "כמות"
	colOrderItemCount = "כמות פריטים בהזמנה"
	colLinePacked     = "ארוז"
	colSupplier       = "ספק"

	colCommission = "עמלה"
	colOrderCount = "מספר הזמנות"
	colPayTo      = "למי לשלם"
)

func OrdersTable(orders []entities.Order, baseURL string) *table.Table {
	t := table.New(TabOrders,
		colDate, colPickup, colFirstName, colLastName, colAfterDiscount, colItemCount,
		colPhone, colComments, colPacked, colPaymentMethod, colPaidTo, colEmail,
		colOrderLink, colSaleName, colBeforeDisc,
	)
	for _, o := range orders {
		t.Append(
			o.Date, o.PickupLocation, o.FirstName, o.LastName, o.TotalAfterDiscount, o.ItemCount(),
			o.Phone, o.Comments, "", "", "", o.Email,
			OrderLink(baseURL, o.ID), o.SaleName, o.TotalCost,
		)
	}
	t.SortBy(colPickup, colLastName, colFirstName)
	return t
}

// PackingLine is one purchased line item, flattened with its order's contact data.
type PackingLine struct {
	FirstName          string
	LastName           string
	Phone              string
	PickupLocation     string
	Product            string
	Amount             int
	OrderItemCount     int
	TotalAfterDiscount decimal.Decimal
	Supplier           string
}

func PackingLines(orders []entities.Order, products []entities.Product) []PackingLine {
	byID := productIndex(products)

	var lines []PackingLine
	for _, o := range orders {
		count := o.ItemCount()
		for _, l := range o.Lines {
			lines = append(lines, PackingLine{
				FirstName:          o.FirstName,
				LastName:           o.LastName,
				Phone:              o.Phone,
				PickupLocation:     o.PickupLocation,
				Product:            describe(l, byID),
				Amount:             l.Amount,
				OrderItemCount:     count,
				TotalAfterDiscount: o.TotalAfterDiscount,
				Supplier:           l.Product.Supplier,
			})
		}
	}
	return lines
}

func PackagingTable(lines []PackingLine) *table.Table {
	t := table.New(TabPackaging,
		colFirstName, colLastName, colPhone, colPickup, colProduct, colAmount,
		colOrderItemCount, colAfterDiscount, colLinePacked, colSupplier,
	)
	for _, l := range lines {
		t.Append(
			l.FirstName, l.LastName, l.Phone, l.PickupLocation, l.Product, l.Amount,
			l.OrderItemCount, l.TotalAfterDiscount, "", l.Supplier,
		)
	}
	t.SortBy(colPickup, colLastName, colFirstName, colProduct)
	return t
}

// PickupTotal aggregates the orders of one pickup location.
type PickupTotal struct {
	PickupLocation     string
	TotalCost          decimal.Decimal
	TotalAfterDiscount decimal.Decimal
	ItemCount          int
	Commission         decimal.Decimal
	OrderCount         int
}

// PickupTotals groups orders by pickup location in first-seen order.
// Commission is rate times the post-discount total.
func PickupTotals(orders []entities.Order, rate decimal.Decimal) []PickupTotal {
	var totals []PickupTotal
	pos := make(map[string]int)

	for _, o := range orders {
		i, ok := pos[o.PickupLocation]
		if !ok {
			i = len(totals)
			pos[o.PickupLocation] = i
			totals = append(totals, PickupTotal{PickupLocation: o.PickupLocation})
		}
		t := &totals[i]
		t.TotalCost = t.TotalCost.Add(o.TotalCost)
		t.TotalAfterDiscount = t.TotalAfterDiscount.Add(o.TotalAfterDiscount)
		t.ItemCount += o.ItemCount()
		t.OrderCount++
	}

	for i := range totals {
		totals[i].Commission = totals[i].TotalAfterDiscount.Mul(rate)
	}
	return totals
}

func PickupsTable(totals []PickupTotal) *table.Table {
	t := table.New(TabPickups,
		colPickup, colBeforeDisc, colAfterDiscount, colItemCount, colCommission, colOrderCount, colPayTo,
	)
	for _, p := range totals {
		t.Append(p.PickupLocation, p.TotalCost, p.TotalAfterDiscount, p.ItemCount, p.Commission, p.OrderCount, "")
	}
	t.SortBy(colPickup)
	return t
}
