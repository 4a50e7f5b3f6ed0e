package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/table"
)

const (
	colKey   = "נתון"
	colValue = "ערך"
)

// SaleTimeLayout is how sale windows are written in the catalog sheet.
const SaleTimeLayout = "02/01/2006 15:04"

type Summary struct {
	CurrentSale        string
	OrderCount         int
	SupplierCost       decimal.Decimal
	Revenue            decimal.Decimal
	RevenueAfterDisc   decimal.Decimal
	PayableCommissions decimal.Decimal
	Profit             decimal.Decimal
}

// Summarize totals the report. Commissions of pickup locations whose name
// contains any of exempt are not paid out and do not reduce the profit.
func Summarize(orders []entities.Order, pickups []PickupTotal, suppliers []SupplierLine, exempt []string) Summary {
	s := Summary{OrderCount: len(orders)}

	for _, l := range suppliers {
		s.SupplierCost = s.SupplierCost.Add(l.Cost)
	}
	for _, o := range orders {
		s.Revenue = s.Revenue.Add(o.TotalCost)
		s.RevenueAfterDisc = s.RevenueAfterDisc.Add(o.TotalAfterDiscount)
	}
	for _, p := range pickups {
		if isExempt(p.PickupLocation, exempt) {
			continue
		}
		s.PayableCommissions = s.PayableCommissions.Add(p.Commission)
	}

	s.Profit = s.RevenueAfterDisc.Sub(s.SupplierCost).Sub(s.PayableCommissions)
	return s
}

func isExempt(pickup string, exempt []string) bool {
	for _, e := range exempt {
		if e != "" && strings.Contains(pickup, e) {
			return true
		}
	}
	return false
}

func SummaryTable(s Summary, exempt []string) *table.Table {
	commissionLabel := "סכום עמלות"
	if len(exempt) > 0 {
		commissionLabel += " ללא " + strings.Join(exempt, " ו")
	}

	t := table.New(TabSummary, colKey, colValue)
	t.Append("מכירה נוכחית", s.CurrentSale)
	t.Append("כמות הזמנות", s.OrderCount)
	t.Append("עלות ספקים", s.SupplierCost.Round(2))
	t.Append("סכום הזמנות", s.Revenue.Round(2))
	t.Append("סכום הזמנות לאחר הנחה", s.RevenueAfterDisc.Round(2))
	t.Append(commissionLabel, s.PayableCommissions.Round(2))
	t.Append("רווח", s.Profit.Round(2))
	return t
}

// CurrentSale returns the name of the first sale whose window contains now.
// Sales with unparsable dates are ignored.
func CurrentSale(sales []entities.Sale, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	for _, s := range sales {
		start, err := time.ParseInLocation(SaleTimeLayout, s.Start, loc)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(SaleTimeLayout, s.End, loc)
		if err != nil {
			continue
		}
		if !now.Before(start) && !now.After(end) {
			return s.Name
		}
	}
	return ""
}
