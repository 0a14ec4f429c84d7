package order

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

const MaxQuantity = 1000

// MaxTotal is the largest value a numeric(12,2) total column holds.
var MaxTotal = decimal.RequireFromString("9999999999.99")

// ItemInput is one cart entry as sent by the client. A nil Qty means 1.
type ItemInput struct {
	ServiceID uint
	Qty       *int
}

type Line struct {
	ServiceID uint
	Qty       int
}

// NormalizeItems validates the cart and applies the default quantity.
func NormalizeItems(items []ItemInput) ([]Line, error) {
	if len(items) == 0 {
		return nil, httperr.ErrBusiness("missing_items")
	}

	lines := make([]Line, 0, len(items))
	for _, it := range items {
		if it.ServiceID == 0 {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		qty := 1
		if it.Qty != nil {
			qty = *it.Qty
		}
		if qty <= 0 || qty > MaxQuantity {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}
		lines = append(lines, Line{ServiceID: it.ServiceID, Qty: qty})
	}
	return lines, nil
}

func ServiceIDs(lines []Line) []uint {
	seen := make(map[uint]struct{}, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ServiceID]; ok {
			continue
		}
		seen[l.ServiceID] = struct{}{}
		ids = append(ids, l.ServiceID)
	}
	return ids
}

// PriceLines snapshots the catalog price of every line and returns the
// items with the order total. Every service must exist, be active and
// belong to merchantID.
func PriceLines(
	merchantID uint,
	lines []Line,
	catalog map[uint]models.Service,
) ([]models.OrderItem, decimal.Decimal, error) {

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))

	for _, l := range lines {
		svc, ok := catalog[l.ServiceID]
		if !ok {
			return nil, decimal.Zero, httperr.ErrBusiness("service_not_found")
		}
		if svc.MerchantID != merchantID {
			return nil, decimal.Zero, httperr.ErrBusiness("service_merchant_mismatch")
		}
		if !svc.Active {
			return nil, decimal.Zero, httperr.ErrBusiness("service_inactive")
		}

		total = total.Add(svc.Price.Mul(decimal.NewFromInt(int64(l.Qty))))
		items = append(items, models.OrderItem{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Qty:       l.Qty,
			Price:     svc.Price,
		})
	}

	if total.GreaterThan(MaxTotal) {
		return nil, decimal.Zero, httperr.ErrBusiness("order_total_too_large")
	}

	return items, total, nil
}
