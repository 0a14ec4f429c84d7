package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

func intPtr(v int) *int { return &v }

func TestTransitionTable(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusPickedUp))
	assert.NoError(t, CanTransition(StatusPickedUp, StatusWashing))
	assert.NoError(t, CanTransition(StatusWashing, StatusReady))
	assert.NoError(t, CanTransition(StatusReady, StatusDelivered))

	rejected := [][2]Status{
		{StatusPending, StatusWashing},     // skip
		{StatusReady, StatusPending},       // backward
		{StatusWashing, StatusWashing},     // no-op
		{StatusDelivered, StatusPending},   // terminal
		{StatusDelivered, StatusDelivered}, // terminal
	}
	for _, tr := range rejected {
		err := CanTransition(tr[0], tr[1])
		require.Error(t, err, "%s -> %s", tr[0], tr[1])
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	}

	assert.True(t, IsTerminal(StatusDelivered))
	assert.False(t, IsTerminal(StatusPending))

	next, ok := Next(StatusWashing)
	assert.True(t, ok)
	assert.Equal(t, StatusReady, next)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("picked up")
	require.NoError(t, err)
	assert.Equal(t, StatusPickedUp, s)

	s, err = ParseStatus(" PICKED_UP ")
	require.NoError(t, err)
	assert.Equal(t, StatusPickedUp, s)

	_, err = ParseStatus("cancelled")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	assert.Len(t, AllStatuses(), 5)
}

func TestNormalizeItems(t *testing.T) {
	lines, err := NormalizeItems([]ItemInput{{ServiceID: 1}, {ServiceID: 2, Qty: intPtr(3)}})
	require.NoError(t, err)
	assert.Equal(t, []Line{{ServiceID: 1, Qty: 1}, {ServiceID: 2, Qty: 3}}, lines)

	_, err = NormalizeItems(nil)
	assert.True(t, httperr.IsBusiness(err, "missing_items"))

	_, err = NormalizeItems([]ItemInput{{ServiceID: 1, Qty: intPtr(0)}})
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))

	_, err = NormalizeItems([]ItemInput{{ServiceID: 1, Qty: intPtr(-2)}})
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))

	_, err = NormalizeItems([]ItemInput{{ServiceID: 1, Qty: intPtr(MaxQuantity + 1)}})
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))

	_, err = NormalizeItems([]ItemInput{{ServiceID: 0}})
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))
}

func TestServiceIDsDeduplicates(t *testing.T) {
	ids := ServiceIDs([]Line{{ServiceID: 3}, {ServiceID: 1}, {ServiceID: 3}})
	assert.Equal(t, []uint{3, 1}, ids)
}

func TestPriceLines(t *testing.T) {
	catalog := map[uint]models.Service{
		1: {ID: 1, MerchantID: 5, Name: "Wash", Price: decimal.NewFromInt(10), Active: true},
		2: {ID: 2, MerchantID: 5, Name: "Iron", Price: decimal.NewFromInt(5), Active: true},
		3: {ID: 3, MerchantID: 6, Name: "Dry", Price: decimal.NewFromInt(7), Active: true},
		4: {ID: 4, MerchantID: 5, Name: "Old", Price: decimal.NewFromInt(1), Active: false},
	}

	items, total, err := PriceLines(5, []Line{{ServiceID: 1, Qty: 2}, {ServiceID: 2, Qty: 1}}, catalog)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(25)), total.String())
	require.Len(t, items, 2)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Wash", items[0].Name)
	assert.Equal(t, 2, items[0].Qty)

	_, _, err = PriceLines(5, []Line{{ServiceID: 99, Qty: 1}}, catalog)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	_, _, err = PriceLines(5, []Line{{ServiceID: 3, Qty: 1}}, catalog)
	assert.True(t, httperr.IsBusiness(err, "service_merchant_mismatch"))

	_, _, err = PriceLines(5, []Line{{ServiceID: 4, Qty: 1}}, catalog)
	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
}

func TestPriceLinesKeepsCents(t *testing.T) {
	catalog := map[uint]models.Service{
		1: {ID: 1, MerchantID: 1, Price: decimal.RequireFromString("12.35"), Active: true},
	}

	_, total, err := PriceLines(1, []Line{{ServiceID: 1, Qty: 3}}, catalog)
	require.NoError(t, err)
	assert.Equal(t, "37.05", total.StringFixed(2))
}

func TestPriceLinesRejectsOversizedTotal(t *testing.T) {
	catalog := map[uint]models.Service{
		1: {ID: 1, MerchantID: 1, Price: decimal.NewFromInt(1_000_000), Active: true},
	}

	lines := make([]Line, 0, 11)
	for i := 0; i < 11; i++ {
		lines = append(lines, Line{ServiceID: 1, Qty: MaxQuantity})
	}

	_, _, err := PriceLines(1, lines, catalog)
	assert.True(t, httperr.IsBusiness(err, "order_total_too_large"))

	_, total, err := PriceLines(1, lines[:9], catalog)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(9_000_000_000)))
}
