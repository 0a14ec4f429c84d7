// Package cache holds the read-through cache for public merchant reads.
package cache

import (
	"context"

	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

// MerchantCache never reports errors to callers: a failing backend behaves
// like a miss.
type MerchantCache interface {
	GetList(ctx context.Context) ([]models.Merchant, bool)
	SetList(ctx context.Context, merchants []models.Merchant)

	Get(ctx context.Context, id uint) (*models.Merchant, bool)
	Set(ctx context.Context, m *models.Merchant)

	// Invalidate drops the merchant entry and the list.
	Invalidate(ctx context.Context, id uint)
}

// Nop is used when no cache backend is configured.
type Nop struct{}

func (Nop) GetList(context.Context) ([]models.Merchant, bool) { return nil, false }
func (Nop) SetList(context.Context, []models.Merchant) {}
func (Nop) Get(context.Context, uint) (*models.Merchant, bool) { return nil, false }
func (Nop) Set(context.Context, *models.Merchant) {}
func (Nop) Invalidate(context.Context, uint) {}

var _ MerchantCache = Nop{}
