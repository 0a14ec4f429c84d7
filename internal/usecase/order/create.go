package order

import (
	"context"

	"github.com/BruksfildServices01/laundry-marketplace/internal/audit"
	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/db"
	domain "github.com/BruksfildServices01/laundry-marketplace/internal/domain/order"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/metrics"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderInput struct {
	Actor      auth.Identity
	MerchantID uint
	Items      []domain.ItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	if in.MerchantID == 0 {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	lines, err := domain.NormalizeItems(in.Items)
	if err != nil {
		return nil, err
	}

	var created *models.Order

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 1️⃣ Merchant
		// --------------------------------------------------
		merchant, err := tx.GetMerchant(ctx, in.MerchantID)
		if err != nil {
			if db.IsNotFound(err) {
				return httperr.ErrNotFound("merchant_not_found")
			}
			return err
		}

		// --------------------------------------------------
		// 2️⃣ Catalog prices (one batch, locked)
		// --------------------------------------------------
		catalog, err := tx.FindServicesForShare(ctx, domain.ServiceIDs(lines))
		if err != nil {
			return err
		}

		items, total, err := domain.PriceLines(merchant.ID, lines, catalog)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 3️⃣ Order + items
		// --------------------------------------------------
		o := &models.Order{
			UserID:     in.Actor.UserID,
			MerchantID: merchant.ID,
			Status:     string(domain.InitialStatus()),
			Total:      total,
		}
		if err := tx.CreateOrder(ctx, o); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = o.ID
		}
		if err := tx.CreateItems(ctx, items); err != nil {
			return err
		}

		// --------------------------------------------------
		// 4️⃣ Initial history
		// --------------------------------------------------
		if err := tx.AppendHistory(ctx, &models.OrderStatusHistory{
			OrderID:   o.ID,
			ToStatus:  o.Status,
			ChangedBy: in.Actor.UserID,
		}); err != nil {
			return err
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrderCreated()

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.UintPtr(in.Actor.UserID),
		Action:   "order_created",
		Entity:   "order",
		EntityID: audit.UintPtr(created.ID),
		Metadata: map[string]any{
			"merchant_id": created.MerchantID,
			"total":       created.Total.StringFixed(2),
			"items":       len(lines),
		},
	})

	return created, nil
}
