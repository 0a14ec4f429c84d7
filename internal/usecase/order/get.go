package order

import (
	"context"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	"github.com/BruksfildServices01/laundry-marketplace/internal/db"
	domain "github.com/BruksfildServices01/laundry-marketplace/internal/domain/order"
	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

// GetOrder returns one order with its items and status history.
type GetOrder struct {
	repo domain.Repository
}

func NewGetOrder(repo domain.Repository) *GetOrder {
	return &GetOrder{repo: repo}
}

func (uc *GetOrder) Execute(
	ctx context.Context,
	actor auth.Identity,
	orderID uint,
) (*models.Order, error) {

	o, err := uc.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, httperr.ErrNotFound("order_not_found")
		}
		return nil, err
	}

	if actor.IsAdmin() || o.UserID == actor.UserID {
		return o, nil
	}

	if actor.Role == models.RoleMerchant {
		merchant, err := uc.repo.GetMerchant(ctx, o.MerchantID)
		if err != nil {
			return nil, err
		}
		if actor.CanManage(merchant.OwnerUserID) {
			return o, nil
		}
	}

	return nil, httperr.ErrForbidden("not_order_participant")
}
