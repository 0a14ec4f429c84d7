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

type UpdateOrderStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateOrderStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateOrderStatus {
	return &UpdateOrderStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateOrderStatus) Execute(
	ctx context.Context,
	actor auth.Identity,
	orderID uint,
	rawStatus string,
) (*models.Order, error) {

	var (
		updated *models.Order
		from    string
	)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		o, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			if db.IsNotFound(err) {
				return httperr.ErrNotFound("order_not_found")
			}
			return err
		}

		if !actor.IsAdmin() {
			merchant, err := tx.GetMerchant(ctx, o.MerchantID)
			if err != nil {
				return err
			}
			if !actor.CanManage(merchant.OwnerUserID) {
				return httperr.ErrForbidden("not_merchant_owner")
			}
		}

		next, err := domain.ParseStatus(rawStatus)
		if err != nil {
			return err
		}
		if err := domain.CanTransition(domain.Status(o.Status), next); err != nil {
			return err
		}

		if err := tx.UpdateStatus(ctx, o.ID, next); err != nil {
			return err
		}
		if err := tx.AppendHistory(ctx, &models.OrderStatusHistory{
			OrderID:    o.ID,
			FromStatus: o.Status,
			ToStatus:   string(next),
			ChangedBy:  actor.UserID,
		}); err != nil {
			return err
		}

		from = o.Status
		updated, err = tx.GetOrder(ctx, o.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.OrderStatusChanged(updated.Status)

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.UintPtr(actor.UserID),
		Action:   "order_status_changed",
		Entity:   "order",
		EntityID: audit.UintPtr(updated.ID),
		Metadata: map[string]string{
			"from": from,
			"to":   updated.Status,
		},
	})

	return updated, nil
}
