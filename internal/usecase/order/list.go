package order

import (
	"context"

	"github.com/BruksfildServices01/laundry-marketplace/internal/auth"
	domain "github.com/BruksfildServices01/laundry-marketplace/internal/domain/order"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

// Scope selects which orders a listing returns.
type Scope int

const (
	// ScopeOwn lists orders placed by the actor.
	ScopeOwn Scope = iota
	// ScopeMerchant lists orders of merchants owned by the actor. Admins get
	// every order.
	ScopeMerchant
	ScopeAll
)

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

func (uc *ListOrders) Execute(
	ctx context.Context,
	actor auth.Identity,
	scope Scope,
) ([]models.Order, error) {

	var (
		orders []models.Order
		err    error
	)

	switch {
	case scope == ScopeAll, scope == ScopeMerchant && actor.IsAdmin():
		orders, err = uc.repo.ListAllOrders(ctx)
	case scope == ScopeMerchant:
		orders, err = uc.repo.ListOrdersForOwner(ctx, actor.UserID)
	default:
		orders, err = uc.repo.ListOrdersForUser(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
