package order

import (
	"context"

	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

type Repository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction. Returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Catalog --------
	GetMerchant(ctx context.Context, id uint) (*models.Merchant, error)

	// FindServicesForShare loads services by id and locks them against
	// concurrent price changes until the transaction ends.
	FindServicesForShare(ctx context.Context, ids []uint) (map[uint]models.Service, error)

	// -------- Order --------
	CreateOrder(ctx context.Context, o *models.Order) error
	CreateItems(ctx context.Context, items []models.OrderItem) error
	AppendHistory(ctx context.Context, h *models.OrderStatusHistory) error

	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	GetOrderForUpdate(ctx context.Context, id uint) (*models.Order, error)
	GetOrderDetail(ctx context.Context, id uint) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status Status) error

	// -------- Listing (created_at DESC) --------
	ListOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error)
	ListOrdersForOwner(ctx context.Context, ownerUserID uint) ([]models.Order, error)
	ListAllOrders(ctx context.Context) ([]models.Order, error)
}
