package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/laundry-marketplace/internal/domain/order"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *OrderGormRepository) GetMerchant(
	ctx context.Context,
	id uint,
) (*models.Merchant, error) {

	var m models.Merchant
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *OrderGormRepository) FindServicesForShare(
	ctx context.Context,
	ids []uint,
) (map[uint]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}

	out := make(map[uint]models.Service, len(services))
	for _, s := range services {
		out[s.ID] = s
	}
	return out, nil
}

// --------------------------------------------------
// Order
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error
}

func (r *OrderGormRepository) CreateItems(
	ctx context.Context,
	items []models.OrderItem,
) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *OrderGormRepository) AppendHistory(
	ctx context.Context,
	h *models.OrderStatusHistory,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *OrderGormRepository) GetOrder(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) GetOrderForUpdate(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) GetOrderDetail(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *OrderGormRepository) ListOrdersForUser(
	ctx context.Context,
	userID uint,
) ([]models.Order, error) {

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderGormRepository) ListOrdersForOwner(
	ctx context.Context,
	ownerUserID uint,
) ([]models.Order, error) {

	owned := r.db.Model(&models.Merchant{}).
		Select("id").
		Where("owner_user_id = ?", ownerUserID)

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("merchant_id IN (?)", owned).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderGormRepository) ListAllOrders(
	ctx context.Context,
) ([]models.Order, error) {

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
