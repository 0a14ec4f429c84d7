package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MerchantID uint     `gorm:"index;not null" json:"merchant_id"`
	Merchant   Merchant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Status string          `gorm:"size:20;not null;default:'pending'" json:"status"`
	Total  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`

	Items   []OrderItem          `gorm:"constraint:OnDelete:CASCADE;" json:"items,omitempty"`
	History []OrderStatusHistory `gorm:"constraint:OnDelete:CASCADE;" json:"history,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem keeps the catalog price and name as they were when the order
// was placed.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	ServiceID uint            `gorm:"index;not null" json:"service_id"`
	Name      string          `gorm:"size:120" json:"name"`
	Qty       int             `gorm:"not null" json:"qty"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
}

type OrderStatusHistory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"index;not null" json:"order_id"`
	FromStatus string    `gorm:"size:20" json:"from_status"`
	ToStatus   string    `gorm:"size:20;not null" json:"to_status"`
	ChangedBy  uint      `json:"changed_by"`
	CreatedAt  time.Time `json:"created_at"`
}
