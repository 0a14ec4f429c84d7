package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	MerchantID uint     `gorm:"index;not null" json:"merchant_id"`
	Merchant   Merchant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string          `gorm:"size:120;not null" json:"name"`
	Description string          `gorm:"size:500" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Active      bool            `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
