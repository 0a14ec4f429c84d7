package models

import "time"

// Merchant rows are provisioned out of band; the API only reads and patches them.
type Merchant struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	OwnerUserID uint `gorm:"index;not null" json:"owner_user_id"`
	Owner       User `gorm:"foreignKey:OwnerUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name       string  `gorm:"size:120;not null" json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Rating     float64 `gorm:"default:0" json:"rating"`
	PriceRange string  `gorm:"size:20" json:"price_range"`
	ETA        string  `gorm:"column:eta;size:50" json:"eta"`
	ImageURL   string  `gorm:"size:512" json:"image_url"`
	Hours      string  `gorm:"size:120" json:"hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
