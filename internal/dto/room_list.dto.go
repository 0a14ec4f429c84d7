package dto

import "time"

// RoomListDTO is a chat room joined with the display names each role needs.
type RoomListDTO struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	MerchantID       *uint     `json:"merchant_id"`
	IsSupport        bool      `json:"is_support"`
	CreatedAt        time.Time `json:"created_at"`
	UserName         string    `json:"user_name,omitempty"`
	MerchantName     *string   `json:"merchant_name,omitempty"`
	MerchantImageURL *string   `json:"merchant_image_url,omitempty"`
}
