package models

import "time"

// ChatRoom with a nil MerchantID is a support room between a user and the
// admins.
type ChatRoom struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	User       User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	MerchantID *uint     `gorm:"index" json:"merchant_id"`
	Merchant   *Merchant `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	IsSupport  bool      `gorm:"not null;default:false" json:"is_support"`

	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RoomID       uint   `gorm:"index:idx_messages_room_created,priority:1;not null" json:"room_id"`
	SenderUserID uint   `gorm:"not null" json:"sender_user_id"`
	Text         string `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `gorm:"index:idx_messages_room_created,priority:2" json:"created_at"`
}
