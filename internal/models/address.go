package models

import "time"

type Address struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Text   string `gorm:"column:address;size:255;not null" json:"address"`

	CreatedAt time.Time `json:"created_at"`
}
