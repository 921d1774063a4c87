package models

import (
	"time"
)

// Cart holds one shopping cart per user. The row is created lazily on
// first access and survives checkout (only its items are cleared).
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`              // primary key
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"` // owning user, one cart each
	CreatedAt time.Time `gorm:"index" json:"created_at"`           // creation time
	UpdatedAt time.Time `json:"updated_at"`                        // update time

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // cart lines
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}
