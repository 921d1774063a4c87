package models

import (
	"time"
)

// CartItem is one product line in a cart.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                         // primary key
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`         // owning cart
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`      // product reference
	Quantity  int       `gorm:"not null" json:"quantity"`                                     // requested quantity
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                      // creation time
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                      // update time

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // joined product
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
