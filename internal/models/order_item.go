package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a price/title snapshot of a product at checkout time.
// Later catalog edits never change historical orders.
type OrderItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                    // primary key
	OrderID    uint           `gorm:"index;not null" json:"order_id"`                          // owning order
	ProductID  uint           `gorm:"index;not null" json:"product_id"`                        // product reference
	Title      string         `gorm:"not null" json:"title"`                                   // title snapshot
	UnitPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // unit price snapshot
	Quantity   int            `gorm:"not null" json:"quantity"`                                // quantity
	TotalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // line subtotal
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                 // creation time
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                                 // update time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                          // soft delete
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
