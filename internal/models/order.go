package models

import (
	"time"

	"gorm.io/gorm"
)

// Order table. Status moves PENDING -> PAID or PENDING -> CANCELLED.
type Order struct {
	ID         uint           `gorm:"primarykey" json:"id"`                               // primary key
	UserID     uint           `gorm:"index;not null" json:"user_id"`                      // owning user
	Status     string         `gorm:"index;not null" json:"status"`                       // PENDING / PAID / CANCELLED
	Total      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"` // total amount at checkout
	PaidAt     *time.Time     `gorm:"index" json:"paid_at"`                               // payment time
	CanceledAt *time.Time     `gorm:"index" json:"canceled_at"`                           // cancellation time
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                            // creation time
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                            // update time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                     // soft delete

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // snapshot lines
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
