package models

import (
	"time"

	"gorm.io/gorm"
)

// Product catalog table.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // primary key
	Title       string         `gorm:"not null" json:"title"`                              // product title
	Description string         `gorm:"type:text" json:"description"`                       // long description
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // unit price
	Image       string         `json:"image"`                                              // cover image URL
	Stock       int            `gorm:"not null;default:0" json:"stock"`                    // available stock
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // creation time
	UpdatedAt   time.Time      `json:"updated_at"`                                         // update time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // soft delete
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
