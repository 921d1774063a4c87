package models

import (
	"time"

	"gorm.io/gorm"
)

// User account table.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                  // primary key
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`     // login email
	PasswordHash string         `gorm:"not null" json:"-"`                     // bcrypt hash, never serialized
	Name         string         `gorm:"size:191" json:"name"`                  // optional display name
	Role         string         `gorm:"not null;default:'CUSTOMER'" json:"role"` // CUSTOMER / ADMIN
	Status       string         `gorm:"default:'active'" json:"status"`        // account status
	LastLoginAt  *time.Time     `json:"last_login_at"`                         // last successful login
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`               // creation time
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`               // update time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                        // soft delete
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
