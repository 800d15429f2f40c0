// internal/domain/customer/entity.go
package customer

import (
	"time"
)

// Customer represents a shopper. Accounts are created by an external signup
// flow; this service only ever references customers, it never mutates them.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Name      string    `gorm:"size:100" json:"name"`
	Phone     string    `gorm:"size:30" json:"phone"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (Customer) TableName() string { return "customers" }
