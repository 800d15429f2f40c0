// internal/domain/address/entity.go
package address

import (
	"time"
)

// Address represents a customer's shipping address. Among one customer's
// addresses at most one is the default, and exactly one when any exist.
type Address struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Recipient  string    `gorm:"not null;size:100" json:"recipient"`
	Phone      string    `gorm:"not null;size:30" json:"phone"`
	ZipCode    string    `gorm:"not null;size:10" json:"zip_code"`
	Address1   string    `gorm:"not null;size:255" json:"address1"`
	Address2   string    `gorm:"size:255" json:"address2"`
	IsDefault  bool      `gorm:"default:false" json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides
func (Address) TableName() string { return "addresses" }
