// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"
)

// WishlistItem represents a product a customer scrapped for later
type WishlistItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_wishlist_product" json:"customer_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_wishlist_product" json:"product_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides
func (WishlistItem) TableName() string { return "wishlist_items" }
