// internal/domain/cart/entity.go
package cart

import (
	"fmt"
	"time"
)

// CartItem represents one cart line. A customer holds at most one line per
// (product, color, size) option tuple; adds for an existing tuple merge
// quantities instead of inserting a second row. The composite unique index is
// the second line of defense behind the transactional merge.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_cart_option" json:"customer_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_option" json:"product_id"`
	ColorID    uint      `gorm:"not null;uniqueIndex:idx_cart_option" json:"color_id"`
	SizeID     uint      `gorm:"not null;uniqueIndex:idx_cart_option" json:"size_id"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides
func (CartItem) TableName() string { return "cart_items" }

// SizeLabel renders a size id as its human label
func SizeLabel(sizeID uint) string {
	switch sizeID {
	case 1:
		return "S"
	case 2:
		return "M"
	case 3:
		return "L"
	default:
		return fmt.Sprintf("SIZE-%d", sizeID)
	}
}
