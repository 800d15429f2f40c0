// internal/domain/cart/service.go
package cart

import (
	"errors"
	"strings"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/schema"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
	"gorm.io/gorm"
)

// Service handles cart business logic
type Service struct {
	db     *gorm.DB
	schema schema.Info
}

// NewService creates a new cart service
func NewService(db *gorm.DB, info schema.Info) *Service {
	return &Service{
		db:     db,
		schema: info,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	ColorID   uint `json:"color_id" binding:"required"`
	SizeID    uint `json:"size_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest represents a quantity change request
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartLine is the joined view of one cart line with product display fields.
// Color name and code stay null when the color lookup table is not installed.
type CartLine struct {
	ID           uint      `json:"id"`
	ProductID    uint      `json:"product_id"`
	ColorID      uint      `json:"color_id"`
	SizeID       uint      `json:"size_id"`
	Quantity     int       `json:"quantity"`
	ProductName  string    `json:"product_name"`
	Price        int64     `json:"price"`
	ThumbnailURL string    `json:"thumbnail_url"`
	SizeLabel    string    `json:"size_label"`
	ColorName    *string   `json:"color_name"`
	ColorCode    *string   `json:"color_code"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// List retrieves a customer's cart lines joined with product details, most
// recently updated first.
func (s *Service) List(customerID uint) ([]CartLine, error) {
	selects := []string{
		"cart_items.id",
		"cart_items.product_id",
		"cart_items.color_id",
		"cart_items.size_id",
		"cart_items.quantity",
		"cart_items." + s.schema.CartUpdatedColumn + " AS updated_at",
		"products.name AS product_name",
		"products.price",
		"products.thumbnail_url",
	}

	query := s.db.Table("cart_items").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.customer_id = ?", customerID)

	if s.schema.HasColorTable {
		selects = append(selects, "colors.name AS color_name", "colors.code AS color_code")
		query = query.Joins("LEFT JOIN colors ON colors.id = cart_items.color_id")
	}

	var lines []CartLine
	err := query.
		Select(strings.Join(selects, ", ")).
		Order("cart_items." + s.schema.CartUpdatedColumn + " DESC").
		Scan(&lines).Error
	if err != nil {
		return nil, apperror.Store("failed to retrieve cart", err)
	}

	for i := range lines {
		lines[i].SizeLabel = SizeLabel(lines[i].SizeID)
	}

	return lines, nil
}

// Add puts an option into the cart. When a line for the same
// (product, color, size) tuple already exists its quantity is increased by
// the requested amount; otherwise a new line is inserted. Lookup and write
// share one transaction so a racing add cannot produce a duplicate row.
func (s *Service) Add(customerID uint, req *AddToCartRequest) (*CartItem, error) {
	if req.ProductID == 0 || req.ColorID == 0 || req.SizeID == 0 {
		return nil, apperror.Validation("product, color and size ids must be positive")
	}
	if req.Quantity < 1 {
		return nil, apperror.Validation("quantity must be a positive integer")
	}

	var item CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing CartItem
		err := tx.
			Where("customer_id = ? AND product_id = ? AND color_id = ? AND size_id = ?",
				customerID, req.ProductID, req.ColorID, req.SizeID).
			First(&existing).Error

		if err == nil {
			existing.Quantity += req.Quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			item = existing
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item = CartItem{
			CustomerID: customerID,
			ProductID:  req.ProductID,
			ColorID:    req.ColorID,
			SizeID:     req.SizeID,
			Quantity:   req.Quantity,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Conflict("cart line already exists for this option", err)
		}
		return nil, apperror.Store("failed to add to cart", err)
	}

	return &item, nil
}

// UpdateQuantity sets an existing line's quantity
func (s *Service) UpdateQuantity(customerID, cartID uint, req *UpdateQuantityRequest) (*CartItem, error) {
	if req.Quantity < 1 {
		return nil, apperror.Validation("quantity must be a positive integer")
	}

	var item CartItem
	err := s.db.Where("id = ? AND customer_id = ?", cartID, customerID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("cart line not found")
		}
		return nil, apperror.Store("failed to retrieve cart line", err)
	}

	item.Quantity = req.Quantity
	if err := s.db.Save(&item).Error; err != nil {
		return nil, apperror.Store("failed to update cart line", err)
	}

	return &item, nil
}

// Remove deletes one cart line
func (s *Service) Remove(customerID, cartID uint) error {
	result := s.db.Where("id = ? AND customer_id = ?", cartID, customerID).Delete(&CartItem{})
	if result.Error != nil {
		return apperror.Store("failed to remove cart line", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("cart line not found")
	}
	return nil
}

// isUniqueViolation recognizes the store's duplicate-key errors without tying
// the service to one driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
