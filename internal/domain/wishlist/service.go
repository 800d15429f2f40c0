// internal/domain/wishlist/service.go
package wishlist

import (
	"strings"

	"github.com/your-org/storefront-backend/internal/pkg/apperror"
	"gorm.io/gorm"
)

// Service handles wishlist business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new wishlist service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List retrieves a customer's wishlist, newest first
func (s *Service) List(customerID uint) ([]WishlistItem, error) {
	var items []WishlistItem
	err := s.db.
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, apperror.Store("failed to retrieve wishlist", err)
	}
	return items, nil
}

// Add puts a product on the wishlist; adding it twice is a no-op
func (s *Service) Add(customerID, productID uint) (*WishlistItem, error) {
	if productID == 0 {
		return nil, apperror.Validation("product id must be positive")
	}

	item := WishlistItem{CustomerID: customerID, ProductID: productID}
	err := s.db.Create(&item).Error
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return s.get(customerID, productID)
		}
		return nil, apperror.Store("failed to add wishlist item", err)
	}
	return &item, nil
}

// Remove takes a product off the wishlist
func (s *Service) Remove(customerID, productID uint) error {
	result := s.db.
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&WishlistItem{})
	if result.Error != nil {
		return apperror.Store("failed to remove wishlist item", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("wishlist item not found")
	}
	return nil
}

func (s *Service) get(customerID, productID uint) (*WishlistItem, error) {
	var item WishlistItem
	err := s.db.Where("customer_id = ? AND product_id = ?", customerID, productID).First(&item).Error
	if err != nil {
		return nil, apperror.Store("failed to retrieve wishlist item", err)
	}
	return &item, nil
}
