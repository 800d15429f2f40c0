// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(db *gorm.DB) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlist.NewService(db),
	}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	items, err := h.wishlistService.List(customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Wishlist retrieved successfully", items)
}

// AddToWishlist handles POST /wishlist/:productId
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	item, err := h.wishlistService.Add(customerID, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Product added to wishlist", item)
}

// RemoveFromWishlist handles DELETE /wishlist/:productId
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	if err := h.wishlistService.Remove(customerID, productID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product removed from wishlist", gin.H{"product_id": productID})
}
