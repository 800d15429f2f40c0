// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/schema"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, info schema.Info) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(db, info),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	lines, err := h.cartService.List(customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Cart retrieved successfully", lines)
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.cartService.Add(customerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Item added to cart successfully", item)
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	cartID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req cart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.cartService.UpdateQuantity(customerID, cartID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Cart item updated successfully", item)
}

// RemoveCartItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	cartID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cartService.Remove(customerID, cartID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Cart item removed successfully", gin.H{"id": cartID})
}
