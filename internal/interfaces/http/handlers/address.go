// internal/interfaces/http/handlers/address.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/address"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// AddressHandler handles address book endpoints
type AddressHandler struct {
	addressService *address.Service
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(db *gorm.DB) *AddressHandler {
	return &AddressHandler{
		addressService: address.NewService(db),
	}
}

// ListAddresses handles GET /addresses
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	addresses, err := h.addressService.List(customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Addresses retrieved successfully", addresses)
}

// CreateAddress handles POST /addresses
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req address.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	addr, err := h.addressService.Create(customerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Address created successfully", addr)
}

// UpdateAddress handles PUT /addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	addressID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req address.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	addr, err := h.addressService.Update(customerID, addressID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Address updated successfully", addr)
}

// SetDefaultAddress handles PATCH /addresses/:id/default
func (h *AddressHandler) SetDefaultAddress(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	addressID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.addressService.SetDefault(customerID, addressID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Default address updated successfully", gin.H{"id": addressID})
}

// DeleteAddress handles DELETE /addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	addressID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.addressService.Delete(customerID, addressID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Address deleted successfully", gin.H{"id": addressID})
}

// parseIDParam parses a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(id), true
}
