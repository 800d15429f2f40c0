// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// ProductHandler handles admin catalog endpoints
type ProductHandler struct {
	catalogService *catalog.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(db *gorm.DB, cfg *config.Config) *ProductHandler {
	thumbs := catalog.NewLocalThumbnailStore(
		cfg.Upload.LocalPath,
		cfg.Upload.PublicBase,
		cfg.Upload.MaxSize,
	)
	return &ProductHandler{
		catalogService: catalog.NewService(db, thumbs),
	}
}

// CreateProduct handles POST /admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input catalog.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.Create(&input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Product created successfully", product)
}

// ReplaceProduct handles PUT /admin/products/:id
func (h *ProductHandler) ReplaceProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input catalog.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.Replace(productID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product updated successfully", product)
}

// SetProductLive handles PATCH /admin/products/:id/live
func (h *ProductHandler) SetProductLive(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		IsLive *bool `json:"is_live" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.catalogService.SetLive(productID, *req.IsLive); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product visibility updated", gin.H{
		"id":      productID,
		"is_live": *req.IsLive,
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.Delete(productID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product deleted successfully", gin.H{"id": productID})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.Get(productID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Product retrieved successfully", product)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req catalog.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products, total, err := h.catalogService.List(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    total,
		"page":     req.Page,
		"limit":    req.Limit,
	})
}
