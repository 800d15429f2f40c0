// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/schema"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// OrderHandler handles customer order and payment endpoints
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, cfg *config.Config, info schema.Info) *OrderHandler {
	return &OrderHandler{
		orderService: order.NewService(db, cfg, info),
	}
}

// CreatePayment handles POST /payments
func (h *OrderHandler) CreatePayment(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req order.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	payment, err := h.orderService.CreatePayment(customerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Payment created successfully", payment)
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ord, err := h.orderService.CreateOrder(customerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Order created successfully", ord)
}

// ListMyOrders handles GET /orders
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req order.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.orderService.ListCustomerOrders(customerID, req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Orders retrieved successfully", resp)
}

// GetMyOrder handles GET /orders/:id
func (h *OrderHandler) GetMyOrder(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ord, err := h.orderService.GetOrder(&customerID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Order retrieved successfully", ord)
}
