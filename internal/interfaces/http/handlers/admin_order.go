// internal/interfaces/http/handlers/admin_order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/schema"
	"gorm.io/gorm"
)

// AdminOrderHandler handles back-office order and payment endpoints
type AdminOrderHandler struct {
	orderService *order.Service
}

// NewAdminOrderHandler creates a new admin order handler
func NewAdminOrderHandler(db *gorm.DB, cfg *config.Config, info schema.Info) *AdminOrderHandler {
	return &AdminOrderHandler{
		orderService: order.NewService(db, cfg, info),
	}
}

// ListOrders handles GET /admin/orders
func (h *AdminOrderHandler) ListOrders(c *gin.Context) {
	var req order.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.orderService.ListOrders(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Orders retrieved successfully", resp)
}

// GetOrder handles GET /admin/orders/:id
func (h *AdminOrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ord, err := h.orderService.GetOrder(nil, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Order retrieved successfully", ord)
}

// UpdateOrderStatus handles PATCH /admin/orders/:id/status
func (h *AdminOrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status order.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.orderService.SetOrderStatus(orderID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Order status updated successfully", gin.H{
		"id":     orderID,
		"status": req.Status,
	})
}

// CompletePayment handles PATCH /admin/payments/:id/complete
func (h *AdminOrderHandler) CompletePayment(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.CompletePayment(paymentID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Payment completed successfully", gin.H{"id": paymentID})
}

// RefundPayment handles PATCH /admin/payments/:id/refund
func (h *AdminOrderHandler) RefundPayment(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.RefundPayment(paymentID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Payment refunded successfully", gin.H{"id": paymentID})
}

// CompleteOrderPayment handles PATCH /admin/orders/:id/payment/complete
func (h *AdminOrderHandler) CompleteOrderPayment(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.CompletePaymentByOrder(orderID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Order payment completed successfully", gin.H{"order_id": orderID})
}
