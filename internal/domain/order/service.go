// internal/domain/order/service.go
package order

import (
	"errors"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/schema"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
	"gorm.io/gorm"
)

// Service handles order and payment business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
	schema schema.Info
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, info schema.Info) *Service {
	return &Service{
		db:     db,
		config: cfg,
		schema: info,
	}
}

// CreatePaymentRequest represents payment creation data
type CreatePaymentRequest struct {
	Amount    int64  `json:"amount" binding:"required"`
	Depositor string `json:"depositor"`
	Bank      string `json:"bank"`
	Memo      string `json:"memo"`
}

// CreateOrderRequest represents order creation data. Payment and address are
// optional references; their existence is the caller's responsibility.
type CreateOrderRequest struct {
	PaymentID   *uint `json:"payment_id"`
	AddressID   *uint `json:"address_id"`
	TotalAmount int64 `json:"total_amount" binding:"required"`
}

// OrderListRequest represents order list query parameters
type OrderListRequest struct {
	Page       int         `form:"page,default=1"`
	Limit      int         `form:"limit,default=20"`
	Status     OrderStatus `form:"status"`
	CustomerID uint        `form:"customer_id"`
}

// OrderListResponse represents orders with pagination
type OrderListResponse struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// CreatePayment creates a pending bank-transfer payment record
func (s *Service) CreatePayment(customerID uint, req *CreatePaymentRequest) (*Payment, error) {
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be a positive integer")
	}

	payment := Payment{
		CustomerID: customerID,
		Amount:     req.Amount,
		Method:     PaymentMethodBankTransfer,
		Status:     PaymentStatusPending,
		Depositor:  req.Depositor,
		Bank:       req.Bank,
		Memo:       req.Memo,
	}

	if err := s.db.Create(&payment).Error; err != nil {
		return nil, apperror.Store("failed to create payment", err)
	}

	return &payment, nil
}

// CreateOrder creates a new order in the ordered state and returns it with
// its derived order number.
func (s *Service) CreateOrder(customerID uint, req *CreateOrderRequest) (*Order, error) {
	if req.TotalAmount <= 0 {
		return nil, apperror.Validation("total amount must be a positive integer")
	}

	order := Order{
		CustomerID:  customerID,
		PaymentID:   req.PaymentID,
		AddressID:   req.AddressID,
		TotalAmount: req.TotalAmount,
		Status:      OrderStatusOrdered,
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, apperror.Store("failed to create order", err)
	}

	order.Decorate()
	return &order, nil
}

// CompletePayment marks a payment completed. The write is unconditional; a
// payment in any state accepts it as long as the row exists.
func (s *Service) CompletePayment(paymentID uint) error {
	return s.setPaymentStatus(paymentID, PaymentStatusCompleted)
}

// RefundPayment marks a payment refunded, unconditionally
func (s *Service) RefundPayment(paymentID uint) error {
	return s.setPaymentStatus(paymentID, PaymentStatusRefunded)
}

// CompletePaymentByOrder resolves the order's payment and completes it
func (s *Service) CompletePaymentByOrder(orderID uint) error {
	var order Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("order not found")
		}
		return apperror.Store("failed to retrieve order", err)
	}

	if order.PaymentID == nil {
		return apperror.Validation("order has no payment")
	}

	return s.CompletePayment(*order.PaymentID)
}

// SetOrderStatus writes an order status. The target must be one of the
// enumerated values; beyond that any transition is accepted, including
// administrative side-exits from any state.
func (s *Service) SetOrderStatus(orderID uint, status OrderStatus) error {
	if !status.IsValid() {
		return apperror.Validation("unknown order status")
	}

	result := s.db.Model(&Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return apperror.Store("failed to update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("order not found")
	}
	return nil
}

// AutoAdvance moves every ordered order whose payment has been completed for
// at least the configured dwell time into the preparing state. The update's
// where clause only matches ordered rows, so re-running it concurrently with
// itself or with user writes is harmless. Scope to one customer by passing a
// non-nil id. Returns the number of advanced orders.
func (s *Service) AutoAdvance(customerID *uint) (int64, error) {
	cutoff := time.Now().UTC().Add(-s.config.Order.AutoAdvanceAfter)

	paidPayments := s.db.Model(&Payment{}).
		Select("id").
		Where("status = ?", PaymentStatusCompleted).
		Where(s.schema.PaymentUpdatedColumn+" <= ?", cutoff)

	query := s.db.Model(&Order{}).
		Where("status = ?", OrderStatusOrdered).
		Where("payment_id IN (?)", paidPayments)

	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	result := query.Update("status", OrderStatusPreparing)
	if result.Error != nil {
		return 0, apperror.Store("failed to auto-advance orders", result.Error)
	}
	return result.RowsAffected, nil
}

// GetOrder retrieves one order. Pass a customer id to enforce ownership on
// the customer-facing surface; nil skips the check for admins.
func (s *Service) GetOrder(customerID *uint, orderID uint) (*Order, error) {
	query := s.db.Where("id = ?", orderID)
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	var order Order
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("order not found")
		}
		return nil, apperror.Store("failed to retrieve order", err)
	}

	order.Decorate()
	return &order, nil
}

// GetPayment retrieves one payment record
func (s *Service) GetPayment(paymentID uint) (*Payment, error) {
	var payment Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("payment not found")
		}
		return nil, apperror.Store("failed to retrieve payment", err)
	}
	return &payment, nil
}

// ListOrders retrieves orders with filtering and pagination. The sweep rule
// is applied first so a listing always reflects it even between background
// ticks.
func (s *Service) ListOrders(req *OrderListRequest) (*OrderListResponse, error) {
	var scope *uint
	if req.CustomerID > 0 {
		scope = &req.CustomerID
	}
	if _, err := s.AutoAdvance(scope); err != nil {
		return nil, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	query := s.db.Model(&Order{})
	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, apperror.Validation("unknown order status")
		}
		query = query.Where("status = ?", req.Status)
	}
	if req.CustomerID > 0 {
		query = query.Where("customer_id = ?", req.CustomerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperror.Store("failed to count orders", err)
	}

	var orders []Order
	err := query.
		Order("created_at DESC, id DESC").
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, apperror.Store("failed to retrieve orders", err)
	}

	for i := range orders {
		orders[i].Decorate()
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &OrderListResponse{
		Orders: orders,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// ListCustomerOrders retrieves one customer's orders
func (s *Service) ListCustomerOrders(customerID uint, page, limit int) (*OrderListResponse, error) {
	return s.ListOrders(&OrderListRequest{
		Page:       page,
		Limit:      limit,
		CustomerID: customerID,
	})
}

func (s *Service) setPaymentStatus(paymentID uint, status PaymentStatus) error {
	result := s.db.Model(&Payment{}).Where("id = ?", paymentID).Update("status", status)
	if result.Error != nil {
		return apperror.Store("failed to update payment status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("payment not found")
	}
	return nil
}
