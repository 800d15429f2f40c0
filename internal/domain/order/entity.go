// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strconv"
	"time"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ORDERED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
	OrderStatusExchanged OrderStatus = "EXCHANGED"
)

// IsValid reports whether the status is one of the enumerated values. There
// is deliberately no transition table: admins may move an order between any
// two enumerated states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusOrdered, OrderStatusPreparing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded,
		OrderStatusExchanged:
		return true
	}
	return false
}

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// PaymentMethodBankTransfer is the only payment method this store accepts;
// transfers are confirmed manually by an administrator.
const PaymentMethodBankTransfer = "bank_transfer"

// Payment represents a manual bank-transfer payment record
type Payment struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	CustomerID uint          `gorm:"not null;index" json:"customer_id"`
	Amount     int64         `gorm:"not null" json:"amount"`
	Method     string        `gorm:"not null;size:50;default:'bank_transfer'" json:"method"`
	Status     PaymentStatus `gorm:"not null;default:'PENDING';size:20" json:"status"`
	Depositor  string        `gorm:"size:100" json:"depositor"`
	Bank       string        `gorm:"size:100" json:"bank"`
	Memo       string        `gorm:"type:text" json:"memo"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Order represents the order entity. The payment and address references are
// set at creation and never reassigned.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	CustomerID  uint        `gorm:"not null;index" json:"customer_id"`
	PaymentID   *uint       `gorm:"index" json:"payment_id"`
	AddressID   *uint       `gorm:"index" json:"address_id"`
	TotalAmount int64       `gorm:"not null" json:"total_amount"`
	Status      OrderStatus `gorm:"not null;default:'ORDERED';size:20" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// OrderNumber is derived from the creation date and id on read, never
	// stored: computing it on the fly avoids a second source of truth.
	OrderNumber string `gorm:"-" json:"order_number"`
}

// TableName overrides
func (Payment) TableName() string { return "payments" }
func (Order) TableName() string   { return "orders" }

// Number derives the human-facing order number: YYYYMMDD plus the id padded
// to six digits. An invalid id or date falls back to the raw id as a string.
func Number(createdAt time.Time, id uint) string {
	if id == 0 || createdAt.IsZero() {
		return strconv.FormatUint(uint64(id), 10)
	}
	return fmt.Sprintf("%s-%06d", createdAt.Format("20060102"), id)
}

// Decorate fills the derived fields
func (o *Order) Decorate() {
	o.OrderNumber = Number(o.CreatedAt, o.ID)
}
