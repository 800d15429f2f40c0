package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/schema"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Payment{}, &Order{}))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := setupTestDB(t)
	cfg := &config.Config{
		Order: config.OrderConfig{
			AutoAdvanceAfter:    12 * time.Hour,
			AutoAdvanceInterval: 5 * time.Minute,
		},
	}
	return NewService(db, cfg, schema.Defaults()), db
}

// backdatePayment rewrites a payment's updated_at without triggering gorm's
// automatic timestamp hooks.
func backdatePayment(t *testing.T, db *gorm.DB, paymentID uint, to time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&Payment{}).Where("id = ?", paymentID).
		UpdateColumn("updated_at", to).Error)
}

func createPaidOrder(t *testing.T, svc *Service, customerID uint) (*Order, *Payment) {
	t.Helper()
	payment, err := svc.CreatePayment(customerID, &CreatePaymentRequest{Amount: 50000})
	require.NoError(t, err)
	require.NoError(t, svc.CompletePayment(payment.ID))

	ord, err := svc.CreateOrder(customerID, &CreateOrderRequest{
		PaymentID:   &payment.ID,
		TotalAmount: 50000,
	})
	require.NoError(t, err)
	return ord, payment
}

func TestNumberDerivation(t *testing.T) {
	createdAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "20240305-000042", Number(createdAt, 42))
}

func TestNumberFallbacks(t *testing.T) {
	assert.Equal(t, "0", Number(time.Time{}, 0))
	assert.Equal(t, "42", Number(time.Time{}, 42))
	assert.Equal(t, "0", Number(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), 0))
}

func TestNumberPadsAndGrows(t *testing.T) {
	createdAt := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "20251231-000007", Number(createdAt, 7))
	assert.Equal(t, "20251231-1234567", Number(createdAt, 1234567))
}

func TestCreateOrderStartsOrdered(t *testing.T) {
	svc, _ := newTestService(t)

	ord, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 10000})
	require.NoError(t, err)
	assert.Equal(t, OrderStatusOrdered, ord.Status)
	assert.NotEmpty(t, ord.OrderNumber)
	assert.Nil(t, ord.PaymentID)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 0})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: -100})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreatePaymentValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreatePayment(1, &CreatePaymentRequest{Amount: 0})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestPaymentStatusWrites(t *testing.T) {
	svc, _ := newTestService(t)

	payment, err := svc.CreatePayment(1, &CreatePaymentRequest{Amount: 10000, Depositor: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPending, payment.Status)

	require.NoError(t, svc.CompletePayment(payment.ID))
	got, err := svc.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusCompleted, got.Status)

	// Refund after completion, then complete again: writes are unconditional.
	require.NoError(t, svc.RefundPayment(payment.ID))
	require.NoError(t, svc.CompletePayment(payment.ID))

	err = svc.CompletePayment(999)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestCompletePaymentByOrder(t *testing.T) {
	svc, _ := newTestService(t)

	payment, err := svc.CreatePayment(1, &CreatePaymentRequest{Amount: 10000})
	require.NoError(t, err)

	ord, err := svc.CreateOrder(1, &CreateOrderRequest{PaymentID: &payment.ID, TotalAmount: 10000})
	require.NoError(t, err)

	require.NoError(t, svc.CompletePaymentByOrder(ord.ID))
	got, err := svc.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusCompleted, got.Status)
}

func TestCompletePaymentByOrderWithoutPayment(t *testing.T) {
	svc, _ := newTestService(t)

	ord, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 10000})
	require.NoError(t, err)

	err = svc.CompletePaymentByOrder(ord.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	err = svc.CompletePaymentByOrder(999)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestSetOrderStatus(t *testing.T) {
	svc, _ := newTestService(t)

	ord, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 10000})
	require.NoError(t, err)

	// Any enumerated target is accepted from any state.
	for _, status := range []OrderStatus{
		OrderStatusDelivered,
		OrderStatusOrdered,
		OrderStatusExchanged,
		OrderStatusCancelled,
	} {
		require.NoError(t, svc.SetOrderStatus(ord.ID, status))
		got, err := svc.GetOrder(nil, ord.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	err = svc.SetOrderStatus(ord.ID, OrderStatus("SLEEPING"))
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	err = svc.SetOrderStatus(999, OrderStatusShipped)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestAutoAdvanceBoundary(t *testing.T) {
	svc, db := newTestService(t)

	stale, stalePayment := createPaidOrder(t, svc, 1)
	fresh, freshPayment := createPaidOrder(t, svc, 1)

	now := time.Now().UTC()
	backdatePayment(t, db, stalePayment.ID, now.Add(-12*time.Hour-time.Second))
	backdatePayment(t, db, freshPayment.ID, now.Add(-11*time.Hour-59*time.Minute))

	advanced, err := svc.AutoAdvance(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, advanced)

	got, err := svc.GetOrder(nil, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPreparing, got.Status)

	got, err = svc.GetOrder(nil, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusOrdered, got.Status)
}

func TestAutoAdvanceSkipsNonOrderedAndUnpaid(t *testing.T) {
	svc, db := newTestService(t)

	// Completed long ago but already shipped.
	shipped, shippedPayment := createPaidOrder(t, svc, 1)
	require.NoError(t, svc.SetOrderStatus(shipped.ID, OrderStatusShipped))

	// Payment still pending.
	pendingPayment, err := svc.CreatePayment(1, &CreatePaymentRequest{Amount: 10000})
	require.NoError(t, err)
	pendingOrder, err := svc.CreateOrder(1, &CreateOrderRequest{PaymentID: &pendingPayment.ID, TotalAmount: 10000})
	require.NoError(t, err)

	// No payment at all.
	bare, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 10000})
	require.NoError(t, err)

	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	backdatePayment(t, db, shippedPayment.ID, cutoff)
	backdatePayment(t, db, pendingPayment.ID, cutoff)

	advanced, err := svc.AutoAdvance(nil)
	require.NoError(t, err)
	assert.Zero(t, advanced)

	for id, want := range map[uint]OrderStatus{
		shipped.ID:      OrderStatusShipped,
		pendingOrder.ID: OrderStatusOrdered,
		bare.ID:         OrderStatusOrdered,
	} {
		got, err := svc.GetOrder(nil, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
	}
}

func TestAutoAdvanceCustomerScope(t *testing.T) {
	svc, db := newTestService(t)

	mine, minePayment := createPaidOrder(t, svc, 1)
	other, otherPayment := createPaidOrder(t, svc, 2)

	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	backdatePayment(t, db, minePayment.ID, cutoff)
	backdatePayment(t, db, otherPayment.ID, cutoff)

	customerID := uint(1)
	advanced, err := svc.AutoAdvance(&customerID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, advanced)

	got, err := svc.GetOrder(nil, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPreparing, got.Status)

	got, err = svc.GetOrder(nil, other.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusOrdered, got.Status)
}

func TestAutoAdvanceIsIdempotent(t *testing.T) {
	svc, db := newTestService(t)

	_, payment := createPaidOrder(t, svc, 1)
	backdatePayment(t, db, payment.ID, time.Now().UTC().Add(-24*time.Hour))

	advanced, err := svc.AutoAdvance(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, advanced)

	advanced, err = svc.AutoAdvance(nil)
	require.NoError(t, err)
	assert.Zero(t, advanced)
}

func TestListOrdersAppliesAutoAdvanceInline(t *testing.T) {
	svc, db := newTestService(t)

	ord, payment := createPaidOrder(t, svc, 1)
	backdatePayment(t, db, payment.ID, time.Now().UTC().Add(-24*time.Hour))

	resp, err := svc.ListOrders(&OrderListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, ord.ID, resp.Orders[0].ID)
	assert.Equal(t, OrderStatusPreparing, resp.Orders[0].Status)
	assert.NotEmpty(t, resp.Orders[0].OrderNumber)
}

func TestListOrdersStatusFilter(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 10000})
	require.NoError(t, err)
	second, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 20000})
	require.NoError(t, err)
	require.NoError(t, svc.SetOrderStatus(second.ID, OrderStatusShipped))

	resp, err := svc.ListOrders(&OrderListRequest{Status: OrderStatusShipped})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, second.ID, resp.Orders[0].ID)

	resp, err = svc.ListOrders(&OrderListRequest{Status: OrderStatusOrdered})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, first.ID, resp.Orders[0].ID)

	_, err = svc.ListOrders(&OrderListRequest{Status: OrderStatus("bogus")})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestListOrdersPagination(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 5; i++ {
		_, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 10000})
		require.NoError(t, err)
	}

	resp, err := svc.ListOrders(&OrderListRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Orders, 2)
	assert.EqualValues(t, 5, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)

	resp, err = svc.ListOrders(&OrderListRequest{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Orders, 1)
}

func TestListCustomerOrdersScopes(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 10000})
	require.NoError(t, err)
	_, err = svc.CreateOrder(2, &CreateOrderRequest{TotalAmount: 20000})
	require.NoError(t, err)

	resp, err := svc.ListCustomerOrders(1, 1, 20)
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.EqualValues(t, 1, resp.Orders[0].CustomerID)
}

func TestGetOrderOwnership(t *testing.T) {
	svc, _ := newTestService(t)

	ord, err := svc.CreateOrder(1, &CreateOrderRequest{TotalAmount: 10000})
	require.NoError(t, err)

	owner := uint(1)
	got, err := svc.GetOrder(&owner, ord.ID)
	require.NoError(t, err)
	assert.Equal(t, ord.ID, got.ID)

	stranger := uint(2)
	_, err = svc.GetOrder(&stranger, ord.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
