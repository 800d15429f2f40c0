// internal/domain/dashboard/service.go
package dashboard

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/schema"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Service handles admin dashboard rollups. Read-only: it only merges what
// the other components own.
type Service struct {
	db     *gorm.DB
	schema schema.Info
}

// NewService creates a new dashboard service
func NewService(db *gorm.DB, info schema.Info) *Service {
	return &Service{
		db:     db,
		schema: info,
	}
}

// DayCount is one day of a trailing series
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// StatusCount is one order-status bucket
type StatusCount struct {
	Status order.OrderStatus `json:"status"`
	Count  int64             `json:"count"`
}

// LowStockRow is one low-stock variant row. SizeID is null when the row
// comes from the color-only fallback table.
type LowStockRow struct {
	ProductID uint  `json:"product_id"`
	ColorID   uint  `json:"color_id"`
	SizeID    *uint `json:"size_id"`
	Stock     int   `json:"stock"`
}

// Stats represents the dashboard rollup
type Stats struct {
	CustomerCount        int64         `json:"customer_count"`
	PendingPayments      int64         `json:"pending_payments"`
	CompletedSalesAmount int64         `json:"completed_sales_amount"`
	NewCustomersByDay    []DayCount    `json:"new_customers_by_day"`
	CompletedSalesByDay  []DayCount    `json:"completed_sales_by_day"`
	OrdersByStatus       []StatusCount `json:"orders_by_status"`
	RecentOrders         []order.Order `json:"recent_orders"`
	LowStock             []LowStockRow `json:"low_stock"`
}

const (
	lowStockThreshold = 5
	lowStockLimit     = 10
	recentOrderLimit  = 10
	trailingDays      = 7
)

// GetStats builds the full dashboard rollup
func (s *Service) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := s.db.Raw("SELECT COUNT(*) FROM customers").Scan(&stats.CustomerCount).Error; err != nil {
		return nil, apperror.Store("failed to count customers", err)
	}

	if err := s.db.Raw(
		"SELECT COUNT(*) FROM payments WHERE status = ?", order.PaymentStatusPending,
	).Scan(&stats.PendingPayments).Error; err != nil {
		return nil, apperror.Store("failed to count pending payments", err)
	}

	if err := s.db.Raw(
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = ?", order.PaymentStatusCompleted,
	).Scan(&stats.CompletedSalesAmount).Error; err != nil {
		return nil, apperror.Store("failed to sum completed payments", err)
	}

	newCustomers, err := s.trailingDayCounts("SELECT COUNT(*) FROM customers WHERE created_at >= ? AND created_at < ?")
	if err != nil {
		return nil, err
	}
	stats.NewCustomersByDay = newCustomers

	paidAt := s.schema.PaymentUpdatedColumn
	completedSales, err := s.trailingDayCounts(
		"SELECT COUNT(*) FROM payments WHERE status = 'COMPLETED' AND " + paidAt + " >= ? AND " + paidAt + " < ?",
	)
	if err != nil {
		return nil, err
	}
	stats.CompletedSalesByDay = completedSales

	if err := s.db.Raw(
		"SELECT status, COUNT(*) AS count FROM orders GROUP BY status",
	).Scan(&stats.OrdersByStatus).Error; err != nil {
		return nil, apperror.Store("failed to count orders by status", err)
	}

	var recent []order.Order
	if err := s.db.Order("created_at DESC, id DESC").Limit(recentOrderLimit).Find(&recent).Error; err != nil {
		return nil, apperror.Store("failed to retrieve recent orders", err)
	}
	for i := range recent {
		recent[i].Decorate()
	}
	stats.RecentOrders = recent

	stats.LowStock = s.lowStock()

	return stats, nil
}

// trailingDayCounts runs the per-day query for each of the trailing 7 days,
// oldest first. Dialect-portable at the cost of one query per day.
func (s *Service) trailingDayCounts(query string) ([]DayCount, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := make([]DayCount, 0, trailingDays)
	for i := trailingDays - 1; i >= 0; i-- {
		from := today.AddDate(0, 0, -i)
		to := from.AddDate(0, 0, 1)

		var count int64
		if err := s.db.Raw(query, from, to).Scan(&count).Error; err != nil {
			return nil, apperror.Store("failed to build daily series", err)
		}
		counts = append(counts, DayCount{
			Date:  from.Format("2006-01-02"),
			Count: count,
		})
	}
	return counts, nil
}

// lowStock lists up to 10 variant rows at or under the threshold, preferring
// the option-level table. Deployments without the richer schema fall back to
// the color-only stock table; if both fail the list is empty rather than
// failing the whole dashboard.
func (s *Service) lowStock() []LowStockRow {
	quiet := s.db.Session(&gorm.Session{Logger: gormlogger.Discard})

	var rows []LowStockRow
	err := quiet.Raw(
		"SELECT product_id, color_id, size_id, stock FROM product_options WHERE stock <= ? ORDER BY stock ASC, id ASC LIMIT ?",
		lowStockThreshold, lowStockLimit,
	).Scan(&rows).Error
	if err == nil {
		return rows
	}

	rows = nil
	err = quiet.Raw(
		"SELECT product_id, color_id, NULL AS size_id, stock FROM product_colors WHERE stock <= ? ORDER BY stock ASC, id ASC LIMIT ?",
		lowStockThreshold, lowStockLimit,
	).Scan(&rows).Error
	if err != nil {
		return []LowStockRow{}
	}
	return rows
}
