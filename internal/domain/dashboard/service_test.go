package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/schema"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func setupFullDB(t *testing.T) *gorm.DB {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(
		&customer.Customer{}, &order.Payment{}, &order.Order{},
		&catalog.Product{}, &catalog.ProductColor{}, &catalog.ProductOption{},
	))
	return db
}

func TestGetStatsRollup(t *testing.T) {
	db := setupFullDB(t)
	svc := NewService(db, schema.Defaults())

	customers := []customer.Customer{
		{Email: "a@example.com", Name: "A"},
		{Email: "b@example.com", Name: "B"},
		{Email: "c@example.com", Name: "C"},
	}
	require.NoError(t, db.Create(&customers).Error)

	payments := []order.Payment{
		{CustomerID: 1, Amount: 10000, Status: order.PaymentStatusPending},
		{CustomerID: 2, Amount: 20000, Status: order.PaymentStatusCompleted},
		{CustomerID: 3, Amount: 30000, Status: order.PaymentStatusCompleted},
		{CustomerID: 3, Amount: 5000, Status: order.PaymentStatusRefunded},
	}
	require.NoError(t, db.Create(&payments).Error)

	orders := []order.Order{
		{CustomerID: 1, TotalAmount: 10000, Status: order.OrderStatusOrdered},
		{CustomerID: 2, TotalAmount: 20000, Status: order.OrderStatusOrdered},
		{CustomerID: 3, TotalAmount: 30000, Status: order.OrderStatusShipped},
	}
	require.NoError(t, db.Create(&orders).Error)

	stats, err := svc.GetStats()
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.CustomerCount)
	assert.EqualValues(t, 1, stats.PendingPayments)
	assert.EqualValues(t, 50000, stats.CompletedSalesAmount)

	byStatus := map[order.OrderStatus]int64{}
	for _, sc := range stats.OrdersByStatus {
		byStatus[sc.Status] = sc.Count
	}
	assert.EqualValues(t, 2, byStatus[order.OrderStatusOrdered])
	assert.EqualValues(t, 1, byStatus[order.OrderStatusShipped])

	require.Len(t, stats.RecentOrders, 3)
	assert.NotEmpty(t, stats.RecentOrders[0].OrderNumber)
}

func TestTrailingSeriesCoversSevenDays(t *testing.T) {
	db := setupFullDB(t)
	svc := NewService(db, schema.Defaults())

	// One customer today, one three days ago, one outside the window.
	now := time.Now().UTC()
	rows := []customer.Customer{
		{Email: "today@example.com", Name: "T"},
		{Email: "mid@example.com", Name: "M"},
		{Email: "old@example.com", Name: "O"},
	}
	require.NoError(t, db.Create(&rows).Error)
	require.NoError(t, db.Model(&customer.Customer{}).Where("id = ?", rows[1].ID).
		UpdateColumn("created_at", now.AddDate(0, 0, -3)).Error)
	require.NoError(t, db.Model(&customer.Customer{}).Where("id = ?", rows[2].ID).
		UpdateColumn("created_at", now.AddDate(0, 0, -30)).Error)

	stats, err := svc.GetStats()
	require.NoError(t, err)

	require.Len(t, stats.NewCustomersByDay, 7)
	require.Len(t, stats.CompletedSalesByDay, 7)

	// Oldest day first, today last.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today.Format("2006-01-02"), stats.NewCustomersByDay[6].Date)
	assert.Equal(t, today.AddDate(0, 0, -6).Format("2006-01-02"), stats.NewCustomersByDay[0].Date)

	var total int64
	for _, day := range stats.NewCustomersByDay {
		total += day.Count
	}
	assert.EqualValues(t, 2, total)
}

func TestLowStockPrefersOptionRows(t *testing.T) {
	db := setupFullDB(t)
	svc := NewService(db, schema.Defaults())

	options := []catalog.ProductOption{
		{ProductID: 1, ColorID: 1, SizeID: 1, Stock: 2},
		{ProductID: 1, ColorID: 1, SizeID: 2, Stock: 5},
		{ProductID: 1, ColorID: 2, SizeID: 1, Stock: 6},
	}
	require.NoError(t, db.Create(&options).Error)

	// Color-level rows exist too but must be ignored.
	require.NoError(t, db.Create(&catalog.ProductColor{ProductID: 1, ColorID: 1, Stock: 0}).Error)

	stats, err := svc.GetStats()
	require.NoError(t, err)

	require.Len(t, stats.LowStock, 2)
	assert.Equal(t, 2, stats.LowStock[0].Stock)
	require.NotNil(t, stats.LowStock[0].SizeID)
	assert.EqualValues(t, 1, *stats.LowStock[0].SizeID)
	assert.Equal(t, 5, stats.LowStock[1].Stock)
}

func TestLowStockFallsBackToColorRows(t *testing.T) {
	db := openTestDB(t)
	// No product_options table on this schema.
	require.NoError(t, db.AutoMigrate(
		&customer.Customer{}, &order.Payment{}, &order.Order{},
		&catalog.ProductColor{},
	))
	svc := NewService(db, schema.Defaults())

	require.NoError(t, db.Create(&catalog.ProductColor{ProductID: 1, ColorID: 3, Stock: 1}).Error)

	stats, err := svc.GetStats()
	require.NoError(t, err)

	require.Len(t, stats.LowStock, 1)
	assert.EqualValues(t, 3, stats.LowStock[0].ColorID)
	assert.Nil(t, stats.LowStock[0].SizeID)
}

func TestLowStockEmptyWhenNoVariantTables(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(
		&customer.Customer{}, &order.Payment{}, &order.Order{},
	))
	svc := NewService(db, schema.Defaults())

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Empty(t, stats.LowStock)
}
