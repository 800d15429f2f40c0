// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront-backend/internal/domain/address"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/customer"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{db: db}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: referenced tables first
	models := []interface{}{
		&customer.Customer{},
		&address.Address{},

		&catalog.Category{},
		&catalog.Color{},
		&catalog.Product{},
		&catalog.ProductColor{},
		&catalog.ProductOption{},

		&cart.CartItem{},
		&wishlist.WishlistItem{},

		&order.Payment{},
		&order.Order{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_addresses_customer_default ON addresses(customer_id, is_default)",
		"CREATE INDEX IF NOT EXISTS idx_cart_items_customer_updated ON cart_items(customer_id, updated_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_live ON products(category_id, is_live)",
		"CREATE INDEX IF NOT EXISTS idx_product_options_stock ON product_options(stock)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status_payment ON orders(status, payment_id)",
		"CREATE INDEX IF NOT EXISTS idx_payments_status_updated ON payments(status, updated_at)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedInitialData seeds lookup data for development
func (m *Migration) SeedInitialData() error {
	if err := m.seedCategories(); err != nil {
		return err
	}
	return m.seedColors()
}

// seedCategories seeds the four well-known categories with their fixed ids,
// matching the built-in fallback table used by category resolution.
func (m *Migration) seedCategories() error {
	categories := []catalog.Category{
		{ID: 1, Name: "Outer", Slug: "outer", SortOrder: 1},
		{ID: 2, Name: "Top", Slug: "top", SortOrder: 2},
		{ID: 3, Name: "Bottom", Slug: "bottom", SortOrder: 3},
		{ID: 4, Name: "Acc", Slug: "acc", SortOrder: 4},
	}

	for _, category := range categories {
		var existing catalog.Category
		if err := m.db.Where("slug = ?", category.Slug).First(&existing).Error; err == nil {
			continue
		}
		if err := m.db.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", category.Slug, err)
		}
	}

	log.Println("✅ Categories seeded")
	return nil
}

func (m *Migration) seedColors() error {
	colors := []catalog.Color{
		{ID: 1, Name: "Black", Code: "#000000"},
		{ID: 2, Name: "White", Code: "#FFFFFF"},
		{ID: 3, Name: "Navy", Code: "#000080"},
		{ID: 4, Name: "Beige", Code: "#F5F5DC"},
		{ID: 5, Name: "Gray", Code: "#808080"},
	}

	for _, color := range colors {
		var existing catalog.Color
		if err := m.db.Where("id = ?", color.ID).First(&existing).Error; err == nil {
			continue
		}
		if err := m.db.Create(&color).Error; err != nil {
			return fmt.Errorf("failed to seed color %s: %w", color.Name, err)
		}
	}

	log.Println("✅ Colors seeded")
	return nil
}
