// internal/domain/schema/resolver.go
package schema

import (
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Some deployments carry legacy column spellings on the cart and payment
// tables, and older ones lack the color lookup table entirely. Probe inspects
// the live schema once at startup and produces an immutable Info consumed by
// every later query. A failed metadata query is never fatal: it just means
// "legacy spelling not present", so the default identifiers are used.

// Default and legacy column spellings
const (
	DefaultCartCreatedColumn    = "created_at"
	LegacyCartCreatedColumn     = "reg_date"
	DefaultCartUpdatedColumn    = "updated_at"
	LegacyCartUpdatedColumn     = "mod_date"
	DefaultPaymentUpdatedColumn = "updated_at"
	LegacyPaymentUpdatedColumn  = "mod_date"
)

// Info holds the resolved schema capabilities for the process lifetime
type Info struct {
	CartCreatedColumn    string
	CartUpdatedColumn    string
	PaymentUpdatedColumn string

	// HasColorTable reports whether the colors(id, name, code) lookup table
	// exists with the expected columns. When false, dependent joins degrade
	// to null display fields instead of failing the request.
	HasColorTable bool
}

// Defaults returns the Info a fresh, fully-migrated schema resolves to
func Defaults() Info {
	return Info{
		CartCreatedColumn:    DefaultCartCreatedColumn,
		CartUpdatedColumn:    DefaultCartUpdatedColumn,
		PaymentUpdatedColumn: DefaultPaymentUpdatedColumn,
		HasColorTable:        true,
	}
}

// Probe inspects the store's metadata and resolves the concrete identifiers
// to use. Call once at startup; the result is safe to share.
func Probe(db *gorm.DB) Info {
	// Metadata probes are expected to fail on legacy stores; keep them quiet.
	probe := db.Session(&gorm.Session{Logger: gormlogger.Discard})

	return Info{
		CartCreatedColumn:    pickColumn(probe, "cart_items", DefaultCartCreatedColumn, LegacyCartCreatedColumn),
		CartUpdatedColumn:    pickColumn(probe, "cart_items", DefaultCartUpdatedColumn, LegacyCartUpdatedColumn),
		PaymentUpdatedColumn: pickColumn(probe, "payments", DefaultPaymentUpdatedColumn, LegacyPaymentUpdatedColumn),
		HasColorTable:        hasColorTable(probe),
	}
}

// pickColumn returns the first of the accepted spellings that exists on the
// table, falling back to the default spelling so writes still target a
// deterministic name even on an uninitialized schema.
func pickColumn(db *gorm.DB, table, preferred, legacy string) string {
	if columnExists(db, table, preferred) {
		return preferred
	}
	if columnExists(db, table, legacy) {
		return legacy
	}
	return preferred
}

func columnExists(db *gorm.DB, table, column string) bool {
	var count int64
	err := db.Raw(
		"SELECT COUNT(*) FROM information_schema.columns WHERE table_name = ? AND column_name = ?",
		table, column,
	).Scan(&count).Error
	if err != nil {
		// Metadata not queryable; treat as absent.
		return false
	}
	return count > 0
}

// hasColorTable checks that the colors table exists and carries every column
// the cart and dashboard joins rely on. The query references all three
// columns so a partially-shaped table also counts as absent.
func hasColorTable(db *gorm.DB) bool {
	var count int64
	err := db.Raw(
		"SELECT COUNT(*) FROM colors WHERE id IS NOT NULL OR name IS NOT NULL OR code IS NOT NULL",
	).Scan(&count).Error
	return err == nil
}
