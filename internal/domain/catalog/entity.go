// internal/domain/catalog/entity.go
package catalog

import (
	"time"
)

// ProductStatus represents the sale status of a product
type ProductStatus string

const (
	ProductStatusOnSale  ProductStatus = "on_sale"
	ProductStatusSoldOut ProductStatus = "sold_out"
	ProductStatusHidden  ProductStatus = "hidden"
)

// IsValid reports whether the status is one of the allowed values
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusOnSale, ProductStatusSoldOut, ProductStatusHidden:
		return true
	}
	return false
}

// Product represents the catalog entry. Each product owns a variant matrix:
// per-color stock rows plus per-(color, size) stock and price-delta rows. The
// matrix is only ever replaced as a whole.
type Product struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"not null;size:255" json:"name"`
	Description  string        `gorm:"type:text" json:"description"`
	Price        int64         `gorm:"not null" json:"price"`
	CategoryID   uint          `gorm:"not null;index" json:"category_id"`
	Status       ProductStatus `gorm:"not null;default:'on_sale';size:20" json:"status"`
	ThumbnailURL string        `gorm:"size:500" json:"thumbnail_url"`
	IsLive       bool          `gorm:"default:true" json:"is_live"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	// Relationships
	Colors  []ProductColor  `gorm:"foreignKey:ProductID" json:"colors,omitempty"`
	Options []ProductOption `gorm:"foreignKey:ProductID" json:"options,omitempty"`
}

// ProductColor represents per-color stock for a product
type ProductColor struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	ColorID   uint `gorm:"not null" json:"color_id"`
	Stock     int  `gorm:"not null;default:0" json:"stock"`
}

// ProductOption represents per-(color, size) stock and price delta
type ProductOption struct {
	ID              uint  `gorm:"primaryKey" json:"id"`
	ProductID       uint  `gorm:"not null;index" json:"product_id"`
	ColorID         uint  `gorm:"not null" json:"color_id"`
	SizeID          uint  `gorm:"not null" json:"size_id"`
	Stock           int   `gorm:"not null;default:0" json:"stock"`
	AdditionalPrice int64 `gorm:"not null;default:0" json:"additional_price"`
}

// Category represents a catalog category
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null;size:100" json:"slug"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Color is the optional lookup table mapping a color id to display fields.
// Legacy deployments may not have it; joins degrade to null display fields.
type Color struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:50" json:"name"`
	Code string `gorm:"size:10" json:"code"`
}

// TableName overrides
func (Product) TableName() string       { return "products" }
func (ProductColor) TableName() string  { return "product_colors" }
func (ProductOption) TableName() string { return "product_options" }
func (Category) TableName() string      { return "categories" }
func (Color) TableName() string         { return "colors" }
