// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"strings"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
	"gorm.io/gorm"
)

// Service handles catalog write business logic
type Service struct {
	db     *gorm.DB
	thumbs ThumbnailStore
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, thumbs ThumbnailStore) *Service {
	return &Service{
		db:     db,
		thumbs: thumbs,
	}
}

// ColorRowInput is one per-color stock row of the variant matrix
type ColorRowInput struct {
	ColorID uint `json:"color_id"`
	Stock   int  `json:"stock"`
}

// OptionRowInput is one per-(color, size) row of the variant matrix
type OptionRowInput struct {
	ColorID         uint  `json:"color_id"`
	SizeID          uint  `json:"size_id"`
	Stock           int   `json:"stock"`
	AdditionalPrice int64 `json:"additional_price"`
}

// ProductInput carries product fields plus the full variant matrix. The
// matrix always arrives whole; there is no partial-update path.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`

	// Category resolves by id when set, otherwise by name or slug
	CategoryID uint   `json:"category_id"`
	Category   string `json:"category"`

	Status string `json:"status"`

	// Either a prepared URL or an inline payload to materialize
	ThumbnailURL         string `json:"thumbnail_url"`
	ThumbnailData        []byte `json:"thumbnail_data,omitempty"`
	ThumbnailContentType string `json:"thumbnail_content_type,omitempty"`

	IsLive bool `json:"is_live"`

	Colors  []ColorRowInput  `json:"colors"`
	Options []OptionRowInput `json:"options"`
}

// builtinCategories covers the well-known category names for deployments
// whose categories table has not been seeded yet.
var builtinCategories = map[string]uint{
	"outer":  1,
	"top":    2,
	"bottom": 3,
	"acc":    4,
}

// Create validates the product and its full variant matrix, then inserts the
// product row, every color row and every option row in one transaction.
// A single invalid row aborts the whole operation before any write.
func (s *Service) Create(input *ProductInput) (*Product, error) {
	categoryID, err := s.resolveCategory(input)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	thumbnailURL, err := s.materializeThumbnail(input)
	if err != nil {
		return nil, err
	}

	product := Product{
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Price:        input.Price,
		CategoryID:   categoryID,
		Status:       ProductStatus(input.Status),
		ThumbnailURL: thumbnailURL,
		IsLive:       input.IsLive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return insertMatrix(tx, product.ID, input)
	})
	if err != nil {
		return nil, apperror.Store("failed to create product", err)
	}

	return &product, nil
}

// Replace updates the product row and swaps its entire variant matrix:
// existing option rows are deleted, then color rows, then the new rows are
// inserted, all in one transaction. Validation happens before any write, so
// a rejected matrix leaves the previous one untouched.
func (s *Service) Replace(productID uint, input *ProductInput) (*Product, error) {
	categoryID, err := s.resolveCategory(input)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var product Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("product not found")
		}
		return nil, apperror.Store("failed to retrieve product", err)
	}

	thumbnailURL, err := s.materializeThumbnail(input)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        strings.TrimSpace(input.Name),
			"description": input.Description,
			"price":       input.Price,
			"category_id": categoryID,
			"status":      ProductStatus(input.Status),
			"is_live":     input.IsLive,
		}
		if thumbnailURL != "" {
			updates["thumbnail_url"] = thumbnailURL
		}

		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			return err
		}

		// Options first, then colors: children before parents.
		if err := tx.Where("product_id = ?", productID).Delete(&ProductOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&ProductColor{}).Error; err != nil {
			return err
		}

		return insertMatrix(tx, productID, input)
	})
	if err != nil {
		return nil, apperror.Store("failed to replace product", err)
	}

	return s.Get(productID)
}

// SetLive toggles the live flag
func (s *Service) SetLive(productID uint, isLive bool) error {
	result := s.db.Model(&Product{}).Where("id = ?", productID).Update("is_live", isLive)
	if result.Error != nil {
		return apperror.Store("failed to update live flag", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("product not found")
	}
	return nil
}

// Delete removes a product and everything referencing it: option rows, color
// rows, cart lines and wishlist entries, all in one transaction.
func (s *Service) Delete(productID uint) error {
	var product Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("product not found")
		}
		return apperror.Store("failed to retrieve product", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&ProductOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&ProductColor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&wishlist.WishlistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		return apperror.Store("failed to delete product", err)
	}
	return nil
}

// Get retrieves a product with its variant matrix
func (s *Service) Get(productID uint) (*Product, error) {
	var product Product
	err := s.db.
		Preload("Colors").
		Preload("Options").
		First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("product not found")
		}
		return nil, apperror.Store("failed to retrieve product", err)
	}
	return &product, nil
}

// ListRequest represents admin list query parameters
type ListRequest struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// List retrieves products for the admin catalog view, newest first
func (s *Service) List(req *ListRequest) ([]Product, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	var total int64
	if err := s.db.Model(&Product{}).Count(&total).Error; err != nil {
		return nil, 0, apperror.Store("failed to count products", err)
	}

	var products []Product
	err := s.db.
		Preload("Colors").
		Preload("Options").
		Order("created_at DESC, id DESC").
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, apperror.Store("failed to retrieve products", err)
	}

	return products, total, nil
}

// resolveCategory maps the input to a category id: explicit id, then
// name/slug lookup, then the built-in fallback table.
func (s *Service) resolveCategory(input *ProductInput) (uint, error) {
	if input.CategoryID > 0 {
		var category Category
		err := s.db.First(&category, input.CategoryID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperror.Validation("category does not exist")
			}
			return 0, apperror.Store("failed to resolve category", err)
		}
		return category.ID, nil
	}

	name := strings.ToLower(strings.TrimSpace(input.Category))
	if name == "" {
		return 0, apperror.Validation("category is required")
	}

	var category Category
	err := s.db.Where("slug = ? OR LOWER(name) = ?", name, name).First(&category).Error
	if err == nil {
		return category.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperror.Store("failed to resolve category", err)
	}

	if id, ok := builtinCategories[name]; ok {
		return id, nil
	}
	return 0, apperror.Validation("unknown category")
}

// materializeThumbnail turns the input into a durable URL. A prepared URL
// passes through; an inline payload goes to the thumbnail store.
func (s *Service) materializeThumbnail(input *ProductInput) (string, error) {
	if input.ThumbnailURL != "" {
		return input.ThumbnailURL, nil
	}
	if len(input.ThumbnailData) == 0 {
		return "", nil
	}
	if s.thumbs == nil {
		return "", apperror.Upstream("thumbnail storage is not configured", nil)
	}

	url, err := s.thumbs.Save(input.ThumbnailData, input.ThumbnailContentType)
	if err != nil {
		return "", apperror.Upstream("failed to materialize thumbnail", err)
	}
	return url, nil
}

// validateInput checks the product fields and the whole variant matrix
// before anything is written. Option rows must reference a color present in
// the submitted color rows; a matrix with dangling options is rejected whole.
func validateInput(input *ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperror.Validation("product name is required")
	}
	if input.Price < 0 {
		return apperror.Validation("price must be a non-negative integer")
	}
	if !ProductStatus(input.Status).IsValid() {
		return apperror.Validation("status must be one of on_sale, sold_out, hidden")
	}
	if input.ThumbnailURL == "" && len(input.ThumbnailData) == 0 {
		return apperror.Validation("thumbnail is required")
	}

	colorSet := make(map[uint]bool, len(input.Colors))
	for _, row := range input.Colors {
		if row.ColorID == 0 {
			return apperror.Validation("color row requires a positive color id")
		}
		if row.Stock < 0 {
			return apperror.Validation("color stock must be a non-negative integer")
		}
		colorSet[row.ColorID] = true
	}

	for _, row := range input.Options {
		if row.ColorID == 0 || row.SizeID == 0 {
			return apperror.Validation("option row requires positive color and size ids")
		}
		if row.Stock < 0 {
			return apperror.Validation("option stock must be a non-negative integer")
		}
		if !colorSet[row.ColorID] {
			return apperror.Validation("option row references a color missing from the color rows")
		}
	}

	return nil
}

// insertMatrix writes the color rows, then the option rows
func insertMatrix(tx *gorm.DB, productID uint, input *ProductInput) error {
	for _, row := range input.Colors {
		pc := ProductColor{
			ProductID: productID,
			ColorID:   row.ColorID,
			Stock:     row.Stock,
		}
		if err := tx.Create(&pc).Error; err != nil {
			return err
		}
	}

	for _, row := range input.Options {
		po := ProductOption{
			ProductID:       productID,
			ColorID:         row.ColorID,
			SizeID:          row.SizeID,
			Stock:           row.Stock,
			AdditionalPrice: row.AdditionalPrice,
		}
		if err := tx.Create(&po).Error; err != nil {
			return err
		}
	}

	return nil
}
