package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/your-org/storefront-backend/internal/domain/schema"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
)

// testProduct mirrors the catalog product columns the cart join reads
type testProduct struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Price        int64
	ThumbnailURL string
}

func (testProduct) TableName() string { return "products" }

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection serializes concurrent transactions on sqlite.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&CartItem{}, &testProduct{}))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := setupTestDB(t)
	info := schema.Defaults()
	info.HasColorTable = false
	return NewService(db, info), db
}

// testColor mirrors the color lookup columns the cart join reads
type testColor struct {
	ID   uint `gorm:"primaryKey"`
	Name string
	Code string
}

func (testColor) TableName() string { return "colors" }

func TestAddMergesExistingLine(t *testing.T) {
	svc, db := newTestService(t)

	first, err := svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 1, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	var count int64
	require.NoError(t, db.Model(&CartItem{}).Where("customer_id = ?", 5).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddDifferentOptionsCreateSeparateLines(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 1, Quantity: 1})
	require.NoError(t, err)

	// Same product, different size.
	_, err = svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 2, Quantity: 1})
	require.NoError(t, err)

	// Same option, different customer.
	_, err = svc.Add(6, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 1, Quantity: 1})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestAddValidation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name string
		req  AddToCartRequest
	}{
		{"zero product", AddToCartRequest{ProductID: 0, ColorID: 1, SizeID: 1, Quantity: 1}},
		{"zero color", AddToCartRequest{ProductID: 1, ColorID: 0, SizeID: 1, Quantity: 1}},
		{"zero size", AddToCartRequest{ProductID: 1, ColorID: 1, SizeID: 0, Quantity: 1}},
		{"zero quantity", AddToCartRequest{ProductID: 1, ColorID: 1, SizeID: 1, Quantity: 0}},
		{"negative quantity", AddToCartRequest{ProductID: 1, ColorID: 1, SizeID: 1, Quantity: -2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(5, &tc.req)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		})
	}
}

func TestConcurrentAddsMergeIntoOneLine(t *testing.T) {
	svc, db := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 1, Quantity: 2})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var items []CartItem
	require.NoError(t, db.Where("customer_id = ?", 5).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 1, Quantity: 1})
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(5, item.ID, &UpdateQuantityRequest{Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	_, err = svc.UpdateQuantity(5, item.ID, &UpdateQuantityRequest{Quantity: 0})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.UpdateQuantity(5, 999, &UpdateQuantityRequest{Quantity: 2})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	// Another customer cannot touch the line.
	_, err = svc.UpdateQuantity(6, item.ID, &UpdateQuantityRequest{Quantity: 2})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRemove(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(5, item.ID))

	err = svc.Remove(5, item.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestListJoinsProductFields(t *testing.T) {
	svc, db := newTestService(t)

	require.NoError(t, db.Create(&testProduct{
		ID:           2,
		Name:         "Wool Coat",
		Price:        129000,
		ThumbnailURL: "/uploads/coat.jpg",
	}).Error)

	_, err := svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 2, Quantity: 3})
	require.NoError(t, err)

	lines, err := svc.List(5)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Equal(t, "Wool Coat", line.ProductName)
	assert.EqualValues(t, 129000, line.Price)
	assert.Equal(t, "/uploads/coat.jpg", line.ThumbnailURL)
	assert.Equal(t, "M", line.SizeLabel)
	assert.Equal(t, 3, line.Quantity)
	assert.Nil(t, line.ColorName)
	assert.Nil(t, line.ColorCode)
}

func TestListIncludesColorFieldsWhenLookupTableExists(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&testColor{}))
	svc := NewService(db, schema.Defaults())

	require.NoError(t, db.Create(&testProduct{ID: 2, Name: "Wool Coat", Price: 129000}).Error)
	require.NoError(t, db.Create(&testColor{ID: 1, Name: "Black", Code: "#000000"}).Error)

	_, err := svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 1, SizeID: 1, Quantity: 1})
	require.NoError(t, err)

	// A line whose color has no lookup row degrades to null display fields.
	_, err = svc.Add(5, &AddToCartRequest{ProductID: 2, ColorID: 99, SizeID: 1, Quantity: 1})
	require.NoError(t, err)

	lines, err := svc.List(5)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	byColor := map[uint]CartLine{}
	for _, line := range lines {
		byColor[line.ColorID] = line
	}

	known := byColor[1]
	require.NotNil(t, known.ColorName)
	assert.Equal(t, "Black", *known.ColorName)
	require.NotNil(t, known.ColorCode)
	assert.Equal(t, "#000000", *known.ColorCode)

	unknown := byColor[99]
	assert.Nil(t, unknown.ColorName)
	assert.Nil(t, unknown.ColorCode)
}

func TestListEmptyCart(t *testing.T) {
	svc, _ := newTestService(t)

	lines, err := svc.List(5)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "S", SizeLabel(1))
	assert.Equal(t, "M", SizeLabel(2))
	assert.Equal(t, "L", SizeLabel(3))
	assert.Equal(t, "SIZE-9", SizeLabel(9))
}
