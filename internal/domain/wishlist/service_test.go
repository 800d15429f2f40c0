package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/your-org/storefront-backend/internal/pkg/apperror"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&WishlistItem{}))
	return NewService(db), db
}

func TestAddIsIdempotent(t *testing.T) {
	svc, db := newTestService(t)

	first, err := svc.Add(1, 10)
	require.NoError(t, err)

	second, err := svc.Add(1, 10)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&WishlistItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(1, 0)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestRemove(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(1, 10)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(1, 10))

	err = svc.Remove(1, 10)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestListScopesToCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(1, 10)
	require.NoError(t, err)
	_, err = svc.Add(1, 11)
	require.NoError(t, err)
	_, err = svc.Add(2, 10)
	require.NoError(t, err)

	items, err := svc.List(1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
