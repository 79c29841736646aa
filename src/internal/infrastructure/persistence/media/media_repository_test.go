package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
)

// ===========================
// MediaRepository Integration Tests
// ===========================

// setupTestDB 創建測試資料庫（in-memory SQLite）
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")

	err = db.AutoMigrate(&MediaAssetGORM{})
	require.NoError(t, err, "failed to migrate database schema")

	return db
}

var testNow = time.Date(2026, 3, 6, 15, 0, 0, 0, time.UTC)

// createTestAsset 創建測試用媒體資產
func createTestAsset(t *testing.T, propertyID listing.PropertyID, mediaType media.MediaType, position int) *media.MediaAsset {
	t.Helper()
	asset, err := media.NewMediaAsset(
		propertyID, mediaType, position,
		"media/asset.bin", "", testNow.Add(time.Duration(position)*time.Second),
	)
	require.NoError(t, err)
	return asset
}

// Test 1: Save and find round trip
func TestMediaRepository_SaveAndFindByID_RoundTrip(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	propertyID := listing.NewPropertyID()
	asset := createTestAsset(t, propertyID, media.TypeImage, 0)

	// Act
	require.NoError(t, repo.Save(nil, asset))
	found, err := repo.FindByID(nil, asset.MediaID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, asset.MediaID().String(), found.MediaID().String())
	assert.Equal(t, propertyID.String(), found.PropertyID().String())
	assert.Equal(t, media.TypeImage, found.Type())
	assert.Equal(t, 0, found.Position())
	assert.Equal(t, "media/asset.bin", found.StorageKey())
}

// Test 2: FindByID returns not found error
func TestMediaRepository_FindByID_NotFound_ReturnsError(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewMediaRepository(db)

	// Act
	found, err := repo.FindByID(nil, media.NewMediaID())

	// Assert
	assert.Nil(t, found)
	assert.ErrorIs(t, err, media.ErrMediaNotFound)
}

// Test 3: ListByProperty scopes and orders by position
func TestMediaRepository_ListByProperty_OrderedByPosition(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	propertyID := listing.NewPropertyID()

	second := createTestAsset(t, propertyID, media.TypeVideo, 1)
	first := createTestAsset(t, propertyID, media.TypeImage, 0)
	foreign := createTestAsset(t, listing.NewPropertyID(), media.TypeImage, 0)
	require.NoError(t, repo.Save(nil, second))
	require.NoError(t, repo.Save(nil, first))
	require.NoError(t, repo.Save(nil, foreign))

	// Act
	assets, err := repo.ListByProperty(nil, propertyID)

	// Assert
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, first.MediaID().String(), assets[0].MediaID().String())
	assert.Equal(t, second.MediaID().String(), assets[1].MediaID().String())
}

// Test 4: CountByProperty
func TestMediaRepository_CountByProperty(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	propertyID := listing.NewPropertyID()
	require.NoError(t, repo.Save(nil, createTestAsset(t, propertyID, media.TypeImage, 0)))
	require.NoError(t, repo.Save(nil, createTestAsset(t, propertyID, media.TypeFloorplan, 1)))

	// Act
	count, err := repo.CountByProperty(nil, propertyID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	empty, err := repo.CountByProperty(nil, listing.NewPropertyID())
	require.NoError(t, err)
	assert.Equal(t, 0, empty)
}

// Test 5: UpdatePositions rewrites the whole batch
func TestMediaRepository_UpdatePositions_BatchRewrite(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	propertyID := listing.NewPropertyID()
	a := createTestAsset(t, propertyID, media.TypeImage, 0)
	b := createTestAsset(t, propertyID, media.TypeImage, 1)
	require.NoError(t, repo.Save(nil, a))
	require.NoError(t, repo.Save(nil, b))

	// Act - 交換位置
	require.NoError(t, b.MoveTo(0))
	require.NoError(t, a.MoveTo(1))
	err := repo.UpdatePositions(nil, []*media.MediaAsset{b, a})

	// Assert
	require.NoError(t, err)
	assets, err := repo.ListByProperty(nil, propertyID)
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, b.MediaID().String(), assets[0].MediaID().String())
	assert.Equal(t, a.MediaID().String(), assets[1].MediaID().String())
}

// Test 6: UpdatePositions with unknown media returns not found
func TestMediaRepository_UpdatePositions_UnknownMedia_ReturnsError(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	stray := createTestAsset(t, listing.NewPropertyID(), media.TypeImage, 0)

	// Act
	err := repo.UpdatePositions(nil, []*media.MediaAsset{stray})

	// Assert
	assert.ErrorIs(t, err, media.ErrMediaNotFound)
}

// Test 7: Delete removes the record
func TestMediaRepository_Delete_RemovesRecord(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	asset := createTestAsset(t, listing.NewPropertyID(), media.TypeImage, 0)
	require.NoError(t, repo.Save(nil, asset))

	// Act
	err := repo.Delete(nil, asset.MediaID())

	// Assert
	require.NoError(t, err)
	_, findErr := repo.FindByID(nil, asset.MediaID())
	assert.ErrorIs(t, findErr, media.ErrMediaNotFound)

	assert.ErrorIs(t, repo.Delete(nil, asset.MediaID()), media.ErrMediaNotFound)
}
