package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// ReorderMedia Use Case 測試
// ===========================

type reorderFixture struct {
	uc           *ReorderMediaUseCase
	propertyRepo *MockPropertyRepository
	mediaRepo    *MockMediaRepository
	cache        *MockListingCache
}

func newReorderFixture(auth *StubAuthGateway) reorderFixture {
	propertyRepo := NewMockPropertyRepository()
	mediaRepo := NewMockMediaRepository()
	cache := &MockListingCache{}
	uc := NewReorderMediaUseCase(
		propertyRepo, mediaRepo,
		NewMockTransactionManager(), auth, cache,
	)
	return reorderFixture{uc: uc, propertyRepo: propertyRepo, mediaRepo: mediaRepo, cache: cache}
}

func TestReorderMediaUseCase_FullPermutation_AppliesNewOrder(t *testing.T) {
	// Arrange
	user := verifiedUser()
	f := newReorderFixture(&StubAuthGateway{User: user})
	prop := seedProperty(t, f.propertyRepo, user)
	a := seedAsset(t, f.mediaRepo, prop.PropertyID(), media.TypeImage, 0)
	b := seedAsset(t, f.mediaRepo, prop.PropertyID(), media.TypeImage, 1)
	c := seedAsset(t, f.mediaRepo, prop.PropertyID(), media.TypeVideo, 2)

	// Act
	result, err := f.uc.Execute(context.Background(), ReorderMediaCommand{
		PropertyID: prop.PropertyID().String(),
		OrderedIDs: []string{
			c.MediaID().String(), a.MediaID().String(), b.MediaID().String(),
		},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, c.MediaID().String(), result.Items[0].MediaID)
	assert.Equal(t, 0, result.Items[0].Position)
	assert.Equal(t, a.MediaID().String(), result.Items[1].MediaID)
	assert.Equal(t, 1, result.Items[1].Position)
	assert.Equal(t, b.MediaID().String(), result.Items[2].MediaID)
	assert.Equal(t, 2, result.Items[2].Position)

	assert.Equal(t, 1, f.mediaRepo.UpdatePositionsCallCount, "整批位置一次回寫")
	assert.Equal(t, 1, f.cache.InvalidateCallCount)
}

func TestReorderMediaUseCase_MissingID_Rejected(t *testing.T) {
	// Arrange - 缺漏不是排列
	user := verifiedUser()
	f := newReorderFixture(&StubAuthGateway{User: user})
	prop := seedProperty(t, f.propertyRepo, user)
	a := seedAsset(t, f.mediaRepo, prop.PropertyID(), media.TypeImage, 0)
	seedAsset(t, f.mediaRepo, prop.PropertyID(), media.TypeImage, 1)

	// Act
	result, err := f.uc.Execute(context.Background(), ReorderMediaCommand{
		PropertyID: prop.PropertyID().String(),
		OrderedIDs: []string{a.MediaID().String()},
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, media.ErrInvalidPosition)
	assert.Equal(t, 0, f.mediaRepo.UpdatePositionsCallCount)
}

func TestReorderMediaUseCase_DuplicateID_Rejected(t *testing.T) {
	// Arrange
	user := verifiedUser()
	f := newReorderFixture(&StubAuthGateway{User: user})
	prop := seedProperty(t, f.propertyRepo, user)
	a := seedAsset(t, f.mediaRepo, prop.PropertyID(), media.TypeImage, 0)
	seedAsset(t, f.mediaRepo, prop.PropertyID(), media.TypeImage, 1)

	// Act
	_, err := f.uc.Execute(context.Background(), ReorderMediaCommand{
		PropertyID: prop.PropertyID().String(),
		OrderedIDs: []string{a.MediaID().String(), a.MediaID().String()},
	})

	// Assert - 重複 ID 視同引用不存在的媒體
	assert.ErrorIs(t, err, media.ErrMediaNotFound)
}

func TestReorderMediaUseCase_ForeignID_Rejected(t *testing.T) {
	// Arrange
	user := verifiedUser()
	f := newReorderFixture(&StubAuthGateway{User: user})
	prop := seedProperty(t, f.propertyRepo, user)
	seedAsset(t, f.mediaRepo, prop.PropertyID(), media.TypeImage, 0)

	// Act
	_, err := f.uc.Execute(context.Background(), ReorderMediaCommand{
		PropertyID: prop.PropertyID().String(),
		OrderedIDs: []string{media.NewMediaID().String()},
	})

	// Assert
	assert.ErrorIs(t, err, media.ErrMediaNotFound)
}

func TestReorderMediaUseCase_OtherOrg_ReturnsForbidden(t *testing.T) {
	// Arrange
	owner := verifiedUser()
	f := newReorderFixture(&StubAuthGateway{User: verifiedUser()})
	prop := seedProperty(t, f.propertyRepo, owner)
	a := seedAsset(t, f.mediaRepo, prop.PropertyID(), media.TypeImage, 0)

	// Act
	_, err := f.uc.Execute(context.Background(), ReorderMediaCommand{
		PropertyID: prop.PropertyID().String(),
		OrderedIDs: []string{a.MediaID().String()},
	})

	// Assert
	assert.ErrorIs(t, err, shared.ErrForbidden)
}
