package listing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// ListProperties Use Case 測試
// ===========================

func TestListPropertiesUseCase_CacheMiss_QueriesRepoAndFillsCache(t *testing.T) {
	// Arrange
	user := verifiedUser()
	repo := NewMockPropertyRepository()
	seedOwnedProperty(t, repo, user)
	cache := &MockListingCache{}
	uc := NewListPropertiesUseCase(repo, &StubAuthGateway{User: user}, cache)

	// Act
	result, err := uc.Execute(context.Background(), ListPropertiesQuery{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Casa lista", result.Items[0].Title)

	assert.Equal(t, 1, repo.ListCallCount)
	assert.Equal(t, 1, cache.GetPageCallCount)
	assert.Equal(t, 1, cache.SetPageCallCount, "未命中後回填")
}

func TestListPropertiesUseCase_CacheHit_SkipsRepo(t *testing.T) {
	// Arrange
	user := verifiedUser()
	repo := NewMockPropertyRepository()
	cached := &ListPropertiesResult{Total: 42, Page: 1, PageSize: 20}
	cache := &MockListingCache{Hit: true, Page: cached}
	uc := NewListPropertiesUseCase(repo, &StubAuthGateway{User: user}, cache)

	// Act
	result, err := uc.Execute(context.Background(), ListPropertiesQuery{})

	// Assert
	require.NoError(t, err)
	assert.Same(t, cached, result)
	assert.Equal(t, 0, repo.ListCallCount)
	assert.Equal(t, 0, cache.SetPageCallCount)
}

func TestListPropertiesUseCase_ScopesToCallerOrg(t *testing.T) {
	// Arrange - OrgID 一律取自認證結果
	user := verifiedUser()
	repo := NewMockPropertyRepository()
	uc := NewListPropertiesUseCase(repo, &StubAuthGateway{User: user}, nil)

	// Act
	_, err := uc.Execute(context.Background(), ListPropertiesQuery{Status: "published"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user.OrgID, repo.LastFilters.OrgID.String())
	assert.Equal(t, "published", repo.LastFilters.Status)
}

func TestListPropertiesUseCase_DefaultSort_Recent(t *testing.T) {
	// Arrange
	user := verifiedUser()
	repo := NewMockPropertyRepository()
	uc := NewListPropertiesUseCase(repo, &StubAuthGateway{User: user}, nil)

	// Act
	_, err := uc.Execute(context.Background(), ListPropertiesQuery{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, listing.SortRecent, repo.LastFilters.Sort)
}

func TestListPropertiesUseCase_InvalidSort_ReturnsError(t *testing.T) {
	// Arrange
	user := verifiedUser()
	repo := NewMockPropertyRepository()
	uc := NewListPropertiesUseCase(repo, &StubAuthGateway{User: user}, nil)

	// Act
	result, err := uc.Execute(context.Background(), ListPropertiesQuery{Sort: "random"})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, listing.ErrInvalidValue)
	assert.Equal(t, 0, repo.ListCallCount)
}

func TestListPropertiesUseCase_MalformedPriceFilter_ReturnsError(t *testing.T) {
	// Arrange
	user := verifiedUser()
	repo := NewMockPropertyRepository()
	uc := NewListPropertiesUseCase(repo, &StubAuthGateway{User: user}, nil)

	// Act
	_, err := uc.Execute(context.Background(), ListPropertiesQuery{PriceMin: "cheap"})

	// Assert
	assert.ErrorIs(t, err, listing.ErrInvalidValue)
}

func TestListPropertiesUseCase_PriceFilters_Parsed(t *testing.T) {
	// Arrange
	user := verifiedUser()
	repo := NewMockPropertyRepository()
	uc := NewListPropertiesUseCase(repo, &StubAuthGateway{User: user}, nil)

	// Act
	_, err := uc.Execute(context.Background(), ListPropertiesQuery{
		PriceMin: "1000000",
		PriceMax: "5000000",
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, repo.LastFilters.PriceMin)
	require.NotNil(t, repo.LastFilters.PriceMax)
	assert.Equal(t, "1000000", repo.LastFilters.PriceMin.String())
	assert.Equal(t, "5000000", repo.LastFilters.PriceMax.String())
}
