package shared_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// 測試用標記類型（模擬 PropertyID / DocumentID 的區分）
type testAMarker struct{}
type testBMarker struct{}

type testAID = shared.EntityID[testAMarker]

var errInvalidTestID = &shared.DomainError{
	Code:    "TEST_ID_INVALID",
	Message: "test ID 格式無效",
}

// ===========================
// EntityID[T] 基礎測試
// ===========================

func TestNewEntityID_GeneratesUniqueUUIDs(t *testing.T) {
	// Act
	id1 := shared.NewEntityID[testAMarker]()
	id2 := shared.NewEntityID[testAMarker]()

	// Assert
	assert.False(t, id1.IsEmpty())
	assert.False(t, id2.IsEmpty())
	assert.NotEqual(t, id1.String(), id2.String())
}

func TestEntityIDFromString_ValidUUID_Success(t *testing.T) {
	// Arrange
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	// Act
	id, err := shared.EntityIDFromString[testAMarker](validUUID, errInvalidTestID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, validUUID, id.String())
}

func TestEntityIDFromString_InvalidInput_ReturnsTemplateError(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"空字串", ""},
		{"不是 UUID", "not-a-uuid"},
		{"部分 UUID", "550e8400-e29b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			id, err := shared.EntityIDFromString[testAMarker](tt.value, errInvalidTestID)

			// Assert
			assert.True(t, id.IsEmpty())
			assert.ErrorIs(t, err, errInvalidTestID)

			// DomainError 模板附帶輸入值作為上下文
			var domainErr *shared.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tt.value, domainErr.Context["input"])
		})
	}
}

func TestEntityIDFromString_NonDomainErrorTemplate_ReturnedAsIs(t *testing.T) {
	// Arrange
	plain := errors.New("plain error")

	// Act
	id, err := shared.EntityIDFromString[testAMarker]("bad", plain)

	// Assert
	assert.True(t, id.IsEmpty())
	assert.Equal(t, plain, err)
}

func TestEntityID_Equals(t *testing.T) {
	// Arrange
	uuid := "550e8400-e29b-41d4-a716-446655440000"
	id1, _ := shared.EntityIDFromString[testAMarker](uuid, errInvalidTestID)
	id2, _ := shared.EntityIDFromString[testAMarker](uuid, errInvalidTestID)
	id3 := shared.NewEntityID[testAMarker]()

	// Act & Assert
	assert.True(t, id1.Equals(id2))
	assert.False(t, id1.Equals(id3))
}

func TestEntityID_IsEmpty_ZeroValue(t *testing.T) {
	var empty testAID
	assert.True(t, empty.IsEmpty())
	assert.False(t, shared.NewEntityID[testAMarker]().IsEmpty())
}

func TestEntityID_String_NormalizesToLowercase(t *testing.T) {
	// Arrange
	upper := "550E8400-E29B-41D4-A716-446655440000"

	// Act
	id, err := shared.EntityIDFromString[testAMarker](upper, errInvalidTestID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
}

func TestEntityID_TypeSafety_DifferentMarkersAreDifferentTypes(t *testing.T) {
	// Arrange
	idA := shared.NewEntityID[testAMarker]()
	idB := shared.NewEntityID[testBMarker]()

	// Assert - 編譯時即區分；idA.Equals(idB) 無法編譯
	assert.IsType(t, shared.EntityID[testAMarker]{}, idA)
	assert.IsType(t, shared.EntityID[testBMarker]{}, idB)
}
