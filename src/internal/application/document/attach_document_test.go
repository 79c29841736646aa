package document

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// AttachDocument Use Case 測試
// ===========================

var testClock = shared.FixedClock{Time: time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC)}

func verifiedUser() shared.CurrentUser {
	return shared.CurrentUser{
		UserID:    listing.NewListerID().String(),
		OrgID:     listing.NewOrgID().String(),
		KycStatus: shared.KycStatusVerified,
	}
}

// seedProperty 在 mock repo 中放一個屬於 user 組織的草稿
func seedProperty(t *testing.T, repo *MockPropertyRepository, user shared.CurrentUser) *listing.Property {
	t.Helper()

	orgID, err := listing.OrgIDFromString(user.OrgID)
	require.NoError(t, err)
	listerID, err := listing.ListerIDFromString(user.UserID)
	require.NoError(t, err)
	price, err := listing.NewMoney(decimal.NewFromInt(2000000), "MXN")
	require.NoError(t, err)

	prop, err := listing.NewProperty(listing.NewPropertyParams{
		OrgID:         orgID,
		ListerID:      listerID,
		Title:         "Departamento en Roma Norte",
		OperationType: listing.OperationSale,
		PropertyType:  listing.TypeApartment,
		Price:         price,
		Now:           testClock.Time,
	})
	require.NoError(t, err)

	addr, err := listing.NewAddress(listing.AddressParams{
		City: "Ciudad de México", State: "CDMX", Country: "MX",
	})
	require.NoError(t, err)
	prop.SetAddress(addr)
	prop.SetDescription("Tercer piso con balcón")
	prop.SetAmenities([]string{"elevator"}, "")
	prop.PullEvents()

	require.NoError(t, repo.Save(nil, prop))
	return prop
}

type attachFixture struct {
	uc           *AttachDocumentUseCase
	propertyRepo *MockPropertyRepository
	docRepo      *MockDocumentRepository
	cache        *MockListingCache
}

func newAttachFixture(auth *StubAuthGateway) attachFixture {
	propertyRepo := NewMockPropertyRepository()
	docRepo := NewMockDocumentRepository()
	mediaRepo := NewMockMediaRepository()
	refresher := applisting.NewCompletenessRefresher(mediaRepo, docRepo)
	cache := &MockListingCache{}
	uc := NewAttachDocumentUseCase(
		propertyRepo, docRepo, refresher,
		NewMockTransactionManager(), auth, testClock, cache,
	)
	return attachFixture{uc: uc, propertyRepo: propertyRepo, docRepo: docRepo, cache: cache}
}

func TestAttachDocumentUseCase_RppAlias_NormalizedAndSummarySynced(t *testing.T) {
	// Arrange
	user := verifiedUser()
	f := newAttachFixture(&StubAuthGateway{User: user})
	prop := seedProperty(t, f.propertyRepo, user)

	// Act
	result, err := f.uc.Execute(context.Background(), AttachDocumentCommand{
		PropertyID: prop.PropertyID().String(),
		Type:       "certificado_rpp",
		StorageKey: "docs/rpp.pdf",
		FileName:   "rpp.pdf",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "rpp_certificate", result.Type)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, "pending", result.RppStatus)
	// 七個內容信號 + RPP 文件 → 89 分
	assert.Equal(t, 89, result.CompletenessScore)

	assert.Equal(t, 1, f.docRepo.SaveCallCount)
	assert.Equal(t, 1, f.propertyRepo.UpdateCallCount, "摘要與分數同事務回寫")
	assert.Equal(t, 1, f.cache.InvalidateCallCount)
}

func TestAttachDocumentUseCase_NonRppDocument_DoesNotAffectSummary(t *testing.T) {
	// Arrange
	user := verifiedUser()
	f := newAttachFixture(&StubAuthGateway{User: user})
	prop := seedProperty(t, f.propertyRepo, user)

	// Act
	result, err := f.uc.Execute(context.Background(), AttachDocumentCommand{
		PropertyID: prop.PropertyID().String(),
		Type:       "predial",
		URL:        "https://files.example.com/predial.pdf",
	})

	// Assert - 非 RPP 文件不觸發文件信號，摘要回到初始 pending
	require.NoError(t, err)
	assert.Equal(t, "tax_receipt", result.Type)
	assert.Equal(t, "pending", result.RppStatus)
	assert.Equal(t, 78, result.CompletenessScore)
}

func TestAttachDocumentUseCase_UnknownType_ReturnsError(t *testing.T) {
	// Arrange
	user := verifiedUser()
	f := newAttachFixture(&StubAuthGateway{User: user})
	prop := seedProperty(t, f.propertyRepo, user)

	// Act
	result, err := f.uc.Execute(context.Background(), AttachDocumentCommand{
		PropertyID: prop.PropertyID().String(),
		Type:       "selfie",
		StorageKey: "docs/selfie.jpg",
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, document.ErrInvalidDocumentType)
	assert.Equal(t, 0, f.docRepo.SaveCallCount)
	assert.Equal(t, 0, f.cache.InvalidateCallCount)
}

func TestAttachDocumentUseCase_MissingLocator_ReturnsError(t *testing.T) {
	// Arrange
	user := verifiedUser()
	f := newAttachFixture(&StubAuthGateway{User: user})
	prop := seedProperty(t, f.propertyRepo, user)

	// Act
	_, err := f.uc.Execute(context.Background(), AttachDocumentCommand{
		PropertyID: prop.PropertyID().String(),
		Type:       "rpp",
	})

	// Assert
	assert.ErrorIs(t, err, document.ErrMissingLocator)
}

func TestAttachDocumentUseCase_OtherOrg_ReturnsForbidden(t *testing.T) {
	// Arrange
	owner := verifiedUser()
	f := newAttachFixture(&StubAuthGateway{User: verifiedUser()})
	prop := seedProperty(t, f.propertyRepo, owner)

	// Act
	_, err := f.uc.Execute(context.Background(), AttachDocumentCommand{
		PropertyID: prop.PropertyID().String(),
		Type:       "rpp",
		StorageKey: "docs/rpp.pdf",
	})

	// Assert
	assert.ErrorIs(t, err, shared.ErrForbidden)
	assert.Equal(t, 0, f.docRepo.SaveCallCount)
}
