package media

import (
	"context"
	"fmt"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// Mock Repository
// ===========================

type MockPropertyRepository struct {
	props           map[string]*listing.Property
	UpdateCallCount int
}

func NewMockPropertyRepository() *MockPropertyRepository {
	return &MockPropertyRepository{props: make(map[string]*listing.Property)}
}

func (m *MockPropertyRepository) Save(ctx shared.TransactionContext, prop *listing.Property) error {
	m.props[prop.PropertyID().String()] = prop
	return nil
}

func (m *MockPropertyRepository) FindByID(ctx shared.TransactionContext, id listing.PropertyID) (*listing.Property, error) {
	if prop, ok := m.props[id.String()]; ok {
		return prop, nil
	}
	return nil, listing.ErrPropertyNotFound
}

func (m *MockPropertyRepository) Update(ctx shared.TransactionContext, prop *listing.Property) error {
	m.UpdateCallCount++
	m.props[prop.PropertyID().String()] = prop
	return nil
}

func (m *MockPropertyRepository) List(ctx shared.TransactionContext, filters listing.ListFilters) (*listing.PropertyPage, error) {
	return &listing.PropertyPage{Page: 1, PageSize: 20}, nil
}

type MockMediaRepository struct {
	assets                   []*media.MediaAsset
	UpdatePositionsCallCount int
	DeleteCallCount          int
}

func NewMockMediaRepository() *MockMediaRepository {
	return &MockMediaRepository{}
}

func (m *MockMediaRepository) Save(ctx shared.TransactionContext, asset *media.MediaAsset) error {
	m.assets = append(m.assets, asset)
	return nil
}

func (m *MockMediaRepository) FindByID(ctx shared.TransactionContext, id media.MediaID) (*media.MediaAsset, error) {
	for _, a := range m.assets {
		if a.MediaID().Equals(id) {
			return a, nil
		}
	}
	return nil, media.ErrMediaNotFound
}

func (m *MockMediaRepository) ListByProperty(ctx shared.TransactionContext, propertyID listing.PropertyID) ([]*media.MediaAsset, error) {
	var out []*media.MediaAsset
	for _, a := range m.assets {
		if a.PropertyID().Equals(propertyID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockMediaRepository) CountByProperty(ctx shared.TransactionContext, propertyID listing.PropertyID) (int, error) {
	assets, _ := m.ListByProperty(ctx, propertyID)
	return len(assets), nil
}

func (m *MockMediaRepository) UpdatePositions(ctx shared.TransactionContext, assets []*media.MediaAsset) error {
	m.UpdatePositionsCallCount++
	return nil
}

func (m *MockMediaRepository) Delete(ctx shared.TransactionContext, id media.MediaID) error {
	m.DeleteCallCount++
	for i, a := range m.assets {
		if a.MediaID().Equals(id) {
			m.assets = append(m.assets[:i], m.assets[i+1:]...)
			return nil
		}
	}
	return media.ErrMediaNotFound
}

type MockDocumentRepository struct {
	docs []*document.Document
}

func NewMockDocumentRepository() *MockDocumentRepository {
	return &MockDocumentRepository{}
}

func (m *MockDocumentRepository) Save(ctx shared.TransactionContext, doc *document.Document) error {
	m.docs = append(m.docs, doc)
	return nil
}

func (m *MockDocumentRepository) FindByID(ctx shared.TransactionContext, id document.DocumentID) (*document.Document, error) {
	for _, d := range m.docs {
		if d.DocumentID().Equals(id) {
			return d, nil
		}
	}
	return nil, document.ErrDocumentNotFound
}

func (m *MockDocumentRepository) ListByProperty(ctx shared.TransactionContext, propertyID listing.PropertyID) ([]*document.Document, error) {
	var out []*document.Document
	for _, d := range m.docs {
		if d.PropertyID().Equals(propertyID) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *MockDocumentRepository) Update(ctx shared.TransactionContext, doc *document.Document) error {
	return nil
}

func (m *MockDocumentRepository) Delete(ctx shared.TransactionContext, id document.DocumentID) error {
	return nil
}

func (m *MockDocumentRepository) AllStorageKeys(ctx shared.TransactionContext) ([]string, error) {
	return nil, nil
}

// ===========================
// Mock TransactionManager / Stub AuthGateway
// ===========================

type MockTransactionManager struct {
	InTransactionCallCount int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++

	// 對 mock 來說 nil context 已足夠
	var ctx shared.TransactionContext
	return fn(ctx)
}

type StubAuthGateway struct {
	User shared.CurrentUser
	Err  error
}

func (s *StubAuthGateway) Current(ctx context.Context) (shared.CurrentUser, error) {
	if s.Err != nil {
		return shared.CurrentUser{}, s.Err
	}
	return s.User, nil
}

// ===========================
// Mock ListingCache / Stub MediaStorage
// ===========================

type MockListingCache struct {
	InvalidateCallCount int
}

func (m *MockListingCache) GetPage(ctx context.Context, filters listing.ListFilters) (*applisting.ListPropertiesResult, bool) {
	return nil, false
}

func (m *MockListingCache) SetPage(ctx context.Context, filters listing.ListFilters, page *applisting.ListPropertiesResult) {
}

func (m *MockListingCache) Invalidate(ctx context.Context) {
	m.InvalidateCallCount++
}

type StubMediaStorage struct {
	Removed    []string
	RemoveErr  error
	PresignErr error
}

func (s *StubMediaStorage) PresignUpload(ctx context.Context, propertyID listing.PropertyID, fileName, contentType string) (*media.PresignedUpload, error) {
	if s.PresignErr != nil {
		return nil, s.PresignErr
	}
	key := fmt.Sprintf("media/%s/%s", propertyID.String(), fileName)
	return &media.PresignedUpload{
		URL:        "https://bucket.s3.amazonaws.com/" + key + "?signature=stub",
		StorageKey: key,
	}, nil
}

func (s *StubMediaStorage) Remove(ctx context.Context, storageKey string) error {
	s.Removed = append(s.Removed, storageKey)
	return s.RemoveErr
}
