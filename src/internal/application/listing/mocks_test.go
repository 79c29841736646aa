package listing

import (
	"context"

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
	SaveCallCount   int
	UpdateCallCount int
	ListCallCount   int
	LastFilters     listing.ListFilters
}

func NewMockPropertyRepository() *MockPropertyRepository {
	return &MockPropertyRepository{props: make(map[string]*listing.Property)}
}

func (m *MockPropertyRepository) Save(ctx shared.TransactionContext, prop *listing.Property) error {
	m.SaveCallCount++
	if _, exists := m.props[prop.PropertyID().String()]; exists {
		return listing.ErrPropertyAlreadyExists
	}
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
	if _, exists := m.props[prop.PropertyID().String()]; !exists {
		return listing.ErrPropertyNotFound
	}
	m.props[prop.PropertyID().String()] = prop
	return nil
}

func (m *MockPropertyRepository) List(ctx shared.TransactionContext, filters listing.ListFilters) (*listing.PropertyPage, error) {
	m.ListCallCount++
	m.LastFilters = filters

	items := make([]*listing.Property, 0, len(m.props))
	for _, prop := range m.props {
		items = append(items, prop)
	}

	page := filters.Page
	if page <= 0 {
		page = 1
	}
	size := filters.PageSize
	if size <= 0 {
		size = 20
	}
	return &listing.PropertyPage{
		Items:    items,
		Total:    int64(len(items)),
		Page:     page,
		PageSize: size,
	}, nil
}

type MockMediaRepository struct {
	assets                   []*media.MediaAsset
	UpdatePositionsCallCount int
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
	for i, d := range m.docs {
		if d.DocumentID().Equals(doc.DocumentID()) {
			m.docs[i] = doc
			return nil
		}
	}
	return document.ErrDocumentNotFound
}

func (m *MockDocumentRepository) Delete(ctx shared.TransactionContext, id document.DocumentID) error {
	for i, d := range m.docs {
		if d.DocumentID().Equals(id) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return document.ErrDocumentNotFound
}

func (m *MockDocumentRepository) AllStorageKeys(ctx shared.TransactionContext) ([]string, error) {
	var keys []string
	for _, d := range m.docs {
		if d.StorageKey() != "" {
			keys = append(keys, d.StorageKey())
		}
	}
	return keys, nil
}

// ===========================
// Mock TransactionManager
// ===========================

type MockTransactionManager struct {
	InTransactionCallCount int
	ShouldFail             bool
	FailError              error
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	if m.ShouldFail {
		return m.FailError
	}

	// 對 mock 來說 nil context 已足夠
	var ctx shared.TransactionContext
	return fn(ctx)
}

// ===========================
// Stub AuthGateway
// ===========================

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
// Mock EventPublisher / ListingCache
// ===========================

type MockEventPublisher struct {
	Published []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	m.Published = append(m.Published, event)
	return nil
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	m.Published = append(m.Published, events...)
	return nil
}

type MockListingCache struct {
	Page *ListPropertiesResult
	Hit  bool

	GetPageCallCount    int
	SetPageCallCount    int
	InvalidateCallCount int
}

func (m *MockListingCache) GetPage(ctx context.Context, filters listing.ListFilters) (*ListPropertiesResult, bool) {
	m.GetPageCallCount++
	if m.Hit {
		return m.Page, true
	}
	return nil, false
}

func (m *MockListingCache) SetPage(ctx context.Context, filters listing.ListFilters, page *ListPropertiesResult) {
	m.SetPageCallCount++
	m.Page = page
}

func (m *MockListingCache) Invalidate(ctx context.Context) {
	m.InvalidateCallCount++
}
