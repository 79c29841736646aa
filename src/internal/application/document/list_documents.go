package document

import (
	"context"
	"fmt"
	"time"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// ListDocuments Use Case
// ===========================

// ListDocumentsQuery 文件列表查詢
type ListDocumentsQuery struct {
	PropertyID string
}

// DocumentView 文件視圖（Output DTO）
type DocumentView struct {
	DocumentID string    `json:"document_id"`
	PropertyID string    `json:"property_id"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	StorageKey string    `json:"storage_key,omitempty"`
	URL        string    `json:"url,omitempty"`
	FileName   string    `json:"file_name,omitempty"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListDocumentsResult 文件列表結果
type ListDocumentsResult struct {
	Items []DocumentView `json:"items"`

	// RppStatus 由列表即時派生的房源層級摘要；
	// 空字串表示沒有任何 RPP 文件
	RppStatus string `json:"rpp_status,omitempty"`
}

// ListDocumentsUseCase 文件列表 Use Case（唯讀）
type ListDocumentsUseCase struct {
	propertyRepo listing.PropertyRepository
	docRepo      document.DocumentRepository
	auth         shared.AuthGateway
}

// NewListDocumentsUseCase 創建 Use Case 實例
func NewListDocumentsUseCase(
	propertyRepo listing.PropertyRepository,
	docRepo document.DocumentRepository,
	auth shared.AuthGateway,
) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{
		propertyRepo: propertyRepo,
		docRepo:      docRepo,
		auth:         auth,
	}
}

// Execute 執行文件列表查詢
func (uc *ListDocumentsUseCase) Execute(ctx context.Context, query ListDocumentsQuery) (*ListDocumentsResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(query.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	prop, err := uc.propertyRepo.FindByID(nil, propertyID)
	if err != nil {
		return nil, err
	}
	if err := applisting.AssertOwnedBy(prop, user); err != nil {
		return nil, err
	}

	docs, err := uc.docRepo.ListByProperty(nil, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	result := &ListDocumentsResult{
		Items: make([]DocumentView, 0, len(docs)),
	}
	for _, doc := range docs {
		result.Items = append(result.Items, DocumentView{
			DocumentID: doc.DocumentID().String(),
			PropertyID: doc.PropertyID().String(),
			Type:       string(doc.Type()),
			Status:     string(doc.Status()),
			StorageKey: doc.StorageKey(),
			URL:        doc.URL(),
			FileName:   doc.FileName(),
			Note:       doc.Note(),
			CreatedAt:  doc.CreatedAt(),
			UpdatedAt:  doc.UpdatedAt(),
		})
	}
	if summary, ok := document.RppStatusFromDocs(docs); ok {
		result.RppStatus = string(summary)
	}
	return result, nil
}
