package listing

import (
	"fmt"

	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// CompletenessRefresher 應用服務
// ===========================

// CompletenessRefresher 完整度重算服務
//
// 完整度的兩個外部信號（媒體數量、RPP 文件存在與否）
// 分散在媒體與文件倉儲，這個服務把「取信號 → 重算 → 快取」
// 的流程集中一處，供各 Use Case 在同一事務中調用。
type CompletenessRefresher struct {
	mediaRepo media.MediaRepository
	docRepo   document.DocumentRepository
}

// NewCompletenessRefresher 建構函數
func NewCompletenessRefresher(
	mediaRepo media.MediaRepository,
	docRepo document.DocumentRepository,
) *CompletenessRefresher {
	return &CompletenessRefresher{
		mediaRepo: mediaRepo,
		docRepo:   docRepo,
	}
}

// Refresh 重算並快取房源完整度分數
//
// 必須在寫事務中調用：信號讀取與分數回寫要在同一份
// 一致性快照上，否則併發的媒體 / 文件變更會讓快取分數漂移。
func (r *CompletenessRefresher) Refresh(ctx shared.TransactionContext, prop *listing.Property) (int, error) {
	mediaCount, err := r.mediaRepo.CountByProperty(ctx, prop.PropertyID())
	if err != nil {
		return 0, fmt.Errorf("failed to count media: %w", err)
	}

	docs, err := r.docRepo.ListByProperty(ctx, prop.PropertyID())
	if err != nil {
		return 0, fmt.Errorf("failed to list documents: %w", err)
	}

	hasRppDoc := false
	for _, doc := range docs {
		if doc.IsRpp() {
			hasRppDoc = true
			break
		}
	}

	return prop.RecomputeCompleteness(mediaCount, hasRppDoc), nil
}

// Signals 讀取完整度外部信號（不回寫分數）
//
// 就緒評估等唯讀場景使用。
func (r *CompletenessRefresher) Signals(ctx shared.TransactionContext, propertyID listing.PropertyID) (mediaCount int, hasRppDoc bool, err error) {
	mediaCount, err = r.mediaRepo.CountByProperty(ctx, propertyID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to count media: %w", err)
	}

	docs, err := r.docRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to list documents: %w", err)
	}
	for _, doc := range docs {
		if doc.IsRpp() {
			hasRppDoc = true
			break
		}
	}
	return mediaCount, hasRppDoc, nil
}
