package media

import (
	"context"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// MediaRepository 介面
// ===========================

// MediaRepository 媒體倉儲介面
//
// UpdatePositions 是批次操作：重排 / 封面調整後，
// 整個列表的 position 一次回寫（在同一事務中），
// 避免中間狀態違反連續 0 起始的排序不變條件。
type MediaRepository interface {
	// Save 保存新媒體
	Save(ctx shared.TransactionContext, asset *MediaAsset) error

	// FindByID 根據媒體 ID 查找
	// 返回：找到的媒體，或 ErrMediaNotFound
	FindByID(ctx shared.TransactionContext, id MediaID) (*MediaAsset, error)

	// ListByProperty 列出房源的全部媒體（position 升序）
	ListByProperty(ctx shared.TransactionContext, propertyID listing.PropertyID) ([]*MediaAsset, error)

	// CountByProperty 房源的媒體數量（完整度信號）
	CountByProperty(ctx shared.TransactionContext, propertyID listing.PropertyID) (int, error)

	// UpdatePositions 批次回寫位置
	UpdatePositions(ctx shared.TransactionContext, assets []*MediaAsset) error

	// Delete 刪除媒體記錄
	Delete(ctx shared.TransactionContext, id MediaID) error
}

// ===========================
// MediaStorage 介面（對象存儲端口）
// ===========================

// PresignedUpload 預簽上傳結果
type PresignedUpload struct {
	URL        string // 客戶端直傳用的預簽 PUT URL
	StorageKey string // 上傳完成後資產的對象鍵
}

// MediaStorage 對象存儲介面
//
// 由 Infrastructure 層以 S3 預簽 URL 實作。
// 上傳本體由客戶端直傳，核心只負責簽發與移除。
type MediaStorage interface {
	// PresignUpload 簽發一次性的上傳 URL
	PresignUpload(ctx context.Context, propertyID listing.PropertyID, fileName, contentType string) (*PresignedUpload, error)

	// Remove 移除對象
	Remove(ctx context.Context, storageKey string) error
}
