package document

import (
	"context"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// DocumentRepository 介面
// ===========================

// DocumentRepository 文件倉儲介面
//
// 設計原則：
// - 倉儲只做持久化；驗證狀態的變更透過
//   FindByID → Verify / Reject → Update
// - Delete 受領域規則保護：已驗證的文件由調用方
//   先行檢查（見 ErrVerifiedDocumentImmutable）
type DocumentRepository interface {
	// Save 保存新文件
	Save(ctx shared.TransactionContext, doc *Document) error

	// FindByID 根據文件 ID 查找
	// 返回：找到的文件，或 ErrDocumentNotFound
	FindByID(ctx shared.TransactionContext, id DocumentID) (*Document, error)

	// ListByProperty 列出房源的全部文件（附掛順序）
	ListByProperty(ctx shared.TransactionContext, propertyID listing.PropertyID) ([]*Document, error)

	// Update 更新既有文件（驗證狀態 / 備註）
	Update(ctx shared.TransactionContext, doc *Document) error

	// Delete 物理刪除文件記錄
	// 前置條件：調用方已確認文件非 verified
	Delete(ctx shared.TransactionContext, id DocumentID) error

	// AllStorageKeys 返回全部文件的 storage key（去除空值）
	// 使用場景：對象存儲的垃圾回收 / 遷移比對
	AllStorageKeys(ctx shared.TransactionContext) ([]string, error)
}

// ===========================
// DocumentStorage 介面（對象存儲端口）
// ===========================

// DocumentStorage 文件對象存儲介面
//
// 刪除文件記錄後，由 Use Case 盡力移除對應的對象本體。
type DocumentStorage interface {
	// Remove 移除對象
	Remove(ctx context.Context, storageKey string) error
}
