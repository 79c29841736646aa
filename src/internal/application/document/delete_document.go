package document

import (
	"context"
	"fmt"
	"log"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// DeleteDocument Use Case
// ===========================

// DeleteDocumentCommand 刪除文件的命令
type DeleteDocumentCommand struct {
	DocumentID string
}

// DeleteDocumentUseCase 刪除文件 Use Case
//
// 業務規則：
// - 已驗證（verified）的文件不得刪除
//   （ErrVerifiedDocumentImmutable）
// - 刪除後重新派生 RPP 摘要並重算完整度
// - 對象本體的移除在事務提交後盡力執行，
//   失敗只記錄日誌（孤兒對象由離線 GC 比對
//   AllStorageKeys 清理）
type DeleteDocumentUseCase struct {
	propertyRepo listing.PropertyRepository
	docRepo      document.DocumentRepository
	refresher    *applisting.CompletenessRefresher
	storage      document.DocumentStorage
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	cache        applisting.ListingCache
}

// NewDeleteDocumentUseCase 創建 Use Case 實例
func NewDeleteDocumentUseCase(
	propertyRepo listing.PropertyRepository,
	docRepo document.DocumentRepository,
	refresher *applisting.CompletenessRefresher,
	storage document.DocumentStorage,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	cache applisting.ListingCache,
) *DeleteDocumentUseCase {
	return &DeleteDocumentUseCase{
		propertyRepo: propertyRepo,
		docRepo:      docRepo,
		refresher:    refresher,
		storage:      storage,
		txManager:    txManager,
		auth:         auth,
		cache:        cache,
	}
}

// Execute 執行刪除文件
func (uc *DeleteDocumentUseCase) Execute(ctx context.Context, cmd DeleteDocumentCommand) error {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return err
	}

	documentID, err := document.DocumentIDFromString(cmd.DocumentID)
	if err != nil {
		return fmt.Errorf("failed to parse document ID: %w", err)
	}

	var storageKey string
	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		doc, err := uc.docRepo.FindByID(txCtx, documentID)
		if err != nil {
			return err
		}
		prop, err := uc.propertyRepo.FindByID(txCtx, doc.PropertyID())
		if err != nil {
			return err
		}
		if err := applisting.AssertOwnedBy(prop, user); err != nil {
			return err
		}
		if doc.Status() == document.VerificationVerified {
			return document.ErrVerifiedDocumentImmutable.WithContext(
				"document_id", doc.DocumentID().String(),
			)
		}

		storageKey = doc.StorageKey()
		if err := uc.docRepo.Delete(txCtx, documentID); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}

		if err := syncRppSummary(txCtx, uc.docRepo, prop); err != nil {
			return err
		}
		if _, err := uc.refresher.Refresh(txCtx, prop); err != nil {
			return err
		}
		return uc.propertyRepo.Update(txCtx, prop)
	})
	if err != nil {
		return err
	}

	if uc.storage != nil && storageKey != "" {
		if err := uc.storage.Remove(ctx, storageKey); err != nil {
			log.Printf("[WARN] failed to remove document object %s: %v", storageKey, err)
		}
	}
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	return nil
}
