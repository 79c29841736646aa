package document

import (
	"context"
	"fmt"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// VerifyDocument Use Case
// ===========================

// VerifyDocumentCommand 審核文件的命令
type VerifyDocumentCommand struct {
	DocumentID string

	// Approve true = 驗證通過；false = 駁回（Note 必填）
	Approve bool
	Note    string
}

// VerifyDocumentResult 審核文件的結果
type VerifyDocumentResult struct {
	DocumentID string
	Status     string
	RppStatus  string // 房源層級的最新 RPP 摘要
}

// VerifyDocumentUseCase 審核文件 Use Case
//
// 業務流程（同一事務）：
// 1. 載入文件與所屬房源、驗證歸屬
// 2. Verify / Reject
// 3. 重新派生房源的 RPP 摘要並回寫
//
// 文件狀態與房源摘要在同一事務中落地：
// 讀到 rejected 文件的人，也一定讀到 rejected 摘要。
type VerifyDocumentUseCase struct {
	propertyRepo listing.PropertyRepository
	docRepo      document.DocumentRepository
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	clock        shared.Clock
	cache        applisting.ListingCache
}

// NewVerifyDocumentUseCase 創建 Use Case 實例
func NewVerifyDocumentUseCase(
	propertyRepo listing.PropertyRepository,
	docRepo document.DocumentRepository,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	clock shared.Clock,
	cache applisting.ListingCache,
) *VerifyDocumentUseCase {
	return &VerifyDocumentUseCase{
		propertyRepo: propertyRepo,
		docRepo:      docRepo,
		txManager:    txManager,
		auth:         auth,
		clock:        clock,
		cache:        cache,
	}
}

// Execute 執行審核文件
//
// 錯誤處理：
// - document.ErrDocumentNotFound: 文件不存在
// - document.ErrRejectionNoteRequired: 駁回未附原因
func (uc *VerifyDocumentUseCase) Execute(ctx context.Context, cmd VerifyDocumentCommand) (*VerifyDocumentResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	documentID, err := document.DocumentIDFromString(cmd.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document ID: %w", err)
	}

	var result *VerifyDocumentResult
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

		if cmd.Approve {
			doc.Verify(cmd.Note, uc.clock.Now())
		} else {
			if err := doc.Reject(cmd.Note, uc.clock.Now()); err != nil {
				return err
			}
		}
		if err := uc.docRepo.Update(txCtx, doc); err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}

		if err := syncRppSummary(txCtx, uc.docRepo, prop); err != nil {
			return err
		}
		if err := uc.propertyRepo.Update(txCtx, prop); err != nil {
			return fmt.Errorf("failed to update property: %w", err)
		}

		result = &VerifyDocumentResult{
			DocumentID: doc.DocumentID().String(),
			Status:     string(doc.Status()),
			RppStatus:  string(prop.RppStatus()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	return result, nil
}
