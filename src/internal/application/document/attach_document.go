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
// AttachDocument Use Case
// ===========================

// AttachDocumentCommand 附掛文件的命令
//
// Type 接受別名（rpp / escritura / ine …），由領域策略
// 正規化為標準類型。StorageKey / URL 至少其一必填。
type AttachDocumentCommand struct {
	PropertyID string
	Type       string
	StorageKey string
	URL        string
	FileName   string
}

// AttachDocumentResult 附掛文件的結果
type AttachDocumentResult struct {
	DocumentID        string
	Type              string
	Status            string
	RppStatus         string // 房源層級的最新 RPP 摘要
	CompletenessScore int
}

// AttachDocumentUseCase 附掛文件 Use Case
//
// 業務流程（同一事務）：
// 1. 載入房源、驗證歸屬
// 2. 創建文件（初始 pending）並保存
// 3. 重新派生房源的 RPP 摘要
// 4. 重算完整度分數後回寫房源
type AttachDocumentUseCase struct {
	propertyRepo listing.PropertyRepository
	docRepo      document.DocumentRepository
	refresher    *applisting.CompletenessRefresher
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	clock        shared.Clock
	cache        applisting.ListingCache
}

// NewAttachDocumentUseCase 創建 Use Case 實例
func NewAttachDocumentUseCase(
	propertyRepo listing.PropertyRepository,
	docRepo document.DocumentRepository,
	refresher *applisting.CompletenessRefresher,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	clock shared.Clock,
	cache applisting.ListingCache,
) *AttachDocumentUseCase {
	return &AttachDocumentUseCase{
		propertyRepo: propertyRepo,
		docRepo:      docRepo,
		refresher:    refresher,
		txManager:    txManager,
		auth:         auth,
		clock:        clock,
		cache:        cache,
	}
}

// Execute 執行附掛文件
//
// 錯誤處理：
// - document.ErrInvalidDocumentType: 類型無法正規化
// - document.ErrMissingLocator: 缺少取回途徑
func (uc *AttachDocumentUseCase) Execute(ctx context.Context, cmd AttachDocumentCommand) (*AttachDocumentResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	var result *AttachDocumentResult
	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		prop, err := uc.propertyRepo.FindByID(txCtx, propertyID)
		if err != nil {
			return err
		}
		if err := applisting.AssertOwnedBy(prop, user); err != nil {
			return err
		}

		doc, err := document.NewDocument(
			propertyID, cmd.Type, cmd.StorageKey, cmd.URL, cmd.FileName, uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		if err := uc.docRepo.Save(txCtx, doc); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		if err := syncRppSummary(txCtx, uc.docRepo, prop); err != nil {
			return err
		}
		if _, err := uc.refresher.Refresh(txCtx, prop); err != nil {
			return err
		}
		if err := uc.propertyRepo.Update(txCtx, prop); err != nil {
			return fmt.Errorf("failed to update property: %w", err)
		}

		result = &AttachDocumentResult{
			DocumentID:        doc.DocumentID().String(),
			Type:              string(doc.Type()),
			Status:            string(doc.Status()),
			RppStatus:         string(prop.RppStatus()),
			CompletenessScore: prop.CompletenessScore(),
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

// syncRppSummary 重新派生並寫回房源的 RPP 摘要
//
// 沒有任何 RPP 文件時摘要回到初始 pending：
// 缺席不是獨立狀態，但也不能殘留過期的 verified / rejected。
func syncRppSummary(
	txCtx shared.TransactionContext,
	docRepo document.DocumentRepository,
	prop *listing.Property,
) error {
	docs, err := docRepo.ListByProperty(txCtx, prop.PropertyID())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	summary, ok := document.RppStatusFromDocs(docs)
	if !ok {
		summary = listing.RppPending
	}
	return prop.SetRppStatus(summary)
}
