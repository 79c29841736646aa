package listing

import (
	"context"
	"fmt"

	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// DuplicateProperty Use Case
// ===========================

// DuplicatePropertyCommand 複製房源的命令
type DuplicatePropertyCommand struct {
	PropertyID string

	// CopyMedia 是否連同媒體引用一起複製（共用同一 storage key）
	CopyMedia bool

	// CopyDocuments 是否複製文件引用
	// 複製的文件驗證狀態一律重置為 pending：驗證結果
	// 綁定原房源，不隨複製轉移
	CopyDocuments bool
}

// DuplicatePropertyResult 複製房源的結果
type DuplicatePropertyResult struct {
	PropertyID        string
	Title             string
	Status            string
	CompletenessScore int
	MediaCopied       int
	DocumentsCopied   int
}

// DuplicatePropertyUseCase 複製房源 Use Case
//
// 業務流程：
// 1. 載入來源聚合
// 2. Duplicate 出全新草稿（剝除時間戳 / 內部編號 / 正規化地址）
// 3. 按命令選項複製媒體與文件引用（全新 ID，同 storage key）
// 4. 以複本自己的附件重算完整度後保存
//
// 整個流程在同一事務中：複本要麼帶齊選定的附件出現，
// 要麼完全不出現。
type DuplicatePropertyUseCase struct {
	propertyRepo listing.PropertyRepository
	mediaRepo    media.MediaRepository
	docRepo      document.DocumentRepository
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	clock        shared.Clock
	events       shared.EventPublisher
	cache        ListingCache
}

// NewDuplicatePropertyUseCase 創建 Use Case 實例
func NewDuplicatePropertyUseCase(
	propertyRepo listing.PropertyRepository,
	mediaRepo media.MediaRepository,
	docRepo document.DocumentRepository,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	clock shared.Clock,
	events shared.EventPublisher,
	cache ListingCache,
) *DuplicatePropertyUseCase {
	return &DuplicatePropertyUseCase{
		propertyRepo: propertyRepo,
		mediaRepo:    mediaRepo,
		docRepo:      docRepo,
		txManager:    txManager,
		auth:         auth,
		clock:        clock,
		events:       events,
		cache:        cache,
	}
}

// Execute 執行複製房源
func (uc *DuplicatePropertyUseCase) Execute(ctx context.Context, cmd DuplicatePropertyCommand) (*DuplicatePropertyResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}
	listerID, err := listing.ListerIDFromString(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lister ID: %w", err)
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	var (
		clone      *listing.Property
		mediaCount int
		docsCount  int
	)
	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		src, err := uc.propertyRepo.FindByID(txCtx, propertyID)
		if err != nil {
			return err
		}
		if err := AssertOwnedBy(src, user); err != nil {
			return err
		}

		// 複製者成為複本的刊登者
		clone, err = src.Duplicate(listing.NewPropertyID(), listerID, src.OrgID())
		if err != nil {
			return err
		}
		if err := uc.propertyRepo.Save(txCtx, clone); err != nil {
			return fmt.Errorf("failed to save duplicated property: %w", err)
		}

		if cmd.CopyMedia {
			mediaCount, err = uc.copyMedia(txCtx, src.PropertyID(), clone.PropertyID())
			if err != nil {
				return err
			}
		}

		hasRppDoc := false
		if cmd.CopyDocuments {
			docsCount, hasRppDoc, err = uc.copyDocuments(txCtx, src.PropertyID(), clone.PropertyID())
			if err != nil {
				return err
			}
		}

		// 複本的 RPP 摘要由它自己的（pending）文件派生；
		// 沒有複製文件時維持初始 pending
		clone.RecomputeCompleteness(mediaCount, hasRppDoc)
		return uc.propertyRepo.Update(txCtx, clone)
	})
	if err != nil {
		return nil, err
	}

	publishEvents(uc.events, clone.PullEvents())
	invalidateListings(ctx, uc.cache)

	return &DuplicatePropertyResult{
		PropertyID:        clone.PropertyID().String(),
		Title:             clone.Title(),
		Status:            string(clone.Status()),
		CompletenessScore: clone.CompletenessScore(),
		MediaCopied:       mediaCount,
		DocumentsCopied:   docsCount,
	}, nil
}

// copyMedia 複製媒體引用（同 storage key、同位置、全新 ID）
func (uc *DuplicatePropertyUseCase) copyMedia(
	txCtx shared.TransactionContext,
	srcID, dstID listing.PropertyID,
) (int, error) {
	assets, err := uc.mediaRepo.ListByProperty(txCtx, srcID)
	if err != nil {
		return 0, fmt.Errorf("failed to list media: %w", err)
	}
	for _, asset := range assets {
		copied, err := media.NewMediaAsset(
			dstID, asset.Type(), asset.Position(),
			asset.StorageKey(), asset.URL(), uc.clock.Now(),
		)
		if err != nil {
			return 0, err
		}
		if err := uc.mediaRepo.Save(txCtx, copied); err != nil {
			return 0, fmt.Errorf("failed to save copied media: %w", err)
		}
	}
	return len(assets), nil
}

// copyDocuments 複製文件引用（驗證狀態重置為 pending）
func (uc *DuplicatePropertyUseCase) copyDocuments(
	txCtx shared.TransactionContext,
	srcID, dstID listing.PropertyID,
) (count int, hasRppDoc bool, err error) {
	docs, err := uc.docRepo.ListByProperty(txCtx, srcID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to list documents: %w", err)
	}
	for _, doc := range docs {
		copied, err := document.NewDocument(
			dstID, string(doc.Type()),
			doc.StorageKey(), doc.URL(), doc.FileName(), uc.clock.Now(),
		)
		if err != nil {
			return 0, false, err
		}
		if err := uc.docRepo.Save(txCtx, copied); err != nil {
			return 0, false, fmt.Errorf("failed to save copied document: %w", err)
		}
		if copied.IsRpp() {
			hasRppDoc = true
		}
	}
	return len(docs), hasRppDoc, nil
}
