package media

import (
	"context"
	"fmt"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// AttachMedia Use Case
// ===========================

// AttachMediaCommand 附掛媒體的命令
//
// 客戶端直傳完成後以 StorageKey 落檔；
// 外部託管的媒體改以 URL 附掛。至少其一必填。
type AttachMediaCommand struct {
	PropertyID string
	Type       string // image / video / floorplan
	StorageKey string
	URL        string
}

// AttachMediaResult 附掛媒體的結果
type AttachMediaResult struct {
	MediaID           string
	Position          int
	CompletenessScore int
}

// AttachMediaUseCase 附掛媒體 Use Case
//
// 業務流程（同一事務）：
// 1. 載入房源、驗證歸屬
// 2. 新媒體排在列表末尾（position = 現有數量）
// 3. 重算完整度分數後回寫房源
type AttachMediaUseCase struct {
	propertyRepo listing.PropertyRepository
	mediaRepo    media.MediaRepository
	refresher    *applisting.CompletenessRefresher
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	clock        shared.Clock
	cache        applisting.ListingCache
}

// NewAttachMediaUseCase 創建 Use Case 實例
func NewAttachMediaUseCase(
	propertyRepo listing.PropertyRepository,
	mediaRepo media.MediaRepository,
	refresher *applisting.CompletenessRefresher,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	clock shared.Clock,
	cache applisting.ListingCache,
) *AttachMediaUseCase {
	return &AttachMediaUseCase{
		propertyRepo: propertyRepo,
		mediaRepo:    mediaRepo,
		refresher:    refresher,
		txManager:    txManager,
		auth:         auth,
		clock:        clock,
		cache:        cache,
	}
}

// Execute 執行附掛媒體
//
// 錯誤處理：
// - media.ErrInvalidMediaType: 未宣告的媒體類型
// - media.ErrMissingLocator: 缺少取回途徑
func (uc *AttachMediaUseCase) Execute(ctx context.Context, cmd AttachMediaCommand) (*AttachMediaResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	var result *AttachMediaResult
	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		prop, err := uc.propertyRepo.FindByID(txCtx, propertyID)
		if err != nil {
			return err
		}
		if err := applisting.AssertOwnedBy(prop, user); err != nil {
			return err
		}

		count, err := uc.mediaRepo.CountByProperty(txCtx, propertyID)
		if err != nil {
			return fmt.Errorf("failed to count media: %w", err)
		}

		asset, err := media.NewMediaAsset(
			propertyID, media.MediaType(cmd.Type), count,
			cmd.StorageKey, cmd.URL, uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		if err := uc.mediaRepo.Save(txCtx, asset); err != nil {
			return fmt.Errorf("failed to save media: %w", err)
		}

		if _, err := uc.refresher.Refresh(txCtx, prop); err != nil {
			return err
		}
		if err := uc.propertyRepo.Update(txCtx, prop); err != nil {
			return fmt.Errorf("failed to update property: %w", err)
		}

		result = &AttachMediaResult{
			MediaID:           asset.MediaID().String(),
			Position:          asset.Position(),
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
