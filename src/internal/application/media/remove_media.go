package media

import (
	"context"
	"fmt"
	"log"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// RemoveMedia Use Case
// ===========================

// RemoveMediaCommand 移除媒體的命令
type RemoveMediaCommand struct {
	MediaID string
}

// RemoveMediaUseCase 移除媒體 Use Case
//
// 業務流程（同一事務）：
// 1. 載入媒體與所屬房源、驗證歸屬
// 2. 刪除記錄，剩餘媒體正規化位置後整批回寫
// 3. 重算完整度分數後回寫房源
// 4. 事務提交後盡力移除對象本體（失敗只記錄日誌）
type RemoveMediaUseCase struct {
	propertyRepo listing.PropertyRepository
	mediaRepo    media.MediaRepository
	refresher    *applisting.CompletenessRefresher
	storage      media.MediaStorage
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	cache        applisting.ListingCache
}

// NewRemoveMediaUseCase 創建 Use Case 實例
func NewRemoveMediaUseCase(
	propertyRepo listing.PropertyRepository,
	mediaRepo media.MediaRepository,
	refresher *applisting.CompletenessRefresher,
	storage media.MediaStorage,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	cache applisting.ListingCache,
) *RemoveMediaUseCase {
	return &RemoveMediaUseCase{
		propertyRepo: propertyRepo,
		mediaRepo:    mediaRepo,
		refresher:    refresher,
		storage:      storage,
		txManager:    txManager,
		auth:         auth,
		cache:        cache,
	}
}

// Execute 執行移除媒體
func (uc *RemoveMediaUseCase) Execute(ctx context.Context, cmd RemoveMediaCommand) error {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return err
	}

	mediaID, err := media.MediaIDFromString(cmd.MediaID)
	if err != nil {
		return fmt.Errorf("failed to parse media ID: %w", err)
	}

	var storageKey string
	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		asset, err := uc.mediaRepo.FindByID(txCtx, mediaID)
		if err != nil {
			return err
		}
		prop, err := uc.propertyRepo.FindByID(txCtx, asset.PropertyID())
		if err != nil {
			return err
		}
		if err := applisting.AssertOwnedBy(prop, user); err != nil {
			return err
		}

		storageKey = asset.StorageKey()
		if err := uc.mediaRepo.Delete(txCtx, mediaID); err != nil {
			return fmt.Errorf("failed to delete media: %w", err)
		}

		remaining, err := uc.mediaRepo.ListByProperty(txCtx, asset.PropertyID())
		if err != nil {
			return fmt.Errorf("failed to list media: %w", err)
		}
		media.NormalizePositions(remaining)
		if err := uc.mediaRepo.UpdatePositions(txCtx, remaining); err != nil {
			return fmt.Errorf("failed to update positions: %w", err)
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
			log.Printf("[WARN] failed to remove media object %s: %v", storageKey, err)
		}
	}
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	return nil
}
