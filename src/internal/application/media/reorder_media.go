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
// ReorderMedia Use Case
// ===========================

// ReorderMediaCommand 重排媒體的命令
//
// OrderedIDs 必須恰好是房源全部媒體的一個排列：
// 缺漏、重複或外來 ID 都整批拒絕。
type ReorderMediaCommand struct {
	PropertyID string
	OrderedIDs []string
}

// ReorderMediaResult 重排媒體的結果
type ReorderMediaResult struct {
	Items []MediaPositionView
}

// MediaPositionView 媒體位置視圖
type MediaPositionView struct {
	MediaID  string `json:"media_id"`
	Position int    `json:"position"`
}

// ReorderMediaUseCase 重排媒體 Use Case
//
// 新順序套用後由 NormalizePositions 保證連續 0 起始，
// 整批位置在同一事務中回寫（不留中間狀態）。
type ReorderMediaUseCase struct {
	propertyRepo listing.PropertyRepository
	mediaRepo    media.MediaRepository
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	cache        applisting.ListingCache
}

// NewReorderMediaUseCase 創建 Use Case 實例
func NewReorderMediaUseCase(
	propertyRepo listing.PropertyRepository,
	mediaRepo media.MediaRepository,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	cache applisting.ListingCache,
) *ReorderMediaUseCase {
	return &ReorderMediaUseCase{
		propertyRepo: propertyRepo,
		mediaRepo:    mediaRepo,
		txManager:    txManager,
		auth:         auth,
		cache:        cache,
	}
}

// Execute 執行重排媒體
//
// 錯誤處理：
// - media.ErrMediaNotFound: OrderedIDs 引用了不存在的媒體
// - media.ErrInvalidPosition: OrderedIDs 不是完整排列
func (uc *ReorderMediaUseCase) Execute(ctx context.Context, cmd ReorderMediaCommand) (*ReorderMediaResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	var result *ReorderMediaResult
	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		prop, err := uc.propertyRepo.FindByID(txCtx, propertyID)
		if err != nil {
			return err
		}
		if err := applisting.AssertOwnedBy(prop, user); err != nil {
			return err
		}

		assets, err := uc.mediaRepo.ListByProperty(txCtx, propertyID)
		if err != nil {
			return fmt.Errorf("failed to list media: %w", err)
		}

		ordered, err := applyOrder(assets, cmd.OrderedIDs)
		if err != nil {
			return err
		}
		media.NormalizePositions(ordered)

		if err := uc.mediaRepo.UpdatePositions(txCtx, ordered); err != nil {
			return fmt.Errorf("failed to update positions: %w", err)
		}

		result = &ReorderMediaResult{Items: positionViews(ordered)}
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

// applyOrder 按指定的 ID 排列重新指派位置
func applyOrder(assets []*media.MediaAsset, orderedIDs []string) ([]*media.MediaAsset, error) {
	if len(orderedIDs) != len(assets) {
		return nil, media.ErrInvalidPosition.WithContext(
			"reason", "ordered IDs must be a permutation of all media",
			"expected", len(assets),
			"got", len(orderedIDs),
		)
	}

	byID := make(map[string]*media.MediaAsset, len(assets))
	for _, asset := range assets {
		byID[asset.MediaID().String()] = asset
	}

	ordered := make([]*media.MediaAsset, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		asset, ok := byID[id]
		if !ok {
			return nil, media.ErrMediaNotFound.WithContext("media_id", id)
		}
		delete(byID, id) // 抓重複 ID
		if err := asset.MoveTo(i); err != nil {
			return nil, err
		}
		ordered = append(ordered, asset)
	}
	return ordered, nil
}

func positionViews(assets []*media.MediaAsset) []MediaPositionView {
	views := make([]MediaPositionView, 0, len(assets))
	for _, asset := range assets {
		views = append(views, MediaPositionView{
			MediaID:  asset.MediaID().String(),
			Position: asset.Position(),
		})
	}
	return views
}
