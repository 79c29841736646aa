package media

import (
	"context"
	"fmt"
	"sort"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// SetCover Use Case
// ===========================

// SetCoverCommand 指定封面的命令
type SetCoverCommand struct {
	PropertyID string
	MediaID    string
}

// SetCoverResult 指定封面的結果
type SetCoverResult struct {
	Items []MediaPositionView
}

// SetCoverUseCase 指定封面 Use Case
//
// 按慣例封面就是 position 0：指定的媒體移到最前，
// 其餘依原相對順序遞補，位置維持連續 0 起始。
type SetCoverUseCase struct {
	propertyRepo listing.PropertyRepository
	mediaRepo    media.MediaRepository
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	cache        applisting.ListingCache
}

// NewSetCoverUseCase 創建 Use Case 實例
func NewSetCoverUseCase(
	propertyRepo listing.PropertyRepository,
	mediaRepo media.MediaRepository,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	cache applisting.ListingCache,
) *SetCoverUseCase {
	return &SetCoverUseCase{
		propertyRepo: propertyRepo,
		mediaRepo:    mediaRepo,
		txManager:    txManager,
		auth:         auth,
		cache:        cache,
	}
}

// Execute 執行指定封面
func (uc *SetCoverUseCase) Execute(ctx context.Context, cmd SetCoverCommand) (*SetCoverResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	var result *SetCoverResult
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

		ordered, err := promoteToCover(assets, cmd.MediaID)
		if err != nil {
			return err
		}
		if err := uc.mediaRepo.UpdatePositions(txCtx, ordered); err != nil {
			return fmt.Errorf("failed to update positions: %w", err)
		}

		result = &SetCoverResult{Items: positionViews(ordered)}
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

// promoteToCover 把指定媒體移到 position 0，其餘遞補
func promoteToCover(assets []*media.MediaAsset, mediaID string) ([]*media.MediaAsset, error) {
	coverIdx := -1
	for i, asset := range assets {
		if asset.MediaID().String() == mediaID {
			coverIdx = i
			break
		}
	}
	if coverIdx == -1 {
		return nil, media.ErrMediaNotFound.WithContext("media_id", mediaID)
	}

	rest := make([]*media.MediaAsset, 0, len(assets)-1)
	rest = append(rest, assets[:coverIdx]...)
	rest = append(rest, assets[coverIdx+1:]...)
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Position() < rest[j].Position()
	})

	ordered := append([]*media.MediaAsset{assets[coverIdx]}, rest...)
	for i, asset := range ordered {
		if err := asset.MoveTo(i); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}
