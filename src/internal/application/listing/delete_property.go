package listing

import (
	"context"
	"fmt"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// SoftDeleteProperty / RestoreProperty Use Case
// ===========================

// SoftDeletePropertyCommand 軟刪除房源的命令
type SoftDeletePropertyCommand struct {
	PropertyID string
}

// SoftDeletePropertyUseCase 軟刪除房源 Use Case
//
// 只設定 deletedAt，不變更生命週期狀態，不做物理刪除。
// 已刪除的房源從預設列表消失（Status=archived 可見），
// 媒體與文件保留，還原後全部回來。
type SoftDeletePropertyUseCase struct {
	propertyRepo listing.PropertyRepository
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	clock        shared.Clock
	events       shared.EventPublisher
	cache        ListingCache
}

// NewSoftDeletePropertyUseCase 創建 Use Case 實例
func NewSoftDeletePropertyUseCase(
	propertyRepo listing.PropertyRepository,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	clock shared.Clock,
	events shared.EventPublisher,
	cache ListingCache,
) *SoftDeletePropertyUseCase {
	return &SoftDeletePropertyUseCase{
		propertyRepo: propertyRepo,
		txManager:    txManager,
		auth:         auth,
		clock:        clock,
		events:       events,
		cache:        cache,
	}
}

// Execute 執行軟刪除
func (uc *SoftDeletePropertyUseCase) Execute(ctx context.Context, cmd SoftDeletePropertyCommand) error {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return fmt.Errorf("failed to parse property ID: %w", err)
	}

	var prop *listing.Property
	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		prop, err = uc.propertyRepo.FindByID(txCtx, propertyID)
		if err != nil {
			return err
		}
		if err := AssertOwnedBy(prop, user); err != nil {
			return err
		}
		prop.SoftDelete(uc.clock.Now())
		return uc.propertyRepo.Update(txCtx, prop)
	})
	if err != nil {
		return err
	}

	publishEvents(uc.events, prop.PullEvents())
	invalidateListings(ctx, uc.cache)
	return nil
}

// RestorePropertyCommand 還原軟刪除的命令
type RestorePropertyCommand struct {
	PropertyID string
}

// RestorePropertyUseCase 還原軟刪除 Use Case
type RestorePropertyUseCase struct {
	propertyRepo listing.PropertyRepository
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	cache        ListingCache
}

// NewRestorePropertyUseCase 創建 Use Case 實例
func NewRestorePropertyUseCase(
	propertyRepo listing.PropertyRepository,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	cache ListingCache,
) *RestorePropertyUseCase {
	return &RestorePropertyUseCase{
		propertyRepo: propertyRepo,
		txManager:    txManager,
		auth:         auth,
		cache:        cache,
	}
}

// Execute 執行還原（未刪除時冪等）
func (uc *RestorePropertyUseCase) Execute(ctx context.Context, cmd RestorePropertyCommand) error {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return fmt.Errorf("failed to parse property ID: %w", err)
	}

	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		prop, err := uc.propertyRepo.FindByID(txCtx, propertyID)
		if err != nil {
			return err
		}
		if err := AssertOwnedBy(prop, user); err != nil {
			return err
		}
		if !prop.IsDeleted() {
			return nil
		}
		prop.Restore()
		return uc.propertyRepo.Update(txCtx, prop)
	})
	if err != nil {
		return err
	}

	invalidateListings(ctx, uc.cache)
	return nil
}
