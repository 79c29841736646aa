package listing

import (
	"context"
	"fmt"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// PauseProperty Use Case
// ===========================

// PausePropertyCommand 暫停刊登的命令
type PausePropertyCommand struct {
	PropertyID string
}

// PausePropertyResult 暫停刊登的結果
type PausePropertyResult struct {
	PropertyID string
	Status     string
}

// PausePropertyUseCase 暫停刊登 Use Case
//
// published → draft。非 published 狀態下冪等（不報錯不變更），
// publishedAt 保留為歷史時間戳。
type PausePropertyUseCase struct {
	propertyRepo listing.PropertyRepository
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	events       shared.EventPublisher
	cache        ListingCache
}

// NewPausePropertyUseCase 創建 Use Case 實例
func NewPausePropertyUseCase(
	propertyRepo listing.PropertyRepository,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	events shared.EventPublisher,
	cache ListingCache,
) *PausePropertyUseCase {
	return &PausePropertyUseCase{
		propertyRepo: propertyRepo,
		txManager:    txManager,
		auth:         auth,
		events:       events,
		cache:        cache,
	}
}

// Execute 執行暫停刊登
func (uc *PausePropertyUseCase) Execute(ctx context.Context, cmd PausePropertyCommand) (*PausePropertyResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
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
		if err := prop.Pause(); err != nil {
			return err
		}
		return uc.propertyRepo.Update(txCtx, prop)
	})
	if err != nil {
		return nil, err
	}

	publishEvents(uc.events, prop.PullEvents())
	invalidateListings(ctx, uc.cache)

	return &PausePropertyResult{
		PropertyID: prop.PropertyID().String(),
		Status:     string(prop.Status()),
	}, nil
}
