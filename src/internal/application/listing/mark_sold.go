package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// MarkPropertySold Use Case
// ===========================

// MarkPropertySoldCommand 標記成交的命令
type MarkPropertySoldCommand struct {
	PropertyID string

	// SoldAt 成交時間；零值採用系統時鐘
	SoldAt time.Time
}

// MarkPropertySoldResult 標記成交的結果
type MarkPropertySoldResult struct {
	PropertyID string
	Status     string
	SoldAt     *time.Time
}

// MarkPropertySoldUseCase 標記成交 Use Case
//
// published → sold（終態）。草稿不能直接標記成交，
// 轉換表會擋下 draft → sold。
type MarkPropertySoldUseCase struct {
	propertyRepo listing.PropertyRepository
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	clock        shared.Clock
	events       shared.EventPublisher
	cache        ListingCache
}

// NewMarkPropertySoldUseCase 創建 Use Case 實例
func NewMarkPropertySoldUseCase(
	propertyRepo listing.PropertyRepository,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	clock shared.Clock,
	events shared.EventPublisher,
	cache ListingCache,
) *MarkPropertySoldUseCase {
	return &MarkPropertySoldUseCase{
		propertyRepo: propertyRepo,
		txManager:    txManager,
		auth:         auth,
		clock:        clock,
		events:       events,
		cache:        cache,
	}
}

// Execute 執行標記成交
//
// 錯誤處理：
// - listing.ErrStatusTransition: 當前狀態不允許轉換到 sold
func (uc *MarkPropertySoldUseCase) Execute(ctx context.Context, cmd MarkPropertySoldCommand) (*MarkPropertySoldResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	soldAt := cmd.SoldAt
	if soldAt.IsZero() {
		soldAt = uc.clock.Now()
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
		if err := prop.MarkSold(soldAt); err != nil {
			return err
		}
		return uc.propertyRepo.Update(txCtx, prop)
	})
	if err != nil {
		return nil, err
	}

	publishEvents(uc.events, prop.PullEvents())
	invalidateListings(ctx, uc.cache)

	return &MarkPropertySoldResult{
		PropertyID: prop.PropertyID().String(),
		Status:     string(prop.Status()),
		SoldAt:     prop.SoldAt(),
	}, nil
}
