package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// PublishProperty Use Case
// ===========================

// PublishPropertyCommand 發佈房源的命令
type PublishPropertyCommand struct {
	PropertyID string

	// ScheduleAt 非零時只預約發佈時間，不做狀態轉換
	ScheduleAt time.Time
}

// PublishPropertyResult 發佈房源的結果
type PublishPropertyResult struct {
	PropertyID        string
	Status            string
	PublishedAt       *time.Time
	CompletenessScore int
}

// PublishPropertyUseCase 發佈房源 Use Case
//
// 業務流程：
// 1. 取得操作者（KYC 狀態是發佈門檻之一）
// 2. 在事務中載入聚合、重算完整度（門檻看最新分數，
//    不看可能過期的快取值）、執行 Publish、回寫
// 3. 成功後發布事件並使列表快取失效
//
// 門檻失敗的錯誤按優先序只返回第一個
// （KYC → 完整度分數 → RPP 駁回），完整清單走就緒評估。
type PublishPropertyUseCase struct {
	propertyRepo listing.PropertyRepository
	refresher    *CompletenessRefresher
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	clock        shared.Clock
	events       shared.EventPublisher
	cache        ListingCache
}

// NewPublishPropertyUseCase 創建 Use Case 實例
func NewPublishPropertyUseCase(
	propertyRepo listing.PropertyRepository,
	refresher *CompletenessRefresher,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	clock shared.Clock,
	events shared.EventPublisher,
	cache ListingCache,
) *PublishPropertyUseCase {
	return &PublishPropertyUseCase{
		propertyRepo: propertyRepo,
		refresher:    refresher,
		txManager:    txManager,
		auth:         auth,
		clock:        clock,
		events:       events,
		cache:        cache,
	}
}

// Execute 執行發佈房源
//
// 錯誤處理：
// - listing.ErrKycRequired: 刊登者 KYC 未通過
// - listing.ErrPublishBlocked: 完整度分數未達門檻
// - listing.ErrRppRejected: RPP 文件被駁回
// - listing.ErrStatusTransition: sold 等終態不可發佈
func (uc *PublishPropertyUseCase) Execute(ctx context.Context, cmd PublishPropertyCommand) (*PublishPropertyResult, error) {
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

		// 預約發佈：只記錄時間戳，狀態仍為 draft
		if !cmd.ScheduleAt.IsZero() {
			if err := prop.SchedulePublication(cmd.ScheduleAt); err != nil {
				return err
			}
			return uc.propertyRepo.Update(txCtx, prop)
		}

		if _, err := uc.refresher.Refresh(txCtx, prop); err != nil {
			return err
		}
		if err := prop.Publish(listing.PublishOptions{
			Now:         uc.clock.Now(),
			KycVerified: user.KycVerified(),
		}); err != nil {
			return err
		}
		if err := uc.propertyRepo.Update(txCtx, prop); err != nil {
			return fmt.Errorf("failed to update property: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(uc.events, prop.PullEvents())
	invalidateListings(ctx, uc.cache)

	return &PublishPropertyResult{
		PropertyID:        prop.PropertyID().String(),
		Status:            string(prop.Status()),
		PublishedAt:       prop.PublishedAt(),
		CompletenessScore: prop.CompletenessScore(),
	}, nil
}
