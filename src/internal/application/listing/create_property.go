package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// CreateProperty Use Case
// ===========================

// CreatePropertyCommand 創建房源草稿的命令
//
// 必填：Title / OperationType / PropertyType
// 選填：其餘內容欄位（之後可透過 UpdateProperty 補齊）
//
// OrgID / ListerID 不在命令中：一律取自認證結果，
// 調用者無法替其他組織創建房源。
type CreatePropertyCommand struct {
	Title         string
	OperationType string
	PropertyType  string
	PriceAmount   string // 十進位字串；空字串表示未定價
	PriceCurrency string // 空字串採用預設幣別

	Description    string
	Features       *FeaturesInput
	Address        *AddressInput
	Geo            *GeoInput
	Amenities      []string
	AmenitiesExtra string
	Tags           []string
}

// CreatePropertyResult 創建房源的結果
type CreatePropertyResult struct {
	PropertyID        string
	Status            string
	CompletenessScore int
	CreatedAt         time.Time
}

// CreatePropertyUseCase 創建房源草稿 Use Case
//
// 職責：
// 1. 取得當前操作者（歸屬組織與刊登者）
// 2. 驗證輸入並轉換為值對象
// 3. 委託 PropertyFactory 組裝一致的草稿
// 4. 在事務中保存，成功後發布事件並使列表快取失效
type CreatePropertyUseCase struct {
	factory      *listing.PropertyFactory
	propertyRepo listing.PropertyRepository
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	events       shared.EventPublisher
	cache        ListingCache
}

// NewCreatePropertyUseCase 創建 Use Case 實例
func NewCreatePropertyUseCase(
	factory *listing.PropertyFactory,
	propertyRepo listing.PropertyRepository,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	events shared.EventPublisher,
	cache ListingCache,
) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		factory:      factory,
		propertyRepo: propertyRepo,
		txManager:    txManager,
		auth:         auth,
		events:       events,
		cache:        cache,
	}
}

// Execute 執行創建房源
//
// 錯誤處理：
// - shared.ErrUnauthenticated: 未登入
// - listing.ErrInvalidValue: 輸入驗證失敗
// - listing.ErrPropertyAlreadyExists: ID 衝突（資料庫唯一約束）
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, cmd CreatePropertyCommand) (*CreatePropertyResult, error) {
	// 1. 取得當前操作者
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}
	orgID, err := listing.OrgIDFromString(user.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse org ID: %w", err)
	}
	listerID, err := listing.ListerIDFromString(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lister ID: %w", err)
	}

	// 2. 驗證並轉換輸入
	price, err := parseMoney(cmd.PriceAmount, cmd.PriceCurrency)
	if err != nil {
		return nil, err
	}

	spec := listing.DraftSpec{
		OrgID:          orgID,
		ListerID:       listerID,
		Title:          cmd.Title,
		OperationType:  listing.OperationType(cmd.OperationType),
		PropertyType:   listing.PropertyType(cmd.PropertyType),
		Price:          price,
		Description:    cmd.Description,
		Amenities:      cmd.Amenities,
		AmenitiesExtra: cmd.AmenitiesExtra,
		Tags:           cmd.Tags,
	}
	if cmd.Features != nil {
		spec.Features = toFeatures(*cmd.Features)
	}
	if cmd.Address != nil {
		addr, err := toAddress(*cmd.Address)
		if err != nil {
			return nil, err
		}
		spec.Address = addr
	}
	if cmd.Geo != nil {
		geo, err := listing.NewGeoPoint(cmd.Geo.Lat, cmd.Geo.Lng)
		if err != nil {
			return nil, err
		}
		spec.Geo = &geo
	}

	// 3. 組裝草稿（Domain Layer）
	prop, err := uc.factory.NewDraft(spec)
	if err != nil {
		return nil, err
	}

	// 4. 在事務中保存
	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		if err := uc.propertyRepo.Save(txCtx, prop); err != nil {
			return fmt.Errorf("failed to save property: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 5. 持久化成功後的副通道
	publishEvents(uc.events, prop.PullEvents())
	invalidateListings(ctx, uc.cache)

	return &CreatePropertyResult{
		PropertyID:        prop.PropertyID().String(),
		Status:            string(prop.Status()),
		CompletenessScore: prop.CompletenessScore(),
		CreatedAt:         prop.CreatedAt(),
	}, nil
}
