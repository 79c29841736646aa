package listing

import (
	"context"
	"fmt"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// UpdateProperty Use Case
// ===========================

// UpdatePropertyCommand 更新房源內容的命令（部分更新）
//
// 指標為 nil 表示不變更該欄位；非 nil 的零值（空字串、
// 空切片）表示清空。生命週期狀態不在此命令範圍：
// 發佈 / 暫停 / 成交各有專屬 Use Case。
type UpdatePropertyCommand struct {
	PropertyID string

	Title         *string
	Description   *string
	PropertyType  *string
	PriceAmount   *string
	PriceCurrency *string

	Features *FeaturesInput
	Address  *AddressInput
	Geo      *GeoInput
	ClearGeo bool

	Amenities      *[]string
	AmenitiesExtra *string
	Tags           *[]string
	InternalID     *string
}

// UpdatePropertyResult 更新房源的結果
type UpdatePropertyResult struct {
	Property PropertyView
}

// UpdatePropertyUseCase 更新房源內容 Use Case
//
// 業務流程：載入聚合 → 逐項套用命令方法 → 重算完整度 → 回寫。
// 每個欄位變更都走聚合的命令方法，不變條件檢查不被繞過。
type UpdatePropertyUseCase struct {
	propertyRepo listing.PropertyRepository
	refresher    *CompletenessRefresher
	txManager    shared.TransactionManager
	auth         shared.AuthGateway
	cache        ListingCache
}

// NewUpdatePropertyUseCase 創建 Use Case 實例
func NewUpdatePropertyUseCase(
	propertyRepo listing.PropertyRepository,
	refresher *CompletenessRefresher,
	txManager shared.TransactionManager,
	auth shared.AuthGateway,
	cache ListingCache,
) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{
		propertyRepo: propertyRepo,
		refresher:    refresher,
		txManager:    txManager,
		auth:         auth,
		cache:        cache,
	}
}

// Execute 執行更新房源
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, cmd UpdatePropertyCommand) (*UpdatePropertyResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	var result *UpdatePropertyResult
	err = uc.txManager.InTransaction(func(txCtx shared.TransactionContext) error {
		prop, err := uc.propertyRepo.FindByID(txCtx, propertyID)
		if err != nil {
			return err
		}
		if err := AssertOwnedBy(prop, user); err != nil {
			return err
		}

		if err := uc.apply(prop, cmd); err != nil {
			return err
		}

		if _, err := uc.refresher.Refresh(txCtx, prop); err != nil {
			return err
		}
		if err := uc.propertyRepo.Update(txCtx, prop); err != nil {
			return fmt.Errorf("failed to update property: %w", err)
		}

		result = &UpdatePropertyResult{Property: newPropertyView(prop)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateListings(ctx, uc.cache)
	return result, nil
}

// apply 逐項套用部分更新
func (uc *UpdatePropertyUseCase) apply(prop *listing.Property, cmd UpdatePropertyCommand) error {
	if cmd.Title != nil {
		if err := prop.Rename(*cmd.Title); err != nil {
			return err
		}
	}
	if cmd.Description != nil {
		prop.SetDescription(*cmd.Description)
	}
	if cmd.PropertyType != nil {
		if err := prop.Retype(listing.PropertyType(*cmd.PropertyType)); err != nil {
			return err
		}
	}
	if cmd.PriceAmount != nil || cmd.PriceCurrency != nil {
		amount := prop.Price().Amount().String()
		currency := prop.Price().Currency()
		if cmd.PriceAmount != nil {
			amount = *cmd.PriceAmount
		}
		if cmd.PriceCurrency != nil {
			currency = *cmd.PriceCurrency
		}
		price, err := parseMoney(amount, currency)
		if err != nil {
			return err
		}
		prop.Reprice(price)
	}
	if cmd.Features != nil {
		if err := prop.SetFeatures(toFeatures(*cmd.Features)); err != nil {
			return err
		}
	}
	if cmd.Address != nil {
		addr, err := toAddress(*cmd.Address)
		if err != nil {
			return err
		}
		prop.SetAddress(addr)
	}
	if cmd.ClearGeo {
		prop.ClearGeoPoint()
	} else if cmd.Geo != nil {
		geo, err := listing.NewGeoPoint(cmd.Geo.Lat, cmd.Geo.Lng)
		if err != nil {
			return err
		}
		prop.SetGeoPoint(geo)
	}
	if cmd.Amenities != nil || cmd.AmenitiesExtra != nil {
		amenities := prop.Amenities()
		extra := prop.AmenitiesExtra()
		if cmd.Amenities != nil {
			amenities = *cmd.Amenities
		}
		if cmd.AmenitiesExtra != nil {
			extra = *cmd.AmenitiesExtra
		}
		prop.SetAmenities(amenities, extra)
	}
	if cmd.Tags != nil {
		prop.SetTags(*cmd.Tags)
	}
	if cmd.InternalID != nil {
		prop.SetInternalID(*cmd.InternalID)
	}
	return nil
}
