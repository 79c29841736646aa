package listing

import (
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// PropertyFactory 領域服務
// ===========================

// PropertyFactory 房源工廠
//
// 職責：把「建一個一致的草稿」的知識集中在一處 —
// 初始狀態、初始 RPP 摘要、初始完整度分數的組合規則
// 不散落在各個 Use Case 裡。
type PropertyFactory struct {
	clock shared.Clock
}

// NewPropertyFactory 建構函數
func NewPropertyFactory(clock shared.Clock) *PropertyFactory {
	return &PropertyFactory{clock: clock}
}

// DraftSpec 草稿的可選初始內容
type DraftSpec struct {
	OrgID         OrgID
	ListerID      ListerID
	Title         string
	OperationType OperationType
	PropertyType  PropertyType
	Price         Money
	Description   string
	Features      Features
	Address       Address // 零值表示未提供
	Geo           *GeoPoint
	Amenities     []string
	AmenitiesExtra string
	Tags          []string
}

// NewDraft 創建一致的房源草稿
//
// 業務規則：
// - 狀態固定為 draft，RPP 摘要為 pending
// - 提供的選填內容逐項套用（每步都走聚合的命令方法，
//   維持不變條件檢查）
// - 完整度以零媒體、零文件計算
func (f *PropertyFactory) NewDraft(spec DraftSpec) (*Property, error) {
	prop, err := NewProperty(NewPropertyParams{
		OrgID:         spec.OrgID,
		ListerID:      spec.ListerID,
		Title:         spec.Title,
		OperationType: spec.OperationType,
		PropertyType:  spec.PropertyType,
		Price:         spec.Price,
		Now:           f.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	if spec.Description != "" {
		prop.SetDescription(spec.Description)
	}
	if err := prop.SetFeatures(spec.Features); err != nil {
		return nil, err
	}
	if !spec.Address.IsZero() {
		prop.SetAddress(spec.Address)
	}
	if spec.Geo != nil {
		prop.SetGeoPoint(*spec.Geo)
	}
	if len(spec.Amenities) > 0 || spec.AmenitiesExtra != "" {
		prop.SetAmenities(spec.Amenities, spec.AmenitiesExtra)
	}
	if len(spec.Tags) > 0 {
		prop.SetTags(spec.Tags)
	}

	prop.RecomputeCompleteness(0, false)
	return prop, nil
}
