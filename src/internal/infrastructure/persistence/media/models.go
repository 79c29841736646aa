package media

import (
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
)

// ===========================
// GORM Models
// ===========================

// MediaAssetGORM 媒體資料表模型
//
// 資料庫約束：
// - media_id: 主鍵（UUID）
// - property_id: 索引（按房源列出媒體）
// - position: 列表排序鍵（連續 0 起始由應用層維護）
type MediaAssetGORM struct {
	MediaID    string `gorm:"column:media_id;type:varchar(36);primaryKey"`
	PropertyID string `gorm:"column:property_id;type:varchar(36);index;not null"`

	MediaType  string `gorm:"column:media_type;type:varchar(16);not null"`
	Position   int    `gorm:"column:position;not null;default:0"`
	StorageKey string `gorm:"column:storage_key;type:varchar(512)"`
	URL        string `gorm:"column:url;type:varchar(1024)"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (MediaAssetGORM) TableName() string {
	return "media_assets"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 實體
func (m *MediaAssetGORM) toDomain() (*media.MediaAsset, error) {
	mediaID, err := media.MediaIDFromString(m.MediaID)
	if err != nil {
		return nil, err
	}
	propertyID, err := listing.PropertyIDFromString(m.PropertyID)
	if err != nil {
		return nil, err
	}

	return media.ReconstructMediaAsset(
		mediaID,
		propertyID,
		media.MediaType(m.MediaType),
		m.Position,
		m.StorageKey,
		m.URL,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// toGORM 將 Domain 實體轉換為 GORM 模型
func toGORM(asset *media.MediaAsset) *MediaAssetGORM {
	return &MediaAssetGORM{
		MediaID:    asset.MediaID().String(),
		PropertyID: asset.PropertyID().String(),
		MediaType:  string(asset.Type()),
		Position:   asset.Position(),
		StorageKey: asset.StorageKey(),
		URL:        asset.URL(),
		CreatedAt:  asset.CreatedAt(),
		UpdatedAt:  asset.UpdatedAt(),
	}
}
