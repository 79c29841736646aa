package media

import (
	"strings"
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// MediaAsset 實體
// ===========================

// MediaType 媒體類型
type MediaType string

const (
	TypeImage     MediaType = "image"
	TypeVideo     MediaType = "video"
	TypeFloorplan MediaType = "floorplan"
)

// Valid 判斷是否為宣告的媒體類型
func (t MediaType) Valid() bool {
	switch t {
	case TypeImage, TypeVideo, TypeFloorplan:
		return true
	}
	return false
}

// MediaAsset 媒體資產實體
//
// 附屬於唯一一個房源（以 PropertyID 反向引用）。
//
// 排序不變條件：任何重排 / 移除之後，position 必須是
// 連續的 0 起始序列（由 NormalizePositions 維護）。
// 封面依策略是最低 position 的 image（無 image 時退而取
// 最低 position 的任意資產），並按慣例移至 position 0。
type MediaAsset struct {
	mediaID    MediaID
	propertyID listing.PropertyID

	mediaType  MediaType
	position   int
	storageKey string
	url        string

	createdAt time.Time
	updatedAt time.Time
}

// NewMediaAsset 附掛新媒體（Checked Constructor）
//
// 業務規則：
// 1. 媒體類型必須是宣告值
// 2. position >= 0
// 3. 必須有取回途徑（storage key 或 URL）
func NewMediaAsset(propertyID listing.PropertyID, mediaType MediaType, position int, storageKey, url string, now time.Time) (*MediaAsset, error) {
	if propertyID.IsEmpty() {
		return nil, listing.ErrInvalidPropertyID
	}
	if !mediaType.Valid() {
		return nil, ErrInvalidMediaType.WithContext("media_type", string(mediaType))
	}
	if position < 0 {
		return nil, ErrInvalidPosition.WithContext("position", position)
	}

	storageKey = strings.TrimSpace(storageKey)
	url = strings.TrimSpace(url)
	if storageKey == "" && url == "" {
		return nil, ErrMissingLocator
	}

	if now.IsZero() {
		now = time.Now()
	}

	return &MediaAsset{
		mediaID:    NewMediaID(),
		propertyID: propertyID,
		mediaType:  mediaType,
		position:   position,
		storageKey: storageKey,
		url:        url,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructMediaAsset 從持久化存儲重建（僅供 Repository 使用）
func ReconstructMediaAsset(
	mediaID MediaID,
	propertyID listing.PropertyID,
	mediaType MediaType,
	position int,
	storageKey, url string,
	createdAt, updatedAt time.Time,
) (*MediaAsset, error) {
	if mediaID.IsEmpty() {
		return nil, ErrInvalidMediaID
	}
	if !mediaType.Valid() {
		return nil, ErrInvalidMediaType.WithContext("media_type", string(mediaType))
	}
	if position < 0 {
		return nil, ErrInvalidPosition.WithContext("position", position)
	}

	return &MediaAsset{
		mediaID:    mediaID,
		propertyID: propertyID,
		mediaType:  mediaType,
		position:   position,
		storageKey: storageKey,
		url:        url,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

func (m *MediaAsset) MediaID() MediaID               { return m.mediaID }
func (m *MediaAsset) PropertyID() listing.PropertyID { return m.propertyID }
func (m *MediaAsset) Type() MediaType                { return m.mediaType }
func (m *MediaAsset) Position() int                  { return m.position }
func (m *MediaAsset) StorageKey() string             { return m.storageKey }
func (m *MediaAsset) URL() string                    { return m.url }
func (m *MediaAsset) CreatedAt() time.Time           { return m.createdAt }
func (m *MediaAsset) UpdatedAt() time.Time           { return m.updatedAt }

// IsImage 判斷是否為圖片（封面候選的首選類型）
func (m *MediaAsset) IsImage() bool {
	return m.mediaType == TypeImage
}

// ===========================
// 命令方法
// ===========================

// MoveTo 移動到指定位置
//
// 僅供 MediaOrderingPolicy 在重排時使用；
// 外部程式請走 NormalizePositions / EnsureCoverAtZero。
func (m *MediaAsset) MoveTo(position int) error {
	if position < 0 {
		return ErrInvalidPosition.WithContext("position", position)
	}
	m.position = position
	m.updatedAt = time.Now()
	return nil
}
