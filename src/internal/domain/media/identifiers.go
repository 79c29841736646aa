package media

import (
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// MediaMarker 是 MediaID 的標記類型
type MediaMarker struct{}

// MediaID 媒體資產的唯一標識符
type MediaID = shared.EntityID[MediaMarker]

// NewMediaID 生成新的媒體 ID（UUID v4）
func NewMediaID() MediaID {
	return shared.NewEntityID[MediaMarker]()
}

// MediaIDFromString 從字串解析媒體 ID
func MediaIDFromString(s string) (MediaID, error) {
	return shared.EntityIDFromString[MediaMarker](s, ErrInvalidMediaID)
}
