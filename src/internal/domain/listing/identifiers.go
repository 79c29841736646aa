package listing

import (
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================

// 使用泛型 EntityID[T] + 標記類型，讓 PropertyID / OrgID / ListerID
// 在編譯時就是不同類型，無法混用。

// PropertyMarker 是 PropertyID 的標記類型
type PropertyMarker struct{}

// PropertyID 房源的唯一標識符
type PropertyID = shared.EntityID[PropertyMarker]

// NewPropertyID 生成新的房源 ID（UUID v4）
func NewPropertyID() PropertyID {
	return shared.NewEntityID[PropertyMarker]()
}

// PropertyIDFromString 從字串解析房源 ID
func PropertyIDFromString(s string) (PropertyID, error) {
	return shared.EntityIDFromString[PropertyMarker](s, ErrInvalidPropertyID)
}

// OrgMarker 是 OrgID 的標記類型
type OrgMarker struct{}

// OrgID 擁有房源的組織 ID
type OrgID = shared.EntityID[OrgMarker]

// NewOrgID 生成新的組織 ID（UUID v4）
func NewOrgID() OrgID {
	return shared.NewEntityID[OrgMarker]()
}

// OrgIDFromString 從字串解析組織 ID
func OrgIDFromString(s string) (OrgID, error) {
	return shared.EntityIDFromString[OrgMarker](s, ErrInvalidOrgID)
}

// ListerMarker 是 ListerID 的標記類型
type ListerMarker struct{}

// ListerID 刊登者用戶 ID
type ListerID = shared.EntityID[ListerMarker]

// NewListerID 生成新的刊登者 ID（UUID v4）
func NewListerID() ListerID {
	return shared.NewEntityID[ListerMarker]()
}

// ListerIDFromString 從字串解析刊登者 ID
func ListerIDFromString(s string) (ListerID, error) {
	return shared.EntityIDFromString[ListerMarker](s, ErrInvalidListerID)
}
