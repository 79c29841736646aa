package listing

import (
	"context"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// ListingCache 端口
// ===========================

// ListingCache 列表查詢快取介面
//
// 由 Infrastructure 層以 Redis 實作。快取是盡力而為的
// 讀路徑加速：Get 未命中或後端故障都走資料庫，
// Set / Invalidate 失敗只記錄日誌，不影響業務結果。
//
// 失效策略：任何會改變列表可見內容的寫操作之後
// 調用 Invalidate（命名空間版本遞增，舊鍵全數失效）。
type ListingCache interface {
	// GetPage 讀取快取的列表頁（second return 表示是否命中）
	GetPage(ctx context.Context, filters listing.ListFilters) (*ListPropertiesResult, bool)

	// SetPage 寫入列表頁快取
	SetPage(ctx context.Context, filters listing.ListFilters, page *ListPropertiesResult)

	// Invalidate 使本組織命名空間下的全部列表快取失效
	Invalidate(ctx context.Context)
}

// invalidateListings 快取失效的 nil-safe 包裝
//
// 快取是選配依賴：未注入（nil）時靜默跳過。
func invalidateListings(ctx context.Context, cache ListingCache) {
	if cache != nil {
		cache.Invalidate(ctx)
	}
}
