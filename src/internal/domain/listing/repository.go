package listing

import (
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// PropertyRepository 介面
// ===========================

// SortKey 列表排序鍵
type SortKey string

const (
	SortRecent           SortKey = "recent"            // updatedAt（空則 createdAt）降序
	SortPriceAsc         SortKey = "price_asc"
	SortPriceDesc        SortKey = "price_desc"
	SortCompletenessDesc SortKey = "completeness_desc"
)

// Valid 判斷是否為宣告的排序鍵
func (s SortKey) Valid() bool {
	switch s {
	case SortRecent, SortPriceAsc, SortPriceDesc, SortCompletenessDesc:
		return true
	}
	return false
}

// 列表狀態過濾的特殊值（在 PropertyStatus 之外）
const (
	FilterStatusAll      = "all"      // 不過濾狀態（仍排除已軟刪除）
	FilterStatusArchived = "archived" // 僅已軟刪除
)

// ListFilters 房源列表查詢條件
//
// 零值欄位表示不過濾。PriceMin / PriceMax 使用指標區分
// 「未指定」與「過濾 0」。
type ListFilters struct {
	Query        string // 自由文字（標題 / 描述 / 內部編號）
	Status       string // draft / published / sold / archived / all
	PropertyType PropertyType
	City         string
	State        string
	OrgID        OrgID // 多租戶 row-scoping 由持久層負責；這裡僅傳遞
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	Sort         SortKey
	Page         int // 1-based；<=0 視為 1
	PageSize     int // <=0 視為預設 20
}

// PropertyPage 分頁查詢結果
type PropertyPage struct {
	Items    []*Property
	Total    int64
	Page     int
	PageSize int
}

// PropertyRepository 房源倉儲介面
//
// 設計原則：
// 1. 依賴倒置：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 倉儲只做持久化：publish / pause / markSold 等業務轉換
//    一律是「FindByID → 聚合命令方法 → Update」，轉換表
//    不會在 SQL 裡重新出現
// 3. 寫操作（Save / Update）必須在事務中（ctx non-nil）；
//    讀操作可傳 nil 走 auto-commit
type PropertyRepository interface {
	// Save 保存新房源
	// 錯誤：ErrPropertyAlreadyExists（ID 重複）
	Save(ctx shared.TransactionContext, prop *Property) error

	// FindByID 根據房源 ID 查找（含已軟刪除者）
	// 返回：找到的房源，或 ErrPropertyNotFound
	FindByID(ctx shared.TransactionContext, id PropertyID) (*Property, error)

	// Update 更新既有房源（整個聚合快照回寫，last-write-wins）
	// 錯誤：ErrPropertyNotFound
	Update(ctx shared.TransactionContext, prop *Property) error

	// List 條件查詢 + 分頁
	// 預設排除已軟刪除（Status=archived 時反轉）
	List(ctx shared.TransactionContext, filters ListFilters) (*PropertyPage, error)
}

// ===========================
// Repository 錯誤定義
// ===========================

const (
	ErrCodePropertyNotFound      shared.ErrorCode = "PROPERTY_NOT_FOUND"
	ErrCodePropertyAlreadyExists shared.ErrorCode = "PROPERTY_ALREADY_EXISTS"
)

var (
	// ErrPropertyNotFound 房源不存在
	ErrPropertyNotFound = &shared.DomainError{
		Code:    ErrCodePropertyNotFound,
		Message: "房源不存在",
	}

	// ErrPropertyAlreadyExists 房源已存在
	ErrPropertyAlreadyExists = &shared.DomainError{
		Code:    ErrCodePropertyAlreadyExists,
		Message: "房源已存在",
	}
)
