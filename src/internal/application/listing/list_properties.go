package listing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// ListProperties Use Case
// ===========================

// ListPropertiesQuery 房源列表查詢（Input DTO）
//
// 零值欄位表示不過濾；OrgID 不可指定，一律取自認證結果。
type ListPropertiesQuery struct {
	Query        string
	Status       string // draft / published / sold / archived / all
	PropertyType string
	City         string
	State        string
	PriceMin     string // 十進位字串；空字串表示無下限
	PriceMax     string
	Sort         string // recent / price_asc / price_desc / completeness_desc
	Page         int
	PageSize     int
}

// ListPropertiesResult 房源列表結果（Output DTO）
type ListPropertiesResult struct {
	Items    []PropertyView `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ListPropertiesUseCase 房源列表 Use Case
//
// 讀路徑：先查快取，未命中走資料庫並回填。
// 快取鍵由過濾條件派生（見 Infrastructure 層實作），
// 寫操作透過命名空間版本使整批鍵失效。
type ListPropertiesUseCase struct {
	propertyRepo listing.PropertyRepository
	auth         shared.AuthGateway
	cache        ListingCache
}

// NewListPropertiesUseCase 創建 Use Case 實例
func NewListPropertiesUseCase(
	propertyRepo listing.PropertyRepository,
	auth shared.AuthGateway,
	cache ListingCache,
) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		propertyRepo: propertyRepo,
		auth:         auth,
		cache:        cache,
	}
}

// Execute 執行房源列表查詢
//
// 錯誤處理：
// - listing.ErrInvalidValue: 未宣告的排序鍵 / 價格格式錯誤
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, query ListPropertiesQuery) (*ListPropertiesResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}
	orgID, err := listing.OrgIDFromString(user.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse org ID: %w", err)
	}

	filters, err := uc.toFilters(query, orgID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if page, hit := uc.cache.GetPage(ctx, filters); hit {
			return page, nil
		}
	}

	// 唯讀查詢走 auto-commit
	page, err := uc.propertyRepo.List(nil, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	result := &ListPropertiesResult{
		Items:    make([]PropertyView, 0, len(page.Items)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	for _, prop := range page.Items {
		result.Items = append(result.Items, newPropertyView(prop))
	}

	if uc.cache != nil {
		uc.cache.SetPage(ctx, filters, result)
	}
	return result, nil
}

// toFilters 轉換並驗證查詢條件
func (uc *ListPropertiesUseCase) toFilters(query ListPropertiesQuery, orgID listing.OrgID) (listing.ListFilters, error) {
	sort := listing.SortKey(query.Sort)
	if query.Sort == "" {
		sort = listing.SortRecent
	}
	if !sort.Valid() {
		return listing.ListFilters{}, listing.ErrInvalidValue.WithContext(
			"field", "sort", "value", query.Sort,
		)
	}

	filters := listing.ListFilters{
		Query:        query.Query,
		Status:       query.Status,
		PropertyType: listing.PropertyType(query.PropertyType),
		City:         query.City,
		State:        query.State,
		OrgID:        orgID,
		Sort:         sort,
		Page:         query.Page,
		PageSize:     query.PageSize,
	}

	if query.PriceMin != "" {
		min, err := decimal.NewFromString(query.PriceMin)
		if err != nil {
			return listing.ListFilters{}, listing.ErrInvalidValue.
				WithContext("field", "price_min", "value", query.PriceMin).
				WithCause(err)
		}
		filters.PriceMin = &min
	}
	if query.PriceMax != "" {
		max, err := decimal.NewFromString(query.PriceMax)
		if err != nil {
			return listing.ListFilters{}, listing.ErrInvalidValue.
				WithContext("field", "price_max", "value", query.PriceMax).
				WithCause(err)
		}
		filters.PriceMax = &max
	}
	return filters, nil
}
