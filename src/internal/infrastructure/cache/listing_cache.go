package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// Redis ListingCache 實作
// ===========================

const (
	// versionKey 命名空間版本鍵
	//
	// 失效策略：不逐鍵刪除，而是遞增版本號。
	// 版本號參與每個快取鍵的組成，舊版本的鍵
	// 自然失去引用，由 TTL 回收。
	versionKey = "listings:ver"

	// pageTTL 列表頁快取的存活時間
	pageTTL = 5 * time.Minute
)

// RedisListingCache 列表查詢快取（Redis 實作）
//
// 快取是盡力而為的讀路徑加速：任何 Redis 故障都
// 退化為快取未命中（讀）或記錄日誌（寫），
// 不影響業務結果。
type RedisListingCache struct {
	client *redis.Client
}

// NewRedisListingCache 創建快取實例
func NewRedisListingCache(client *redis.Client) *RedisListingCache {
	return &RedisListingCache{client: client}
}

// GetPage 讀取快取的列表頁
func (c *RedisListingCache) GetPage(ctx context.Context, filters listing.ListFilters) (*applisting.ListPropertiesResult, bool) {
	data, err := c.client.Get(ctx, c.pageKey(ctx, filters)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("[WARN] listing cache get failed: %v", err)
		return nil, false
	}

	var page applisting.ListPropertiesResult
	if err := json.Unmarshal([]byte(data), &page); err != nil {
		log.Printf("[WARN] listing cache decode failed: %v", err)
		return nil, false
	}
	return &page, true
}

// SetPage 寫入列表頁快取
func (c *RedisListingCache) SetPage(ctx context.Context, filters listing.ListFilters, page *applisting.ListPropertiesResult) {
	data, err := json.Marshal(page)
	if err != nil {
		log.Printf("[WARN] listing cache encode failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, c.pageKey(ctx, filters), data, pageTTL).Err(); err != nil {
		log.Printf("[WARN] listing cache set failed: %v", err)
	}
}

// Invalidate 遞增命名空間版本，使全部列表鍵失效
func (c *RedisListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		log.Printf("[WARN] listing cache invalidate failed: %v", err)
	}
}

// pageKey 由過濾條件組成快取鍵
//
// 格式：listings:v<版本>:<條件的 md5>
// 條件按鍵名排序後串接，順序無關的同條件查詢共用同一鍵。
func (c *RedisListingCache) pageKey(ctx context.Context, filters listing.ListFilters) string {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		version = 0
	}

	params := map[string]string{
		"query":         filters.Query,
		"status":        filters.Status,
		"property_type": string(filters.PropertyType),
		"city":          filters.City,
		"state":         filters.State,
		"org_id":        filters.OrgID.String(),
		"sort":          string(filters.Sort),
		"page":          fmt.Sprintf("%d", filters.Page),
		"page_size":     fmt.Sprintf("%d", filters.PageSize),
	}
	if filters.PriceMin != nil {
		params["price_min"] = filters.PriceMin.String()
	}
	if filters.PriceMax != nil {
		params["price_max"] = filters.PriceMax.String()
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return fmt.Sprintf("listings:v%d:%s", version, hex.EncodeToString(hash[:]))
}
