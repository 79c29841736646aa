package listing

import (
	"errors"
	"strings"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文（來自 persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// 分頁預設值
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ===========================
// PropertyRepositoryImpl
// ===========================

// PropertyRepositoryImpl 房源倉儲實現（GORM）
//
// 設計原則：
// - 實作 listing.PropertyRepository 介面
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
// - 狀態轉換邏輯不在這裡：倉儲只做快照回寫
type PropertyRepositoryImpl struct {
	db *gorm.DB
}

// NewPropertyRepository 創建房源倉儲實例
func NewPropertyRepository(db *gorm.DB) listing.PropertyRepository {
	return &PropertyRepositoryImpl{db: db}
}

// Save 保存新房源
//
// 錯誤處理：
// - 主鍵衝突 → listing.ErrPropertyAlreadyExists
func (r *PropertyRepositoryImpl) Save(ctx shared.TransactionContext, prop *listing.Property) error {
	db := r.getDB(ctx)

	result := db.Create(toGORM(prop))
	if result.Error != nil {
		if isUniqueConstraintError(result.Error) {
			return listing.ErrPropertyAlreadyExists.WithContext(
				"property_id", prop.PropertyID().String(),
			)
		}
		return result.Error
	}
	return nil
}

// FindByID 根據房源 ID 查找（含已軟刪除者）
func (r *PropertyRepositoryImpl) FindByID(ctx shared.TransactionContext, id listing.PropertyID) (*listing.Property, error) {
	db := r.getDB(ctx)

	var model PropertyGORM
	result := db.Where("property_id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, listing.ErrPropertyNotFound.WithContext(
				"property_id", id.String(),
			)
		}
		return nil, result.Error
	}
	return model.toDomain()
}

// Update 更新既有房源（整個聚合快照回寫）
func (r *PropertyRepositoryImpl) Update(ctx shared.TransactionContext, prop *listing.Property) error {
	db := r.getDB(ctx)

	model := toGORM(prop)
	result := db.Model(&PropertyGORM{}).
		Where("property_id = ?", model.PropertyID).
		Select("*").
		Omit("property_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return listing.ErrPropertyNotFound.WithContext(
			"property_id", model.PropertyID,
		)
	}
	return nil
}

// List 條件查詢 + 分頁
//
// 軟刪除範圍：
// - 預設排除已軟刪除
// - Status = archived 時反轉（僅已軟刪除）
func (r *PropertyRepositoryImpl) List(ctx shared.TransactionContext, filters listing.ListFilters) (*listing.PropertyPage, error) {
	db := r.getDB(ctx).Model(&PropertyGORM{})
	db = applyFilters(db, filters)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	page := filters.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var models []PropertyGORM
	err := db.Order(orderClause(filters.Sort)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*listing.Property, 0, len(models))
	for i := range models {
		prop, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, prop)
	}

	return &listing.PropertyPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// applyFilters 組裝查詢條件
func applyFilters(db *gorm.DB, filters listing.ListFilters) *gorm.DB {
	switch filters.Status {
	case listing.FilterStatusArchived:
		db = db.Where("deleted_at IS NOT NULL")
	case listing.FilterStatusAll, "":
		db = db.Where("deleted_at IS NULL")
	default:
		db = db.Where("deleted_at IS NULL").Where("status = ?", filters.Status)
	}

	if !filters.OrgID.IsEmpty() {
		db = db.Where("org_id = ?", filters.OrgID.String())
	}
	if filters.PropertyType != "" {
		db = db.Where("property_type = ?", string(filters.PropertyType))
	}
	if filters.City != "" {
		db = db.Where("city = ?", filters.City)
	}
	if filters.State != "" {
		db = db.Where("state = ?", filters.State)
	}
	if filters.PriceMin != nil {
		db = db.Where("price_amount >= ?", *filters.PriceMin)
	}
	if filters.PriceMax != nil {
		db = db.Where("price_amount <= ?", *filters.PriceMax)
	}
	if q := strings.TrimSpace(filters.Query); q != "" {
		like := "%" + q + "%"
		db = db.Where(
			"title LIKE ? OR description LIKE ? OR internal_id LIKE ?",
			like, like, like,
		)
	}
	return db
}

// orderClause 排序鍵 → SQL 排序子句
func orderClause(sort listing.SortKey) string {
	switch sort {
	case listing.SortPriceAsc:
		return "price_amount ASC"
	case listing.SortPriceDesc:
		return "price_amount DESC"
	case listing.SortCompletenessDesc:
		return "completeness_score DESC, updated_at DESC"
	default:
		return "updated_at DESC"
	}
}

// getDB 獲取資料庫實例
//
// ctx 是 gormTransactionContext 時返回事務中的 DB，
// 否則（nil 或其他實作）走 auto-commit 模式。
func (r *PropertyRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

// isUniqueConstraintError 檢查是否為唯一約束錯誤
//
// 支援的資料庫：
// - SQLite: "UNIQUE constraint failed"
// - PostgreSQL: "duplicate key value" / "violates unique constraint"
// - MySQL: "Duplicate entry"
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, needle := range []string{
		"UNIQUE constraint failed",
		"duplicate key value",
		"Duplicate entry",
		"violates unique constraint",
	} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
