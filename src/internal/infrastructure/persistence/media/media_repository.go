package media

import (
	"errors"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文（來自 persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// MediaRepositoryImpl
// ===========================

// MediaRepositoryImpl 媒體倉儲實現（GORM）
type MediaRepositoryImpl struct {
	db *gorm.DB
}

// NewMediaRepository 創建媒體倉儲實例
func NewMediaRepository(db *gorm.DB) media.MediaRepository {
	return &MediaRepositoryImpl{db: db}
}

// Save 保存新媒體
func (r *MediaRepositoryImpl) Save(ctx shared.TransactionContext, asset *media.MediaAsset) error {
	return r.getDB(ctx).Create(toGORM(asset)).Error
}

// FindByID 根據媒體 ID 查找
func (r *MediaRepositoryImpl) FindByID(ctx shared.TransactionContext, id media.MediaID) (*media.MediaAsset, error) {
	var model MediaAssetGORM
	result := r.getDB(ctx).Where("media_id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, media.ErrMediaNotFound.WithContext(
				"media_id", id.String(),
			)
		}
		return nil, result.Error
	}
	return model.toDomain()
}

// ListByProperty 列出房源的全部媒體（position 升序）
func (r *MediaRepositoryImpl) ListByProperty(ctx shared.TransactionContext, propertyID listing.PropertyID) ([]*media.MediaAsset, error) {
	var models []MediaAssetGORM
	err := r.getDB(ctx).
		Where("property_id = ?", propertyID.String()).
		Order("position ASC, created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	assets := make([]*media.MediaAsset, 0, len(models))
	for i := range models {
		asset, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// CountByProperty 房源的媒體數量
func (r *MediaRepositoryImpl) CountByProperty(ctx shared.TransactionContext, propertyID listing.PropertyID) (int, error) {
	var count int64
	err := r.getDB(ctx).Model(&MediaAssetGORM{}).
		Where("property_id = ?", propertyID.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// UpdatePositions 批次回寫位置
//
// 調用約定：在同一事務中（ctx non-nil），
// 整個列表一次回寫，不留中間狀態。
func (r *MediaRepositoryImpl) UpdatePositions(ctx shared.TransactionContext, assets []*media.MediaAsset) error {
	db := r.getDB(ctx)
	for _, asset := range assets {
		result := db.Model(&MediaAssetGORM{}).
			Where("media_id = ?", asset.MediaID().String()).
			Updates(map[string]interface{}{
				"position":   asset.Position(),
				"updated_at": asset.UpdatedAt(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return media.ErrMediaNotFound.WithContext(
				"media_id", asset.MediaID().String(),
			)
		}
	}
	return nil
}

// Delete 刪除媒體記錄
func (r *MediaRepositoryImpl) Delete(ctx shared.TransactionContext, id media.MediaID) error {
	result := r.getDB(ctx).Where("media_id = ?", id.String()).Delete(&MediaAssetGORM{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return media.ErrMediaNotFound.WithContext(
			"media_id", id.String(),
		)
	}
	return nil
}

// getDB 獲取資料庫實例（nil ctx 走 auto-commit）
func (r *MediaRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}
