package document

import (
	"errors"

	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文（來自 persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// DocumentRepositoryImpl
// ===========================

// DocumentRepositoryImpl 文件倉儲實現（GORM）
type DocumentRepositoryImpl struct {
	db *gorm.DB
}

// NewDocumentRepository 創建文件倉儲實例
func NewDocumentRepository(db *gorm.DB) document.DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

// Save 保存新文件
func (r *DocumentRepositoryImpl) Save(ctx shared.TransactionContext, doc *document.Document) error {
	return r.getDB(ctx).Create(toGORM(doc)).Error
}

// FindByID 根據文件 ID 查找
func (r *DocumentRepositoryImpl) FindByID(ctx shared.TransactionContext, id document.DocumentID) (*document.Document, error) {
	var model DocumentGORM
	result := r.getDB(ctx).Where("document_id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, document.ErrDocumentNotFound.WithContext(
				"document_id", id.String(),
			)
		}
		return nil, result.Error
	}
	return model.toDomain()
}

// ListByProperty 列出房源的全部文件（附掛順序）
func (r *DocumentRepositoryImpl) ListByProperty(ctx shared.TransactionContext, propertyID listing.PropertyID) ([]*document.Document, error) {
	var models []DocumentGORM
	err := r.getDB(ctx).
		Where("property_id = ?", propertyID.String()).
		Order("created_at ASC, document_id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	docs := make([]*document.Document, 0, len(models))
	for i := range models {
		doc, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Update 更新既有文件
func (r *DocumentRepositoryImpl) Update(ctx shared.TransactionContext, doc *document.Document) error {
	model := toGORM(doc)
	result := r.getDB(ctx).Model(&DocumentGORM{}).
		Where("document_id = ?", model.DocumentID).
		Select("*").
		Omit("document_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return document.ErrDocumentNotFound.WithContext(
			"document_id", model.DocumentID,
		)
	}
	return nil
}

// Delete 物理刪除文件記錄
func (r *DocumentRepositoryImpl) Delete(ctx shared.TransactionContext, id document.DocumentID) error {
	result := r.getDB(ctx).Where("document_id = ?", id.String()).Delete(&DocumentGORM{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return document.ErrDocumentNotFound.WithContext(
			"document_id", id.String(),
		)
	}
	return nil
}

// AllStorageKeys 返回全部文件的 storage key（去除空值）
func (r *DocumentRepositoryImpl) AllStorageKeys(ctx shared.TransactionContext) ([]string, error) {
	var keys []string
	err := r.getDB(ctx).Model(&DocumentGORM{}).
		Where("storage_key <> ''").
		Pluck("storage_key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// getDB 獲取資料庫實例（nil ctx 走 auto-commit）
func (r *DocumentRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}
