package persistence

import (
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager 實作
// ===========================

// GORMTransactionManager GORM 事務管理器
//
// 設計原則：
// - 實作 shared.TransactionManager 介面
// - 委託 gorm.DB.Transaction：fn 返回錯誤即回滾，
//   返回 nil 即提交
// - 傳給 fn 的上下文封裝事務中的 *gorm.DB，
//   各 Repository 透過型別斷言取回
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在單一資料庫事務中執行 fn
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}
