package shared

// TransactionContext 事務上下文介面
//
// 設計決策：可選事務參與模式（Optional Transaction Participation）
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行（事務傳播）
// - ctx == nil: 使用 auto-commit 模式（適用於單一讀操作）
//
// Repository 方法約束：
// - 寫操作（Save / Update / Delete）：ctx 必須為 non-nil，保證原子性
// - 讀操作（FindByID / List）：ctx 可為 nil，獨立查詢走 auto-commit
//
// 範例（發佈房源：讀取、狀態變更、寫回必須在同一事務中）：
//   txManager.InTransaction(func(ctx TransactionContext) error {
//       prop, _ := repo.FindByID(ctx, propertyID)
//       if err := prop.Publish(opts); err != nil {
//           return err
//       }
//       return repo.Update(ctx, prop)
//   })
//
// 架構原則：
// - 標記介面（Marker Interface），不暴露任何方法
// - Infrastructure Layer 實作具體的事務封裝（GORM）
// - Domain / Application Layer 只依賴此介面，保持依賴方向正確
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
