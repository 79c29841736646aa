package shared

import (
	"github.com/google/uuid"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 泛型實體 ID 值對象
//
// 設計原則：
// 1. 使用泛型消除各實體 ID 的重複實現
// 2. 類型安全：不同實體的 ID 不能混用（PropertyID ≠ DocumentID）
// 3. 不可變性（unexported field）
// 4. 自我驗證（建構函數檢查 UUID 格式）
//
// 泛型參數 T：
// - 標記類型（marker type），僅用於編譯時類型區分
// - 例如：EntityID[PropertyMarker] 和 EntityID[DocumentMarker] 是不同類型
//
// 使用範例：
//   type PropertyMarker struct{}
//   type PropertyID = shared.EntityID[PropertyMarker]
//
//   id := shared.NewEntityID[PropertyMarker]()
//   id, err := shared.EntityIDFromString[PropertyMarker]("uuid-string", ErrInvalidPropertyID)
type EntityID[T any] struct {
	value uuid.UUID
}

// NewEntityID 生成新的實體 ID（UUID v4）
func NewEntityID[T any]() EntityID[T] {
	return EntityID[T]{value: uuid.New()}
}

// EntityIDFromString 從字串解析實體 ID
//
// 參數：
//   s - UUID 字串（標準格式：xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx）
//   errTemplate - 解析失敗時返回的錯誤模板（由調用者提供）
//
// 驗證範圍：僅檢查 UUID 格式，不檢查 version/variant
//
// 設計決策：為什麼需要 errTemplate 參數？
// - 不同實體的 ID 應返回不同的錯誤（ErrInvalidPropertyID vs ErrInvalidDocumentID）
// - 錯誤定義在各自的 bounded context，shared 層保持通用
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	id, err := uuid.Parse(s)
	if err != nil {
		if domainErr, ok := errTemplate.(*DomainError); ok {
			return EntityID[T]{}, domainErr.WithContext(
				"input", s,
				"parse_error", err.Error(),
			)
		}
		return EntityID[T]{}, errTemplate
	}
	return EntityID[T]{value: id}, nil
}

// String 轉換為字串表示（小寫 UUID）
func (e EntityID[T]) String() string {
	return e.value.String()
}

// Equals 比較兩個 EntityID 是否相等
//
// 注意：只能比較相同標記類型的 ID，跨類型比較是編譯錯誤
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為空 ID（零值）
//
// 空 ID 的場景：
// - 未初始化的結構體字段
// - 解析失敗後的零值返回
func (e EntityID[T]) IsEmpty() bool {
	return e.value == uuid.Nil
}
