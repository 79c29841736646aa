package shared

import "fmt"

// ===========================
// DomainError 領域錯誤基礎
// ===========================

// ErrorCode 錯誤代碼類型
//
// 各 bounded context 定義自己的錯誤代碼常量，
// 但共用同一個錯誤結構（避免每個 context 重複實現）。
type ErrorCode string

// DomainError 領域錯誤
//
// 設計原則：
// 1. 機器可讀的錯誤代碼（用於 HTTP 狀態碼映射與 UI 分支）
// 2. 結構化上下文信息（用於調試和日誌，不用於程式分支）
// 3. 可選的底層原因（Cause，支援 errors.Unwrap）
// 4. 不可變性（WithContext / WithCause 返回新實例）
//
// 錯誤比較一律使用 errors.Is（按 Code 比較），
// 不要比較錯誤訊息字串。
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
	Cause   error
}

// Error 實現 error 介面
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例）
//
// 使用範例：
//   return ErrStatusTransition.WithContext("from", "draft", "to", "sold")
func (e *DomainError) WithContext(keyValues ...interface{}) *DomainError {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
		Cause:   e.Cause,
	}
}

// WithCause 附加底層原因（返回新的錯誤實例）
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: e.Context,
		Cause:   cause,
	}
}

// Is 實現 errors.Is 比較（按錯誤代碼）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Unwrap 實現 errors.Unwrap（返回底層原因）
func (e *DomainError) Unwrap() error {
	return e.Cause
}
