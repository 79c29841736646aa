package shared

import "time"

// Clock 時鐘介面
//
// 所有產生業務時間戳的地方（publishedAt / soldAt / deletedAt）
// 都透過注入的 Clock 取得當前時間，保持領域層在測試下可確定。
type Clock interface {
	Now() time.Time
}

// SystemClock 系統時鐘（生產環境預設實作）
type SystemClock struct{}

// Now 返回系統當前時間
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock 固定時鐘（測試用）
type FixedClock struct {
	Time time.Time
}

// Now 返回固定時間
func (c FixedClock) Now() time.Time {
	return c.Time
}
