package shared

import "context"

// ===========================
// 認證端口（Auth Port）
// ===========================

// KYC 驗證狀態常量
//
// 領域層只關心「是否 verified」，其餘狀態一律視為未通過。
const (
	KycStatusVerified = "verified"
	KycStatusPending  = "pending"
	KycStatusRejected = "rejected"
)

// CurrentUser 當前操作者的身份快照
//
// 領域層從認證結果只消費三個字段：
// - UserID: 刊登者用戶 ID
// - OrgID: 所屬組織 ID
// - KycStatus: KYC 驗證狀態（影響發佈資格）
type CurrentUser struct {
	UserID    string
	OrgID     string
	KycStatus string
}

// KycVerified 判斷 KYC 是否已通過驗證
func (u CurrentUser) KycVerified() bool {
	return u.KycStatus == KycStatusVerified
}

// 認證相關錯誤
const (
	ErrCodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
)

// ErrUnauthenticated 未登入或憑證無效
var ErrUnauthenticated = &DomainError{
	Code:    ErrCodeUnauthenticated,
	Message: "未登入或憑證無效",
}

// ErrForbidden 無權操作此資源（跨組織訪問）
var ErrForbidden = &DomainError{
	Code:    ErrCodeForbidden,
	Message: "無權操作此資源",
}

// AuthGateway 認證閘道介面
//
// 由 Infrastructure 層實作（JWT middleware 解析後放入 request context）。
// Use Case 只依賴此介面取得當前操作者。
type AuthGateway interface {
	Current(ctx context.Context) (CurrentUser, error)
}
