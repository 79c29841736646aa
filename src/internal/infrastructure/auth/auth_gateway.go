package auth

import (
	"context"

	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// Request-scoped AuthGateway
// ===========================

// contextKey 避免與其他 package 的 context 鍵碰撞
type contextKey struct{}

var currentUserKey contextKey

// WithCurrentUser 把操作者身份放入 request context
//
// 由 HTTP middleware 在憑證驗證成功後調用。
func WithCurrentUser(ctx context.Context, user shared.CurrentUser) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// ContextAuthGateway 從 request context 取出操作者身份
//
// 實作 shared.AuthGateway：Use Case 不知道身份來自 JWT，
// 測試時直接 WithCurrentUser 注入即可。
type ContextAuthGateway struct{}

// NewContextAuthGateway 創建 AuthGateway 實例
func NewContextAuthGateway() *ContextAuthGateway {
	return &ContextAuthGateway{}
}

// Current 取得當前操作者
func (g *ContextAuthGateway) Current(ctx context.Context) (shared.CurrentUser, error) {
	user, ok := ctx.Value(currentUserKey).(shared.CurrentUser)
	if !ok || user.UserID == "" {
		return shared.CurrentUser{}, shared.ErrUnauthenticated
	}
	return user, nil
}
