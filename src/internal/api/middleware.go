package api

import (
	"net/http"
	"strings"

	"github.com/inmolista/listing_crm/src/internal/domain/shared"
	"github.com/inmolista/listing_crm/src/internal/infrastructure/auth"
)

// ===========================
// 認證 Middleware
// ===========================

// AuthMiddleware 驗證 Bearer 憑證並把操作者放入 request context
//
// 後續的 Use Case 透過 ContextAuthGateway 取回身份；
// handler 本身不碰 JWT。
func AuthMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, shared.ErrUnauthenticated)
				return
			}

			user, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithCurrentUser(r.Context(), user)))
		})
	}
}
