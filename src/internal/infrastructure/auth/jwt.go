package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// JWT 憑證處理
// ===========================

// Claims JWT 載荷
//
// 三個自訂欄位對應 shared.CurrentUser：
// 刊登者 ID（subject）、組織 ID、KYC 狀態。
type Claims struct {
	OrgID     string `json:"org_id"`
	KycStatus string `json:"kyc_status"`
	jwt.RegisteredClaims
}

// TokenManager JWT 簽發與驗證
type TokenManager struct {
	secret []byte
}

// NewTokenManager 創建 TokenManager
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue 簽發憑證（開發工具與測試用）
func (m *TokenManager) Issue(user shared.CurrentUser, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		OrgID:     user.OrgID,
		KycStatus: user.KycStatus,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse 驗證憑證並還原操作者身份
//
// 簽名無效、過期、演算法不符都返回 ErrUnauthenticated。
func (m *TokenManager) Parse(tokenString string) (shared.CurrentUser, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return shared.CurrentUser{}, shared.ErrUnauthenticated.WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return shared.CurrentUser{}, shared.ErrUnauthenticated
	}

	return shared.CurrentUser{
		UserID:    claims.Subject,
		OrgID:     claims.OrgID,
		KycStatus: claims.KycStatus,
	}, nil
}
