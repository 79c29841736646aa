package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// 回應輔助
// ===========================

// errorBody 錯誤回應載荷
//
// Code 是穩定的機器可讀代碼；客戶端依代碼分支，
// 不解析 Message 文字。
type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// writeJSON 寫出 JSON 回應
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[WARN] failed to encode response: %v", err)
	}
}

// writeError 把錯誤轉為 HTTP 回應
//
// DomainError 依代碼映射狀態碼並保留 context；
// 其他錯誤一律 500，不洩漏內部細節。
func writeError(w http.ResponseWriter, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, statusFor(domainErr.Code), errorBody{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Context: domainErr.Context,
		})
		return
	}

	log.Printf("[ERROR] unhandled error: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{
		Code:    "INTERNAL",
		Message: "internal server error",
	})
}

// statusFor 錯誤代碼 → HTTP 狀態碼
func statusFor(code shared.ErrorCode) int {
	switch code {
	case shared.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case shared.ErrCodeForbidden:
		return http.StatusForbidden
	}

	s := string(code)
	switch {
	case strings.HasSuffix(s, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(s, "_ALREADY_EXISTS"), s == "STATUS_TRANSITION":
		return http.StatusConflict
	case s == "KYC_REQUIRED", s == "PUBLISH_BLOCKED", s == "RPP_REJECTED",
		s == "DOCUMENT_VERIFIED_IMMUTABLE", s == "DOCUMENT_REJECTION_NOTE_REQUIRED":
		return http.StatusUnprocessableEntity
	case strings.Contains(s, "INVALID"), strings.HasSuffix(s, "_MISSING"),
		s == "INVARIANT_VIOLATION":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody 解析 JSON 請求體
func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Code:    "MALFORMED_BODY",
			Message: "request body is not valid JSON",
		})
		return false
	}
	return true
}
