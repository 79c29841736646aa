package listing

import "github.com/inmolista/listing_crm/src/internal/domain/shared"

// ===========================
// Listing Domain 錯誤定義
// ===========================

// Listing Domain 錯誤代碼常量
//
// 發佈門檻的三個拒絕原因（KYC / 分數 / RPP）各自獨立可辨識，
// UI 依代碼渲染不同的補救提示，絕不依賴錯誤訊息文字分支。
const (
	ErrCodeInvalidValue       shared.ErrorCode = "INVALID_VALUE"
	ErrCodeInvariantViolation shared.ErrorCode = "INVARIANT_VIOLATION"
	ErrCodeStatusTransition   shared.ErrorCode = "STATUS_TRANSITION"
	ErrCodeKycRequired        shared.ErrorCode = "KYC_REQUIRED"
	ErrCodePublishBlocked     shared.ErrorCode = "PUBLISH_BLOCKED"
	ErrCodeRppRejected        shared.ErrorCode = "RPP_REJECTED"

	ErrCodeInvalidPropertyID shared.ErrorCode = "PROPERTY_ID_INVALID"
	ErrCodeInvalidOrgID      shared.ErrorCode = "ORG_ID_INVALID"
	ErrCodeInvalidListerID   shared.ErrorCode = "LISTER_ID_INVALID"
)

var (
	// ErrInvalidValue 欄位值無效（格式錯誤、負數、超出範圍）
	ErrInvalidValue = &shared.DomainError{
		Code:    ErrCodeInvalidValue,
		Message: "欄位值無效",
	}

	// ErrInvariantViolation 聚合狀態矛盾（結構性不一致）
	//
	// 觸發條件：
	// - 標題為空
	// - status=published 但 publishedAt 未設定
	// - status=sold 但 soldAt 未設定
	// - operationType 不在宣告的操作類型中
	ErrInvariantViolation = &shared.DomainError{
		Code:    ErrCodeInvariantViolation,
		Message: "房源狀態違反不變條件",
	}

	// ErrStatusTransition 非法狀態轉換（context 攜帶 from / to）
	ErrStatusTransition = &shared.DomainError{
		Code:    ErrCodeStatusTransition,
		Message: "不允許的房源狀態轉換",
	}

	// ErrKycRequired 發佈需要 KYC 驗證通過
	ErrKycRequired = &shared.DomainError{
		Code:    ErrCodeKycRequired,
		Message: "刊登者尚未通過 KYC 驗證，無法發佈",
	}

	// ErrPublishBlocked 完整度分數低於發佈門檻（context 攜帶 min / actual）
	ErrPublishBlocked = &shared.DomainError{
		Code:    ErrCodePublishBlocked,
		Message: "房源完整度分數低於發佈門檻",
	}

	// ErrRppRejected RPP 文件被駁回，發佈被阻擋
	ErrRppRejected = &shared.DomainError{
		Code:    ErrCodeRppRejected,
		Message: "RPP 文件被駁回，無法發佈",
	}

	// ErrInvalidPropertyID 房源 ID 格式無效
	ErrInvalidPropertyID = &shared.DomainError{
		Code:    ErrCodeInvalidPropertyID,
		Message: "房源 ID 格式無效",
	}

	// ErrInvalidOrgID 組織 ID 格式無效
	ErrInvalidOrgID = &shared.DomainError{
		Code:    ErrCodeInvalidOrgID,
		Message: "組織 ID 格式無效",
	}

	// ErrInvalidListerID 刊登者 ID 格式無效
	ErrInvalidListerID = &shared.DomainError{
		Code:    ErrCodeInvalidListerID,
		Message: "刊登者 ID 格式無效",
	}
)
