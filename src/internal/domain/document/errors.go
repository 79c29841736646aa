package document

import "github.com/inmolista/listing_crm/src/internal/domain/shared"

// ===========================
// Document Domain 錯誤定義
// ===========================

const (
	ErrCodeInvalidDocumentID         shared.ErrorCode = "DOCUMENT_ID_INVALID"
	ErrCodeInvalidDocumentType       shared.ErrorCode = "DOCUMENT_TYPE_INVALID"
	ErrCodeInvalidVerificationStatus shared.ErrorCode = "DOCUMENT_STATUS_INVALID"
	ErrCodeMissingLocator            shared.ErrorCode = "DOCUMENT_LOCATOR_MISSING"
	ErrCodeRejectionNoteRequired     shared.ErrorCode = "DOCUMENT_REJECTION_NOTE_REQUIRED"
	ErrCodeDocumentNotFound          shared.ErrorCode = "DOCUMENT_NOT_FOUND"
	ErrCodeVerifiedDocumentImmutable shared.ErrorCode = "DOCUMENT_VERIFIED_IMMUTABLE"
)

var (
	// ErrInvalidDocumentID 文件 ID 格式無效
	ErrInvalidDocumentID = &shared.DomainError{
		Code:    ErrCodeInvalidDocumentID,
		Message: "文件 ID 格式無效",
	}

	// ErrInvalidDocumentType 文件類型不在標準集合（別名表也無法正規化）
	ErrInvalidDocumentType = &shared.DomainError{
		Code:    ErrCodeInvalidDocumentType,
		Message: "不支援的文件類型",
	}

	// ErrInvalidVerificationStatus 驗證狀態值無效
	ErrInvalidVerificationStatus = &shared.DomainError{
		Code:    ErrCodeInvalidVerificationStatus,
		Message: "文件驗證狀態無效",
	}

	// ErrMissingLocator 文件缺少取回途徑
	//
	// 觸發條件：storage key 與 URL 皆為空
	ErrMissingLocator = &shared.DomainError{
		Code:    ErrCodeMissingLocator,
		Message: "文件必須有 storage key 或 URL 至少其一",
	}

	// ErrRejectionNoteRequired 駁回文件必須附帶原因
	ErrRejectionNoteRequired = &shared.DomainError{
		Code:    ErrCodeRejectionNoteRequired,
		Message: "駁回文件必須附帶原因",
	}

	// ErrDocumentNotFound 文件不存在
	ErrDocumentNotFound = &shared.DomainError{
		Code:    ErrCodeDocumentNotFound,
		Message: "文件不存在",
	}

	// ErrVerifiedDocumentImmutable 已驗證的文件不得靜默刪除
	ErrVerifiedDocumentImmutable = &shared.DomainError{
		Code:    ErrCodeVerifiedDocumentImmutable,
		Message: "已驗證的文件不得刪除（需管理員介入）",
	}
)
