package media

import "github.com/inmolista/listing_crm/src/internal/domain/shared"

// ===========================
// Media Domain 錯誤定義
// ===========================

const (
	ErrCodeInvalidMediaID   shared.ErrorCode = "MEDIA_ID_INVALID"
	ErrCodeInvalidMediaType shared.ErrorCode = "MEDIA_TYPE_INVALID"
	ErrCodeInvalidPosition  shared.ErrorCode = "MEDIA_POSITION_INVALID"
	ErrCodeMissingLocator   shared.ErrorCode = "MEDIA_LOCATOR_MISSING"
	ErrCodeMediaNotFound    shared.ErrorCode = "MEDIA_NOT_FOUND"
)

var (
	// ErrInvalidMediaID 媒體 ID 格式無效
	ErrInvalidMediaID = &shared.DomainError{
		Code:    ErrCodeInvalidMediaID,
		Message: "媒體 ID 格式無效",
	}

	// ErrInvalidMediaType 媒體類型不在宣告集合
	ErrInvalidMediaType = &shared.DomainError{
		Code:    ErrCodeInvalidMediaType,
		Message: "不支援的媒體類型",
	}

	// ErrInvalidPosition 位置必須 >= 0
	ErrInvalidPosition = &shared.DomainError{
		Code:    ErrCodeInvalidPosition,
		Message: "媒體位置必須為非負整數",
	}

	// ErrMissingLocator 媒體缺少取回途徑
	ErrMissingLocator = &shared.DomainError{
		Code:    ErrCodeMissingLocator,
		Message: "媒體必須有 storage key 或 URL 至少其一",
	}

	// ErrMediaNotFound 媒體不存在
	ErrMediaNotFound = &shared.DomainError{
		Code:    ErrCodeMediaNotFound,
		Message: "媒體不存在",
	}
)
