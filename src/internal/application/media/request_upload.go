package media

import (
	"context"
	"fmt"

	applisting "github.com/inmolista/listing_crm/src/internal/application/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// RequestMediaUpload Use Case
// ===========================

// RequestMediaUploadCommand 申請媒體上傳的命令
type RequestMediaUploadCommand struct {
	PropertyID  string
	FileName    string
	ContentType string
}

// RequestMediaUploadResult 申請媒體上傳的結果
//
// 客戶端以 UploadURL 直傳對象存儲，完成後帶著
// StorageKey 調用 AttachMedia 落檔。
type RequestMediaUploadResult struct {
	UploadURL  string
	StorageKey string
}

// RequestMediaUploadUseCase 申請媒體上傳 Use Case
//
// 上傳本體不經過服務：簽發一次性的預簽 PUT URL，
// 客戶端直傳對象存儲。簽發前驗證房源存在與歸屬，
// 陌生人拿不到別家房源的上傳憑證。
type RequestMediaUploadUseCase struct {
	propertyRepo listing.PropertyRepository
	storage      media.MediaStorage
	auth         shared.AuthGateway
}

// NewRequestMediaUploadUseCase 創建 Use Case 實例
func NewRequestMediaUploadUseCase(
	propertyRepo listing.PropertyRepository,
	storage media.MediaStorage,
	auth shared.AuthGateway,
) *RequestMediaUploadUseCase {
	return &RequestMediaUploadUseCase{
		propertyRepo: propertyRepo,
		storage:      storage,
		auth:         auth,
	}
}

// Execute 執行申請媒體上傳
func (uc *RequestMediaUploadUseCase) Execute(ctx context.Context, cmd RequestMediaUploadCommand) (*RequestMediaUploadResult, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	prop, err := uc.propertyRepo.FindByID(nil, propertyID)
	if err != nil {
		return nil, err
	}
	if err := applisting.AssertOwnedBy(prop, user); err != nil {
		return nil, err
	}

	presigned, err := uc.storage.PresignUpload(ctx, propertyID, cmd.FileName, cmd.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &RequestMediaUploadResult{
		UploadURL:  presigned.URL,
		StorageKey: presigned.StorageKey,
	}, nil
}
