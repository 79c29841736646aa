package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/infrastructure/config"
)

// ===========================
// S3 對象存儲實作
// ===========================

// presignTTL 預簽 URL 的有效時間
const presignTTL = 15 * time.Minute

// S3Storage S3 對象存儲
//
// 同時實作 media.MediaStorage 與 document.DocumentStorage：
// 媒體與文件共用同一個 bucket，以鍵前綴區分。
// 上傳走預簽 PUT URL 的客戶端直傳，服務端不經手位元組。
type S3Storage struct {
	bucket        string
	client        *s3.Client
	presignClient *s3.PresignClient
}

// NewS3Storage 創建 S3 存儲實例
func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AwsRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AwsAccessKeyID,
			cfg.AwsSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Storage{
		bucket:        cfg.AwsS3Bucket,
		client:        client,
		presignClient: s3.NewPresignClient(client),
	}, nil
}

// PresignUpload 簽發一次性的上傳 URL
//
// 對象鍵格式：properties/<propertyID>/<uuid>_<fileName>
// UUID 前綴保證同名文件不互相覆蓋。
func (s *S3Storage) PresignUpload(ctx context.Context, propertyID listing.PropertyID, fileName, contentType string) (*media.PresignedUpload, error) {
	objectKey := fmt.Sprintf("properties/%s/%s_%s", propertyID.String(), uuid.NewString(), fileName)

	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to presign PUT for key %s: %w", objectKey, err)
	}

	return &media.PresignedUpload{
		URL:        req.URL,
		StorageKey: objectKey,
	}, nil
}

// Remove 移除對象
func (s *S3Storage) Remove(ctx context.Context, storageKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", storageKey, err)
	}
	return nil
}
