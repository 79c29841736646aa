package listing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// ComputeReadiness Use Case
// ===========================

// ComputeReadinessQuery 就緒評估查詢
type ComputeReadinessQuery struct {
	PropertyID string
}

// ComputeReadinessResult 就緒評估結果（Output DTO）
type ComputeReadinessResult struct {
	PropertyID string   `json:"property_id"`
	Score      int      `json:"score"`
	Bucket     string   `json:"bucket"`
	CanPublish bool     `json:"can_publish"`
	Issues     []string `json:"issues"`
	Reasons    []string `json:"reasons"`
}

// ComputeReadinessUseCase 就緒評估 Use Case
//
// 回答「這個房源離可發佈還差什麼」。唯讀、無副作用：
// 不回寫完整度快取，分數以當下信號即時計算。
//
// 評估需要四份獨立資料（操作者 KYC、房源、媒體數量、
// 文件列表），彼此無依賴，以 errgroup 並行取回。
type ComputeReadinessUseCase struct {
	propertyRepo listing.PropertyRepository
	mediaRepo    media.MediaRepository
	docRepo      document.DocumentRepository
	readiness    *listing.ReadinessService
	auth         shared.AuthGateway
}

// NewComputeReadinessUseCase 創建 Use Case 實例
func NewComputeReadinessUseCase(
	propertyRepo listing.PropertyRepository,
	mediaRepo media.MediaRepository,
	docRepo document.DocumentRepository,
	readiness *listing.ReadinessService,
	auth shared.AuthGateway,
) *ComputeReadinessUseCase {
	return &ComputeReadinessUseCase{
		propertyRepo: propertyRepo,
		mediaRepo:    mediaRepo,
		docRepo:      docRepo,
		readiness:    readiness,
		auth:         auth,
	}
}

// Execute 執行就緒評估
func (uc *ComputeReadinessUseCase) Execute(ctx context.Context, query ComputeReadinessQuery) (*ComputeReadinessResult, error) {
	propertyID, err := listing.PropertyIDFromString(query.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	var (
		user       shared.CurrentUser
		prop       *listing.Property
		mediaCount int
		docs       []*document.Document
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = uc.auth.Current(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		prop, err = uc.propertyRepo.FindByID(nil, propertyID)
		return err
	})
	g.Go(func() error {
		var err error
		mediaCount, err = uc.mediaRepo.CountByProperty(nil, propertyID)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = uc.docRepo.ListByProperty(nil, propertyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := AssertOwnedBy(prop, user); err != nil {
		return nil, err
	}

	hasRppDoc := false
	for _, doc := range docs {
		if doc.IsRpp() {
			hasRppDoc = true
			break
		}
	}

	eval := uc.readiness.Evaluate(prop, mediaCount, hasRppDoc, user.KycVerified())

	issues := make([]string, 0, len(eval.Issues))
	for _, issue := range eval.Issues {
		issues = append(issues, string(issue))
	}

	return &ComputeReadinessResult{
		PropertyID: prop.PropertyID().String(),
		Score:      eval.Score,
		Bucket:     string(eval.Bucket),
		CanPublish: eval.CanPublish,
		Issues:     issues,
		Reasons:    eval.Reasons,
	}, nil
}
