package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/media"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// GetProperty Use Case
// ===========================

// GetPropertyQuery 查詢房源詳情
type GetPropertyQuery struct {
	PropertyID string
}

// AddressView 地址視圖
//
// DisplayAddress 未開啟時街道層級欄位留空（隱私預設），
// 城市 / 州 / 國家永遠可見。
type AddressView struct {
	Street       string `json:"street,omitempty"`
	ExtNumber    string `json:"ext_number,omitempty"`
	IntNumber    string `json:"int_number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

// GeoView 地理座標視圖
type GeoView struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MediaItemView 附掛媒體視圖
type MediaItemView struct {
	MediaID    string `json:"media_id"`
	Type       string `json:"type"`
	Position   int    `json:"position"`
	StorageKey string `json:"storage_key,omitempty"`
	URL        string `json:"url,omitempty"`
}

// DocumentItemView 附掛文件視圖
type DocumentItemView struct {
	DocumentID string    `json:"document_id"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	FileName   string    `json:"file_name,omitempty"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PropertyDetail 房源詳情（Output DTO）
type PropertyDetail struct {
	PropertyView

	Description             string             `json:"description,omitempty"`
	Features                FeaturesInput      `json:"features"`
	Address                 *AddressView       `json:"address,omitempty"`
	Geo                     *GeoView           `json:"geo,omitempty"`
	Amenities               []string           `json:"amenities,omitempty"`
	AmenitiesExtra          string             `json:"amenities_extra,omitempty"`
	Tags                    []string           `json:"tags,omitempty"`
	NormalizedAddress       string             `json:"normalized_address,omitempty"`
	NormalizedAddressStatus string             `json:"normalized_address_status,omitempty"`
	TrustScore              int                `json:"trust_score"`
	Media                   []MediaItemView    `json:"media"`
	Documents               []DocumentItemView `json:"documents"`
}

// GetPropertyUseCase 查詢房源詳情 Use Case
//
// 唯讀：倉儲讀操作走 auto-commit（nil 事務上下文），
// 詳情聚合房源本身與附掛的媒體、文件。
type GetPropertyUseCase struct {
	propertyRepo listing.PropertyRepository
	mediaRepo    media.MediaRepository
	docRepo      document.DocumentRepository
	auth         shared.AuthGateway
}

// NewGetPropertyUseCase 創建 Use Case 實例
func NewGetPropertyUseCase(
	propertyRepo listing.PropertyRepository,
	mediaRepo media.MediaRepository,
	docRepo document.DocumentRepository,
	auth shared.AuthGateway,
) *GetPropertyUseCase {
	return &GetPropertyUseCase{
		propertyRepo: propertyRepo,
		mediaRepo:    mediaRepo,
		docRepo:      docRepo,
		auth:         auth,
	}
}

// Execute 執行查詢房源詳情
func (uc *GetPropertyUseCase) Execute(ctx context.Context, query GetPropertyQuery) (*PropertyDetail, error) {
	user, err := uc.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	propertyID, err := listing.PropertyIDFromString(query.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property ID: %w", err)
	}

	prop, err := uc.propertyRepo.FindByID(nil, propertyID)
	if err != nil {
		return nil, err
	}
	if err := AssertOwnedBy(prop, user); err != nil {
		return nil, err
	}

	assets, err := uc.mediaRepo.ListByProperty(nil, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	docs, err := uc.docRepo.ListByProperty(nil, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return newPropertyDetail(prop, assets, docs), nil
}

// newPropertyDetail 組裝詳情視圖
func newPropertyDetail(prop *listing.Property, assets []*media.MediaAsset, docs []*document.Document) *PropertyDetail {
	detail := &PropertyDetail{
		PropertyView:   newPropertyView(prop),
		Description:    prop.Description(),
		Amenities:      prop.Amenities(),
		AmenitiesExtra: prop.AmenitiesExtra(),
		Tags:           prop.Tags(),
		TrustScore:     prop.TrustScore(),
		Media:          make([]MediaItemView, 0, len(assets)),
		Documents:      make([]DocumentItemView, 0, len(docs)),
	}

	f := prop.Features()
	detail.Features = FeaturesInput{
		Bedrooms:         f.Bedrooms,
		Bathrooms:        f.Bathrooms,
		ParkingSpots:     f.ParkingSpots,
		ConstructionArea: f.ConstructionArea,
		LandArea:         f.LandArea,
		Levels:           f.Levels,
		YearBuilt:        f.YearBuilt,
		Floor:            f.Floor,
	}

	if addr := prop.Address(); !addr.IsZero() {
		view := &AddressView{
			City:    addr.City(),
			State:   addr.State(),
			Country: addr.Country(),
		}
		if addr.DisplayAddress() {
			view.Street = addr.Street()
			view.ExtNumber = addr.ExtNumber()
			view.IntNumber = addr.IntNumber()
			view.Neighborhood = addr.Neighborhood()
			view.PostalCode = addr.PostalCode()
		}
		detail.Address = view
	}
	if geo := prop.Geo(); geo != nil {
		detail.Geo = &GeoView{Lat: geo.Lat(), Lng: geo.Lng()}
	}
	if na := prop.NormalizedAddress(); !na.IsZero() {
		detail.NormalizedAddress = na.Formatted
		detail.NormalizedAddressStatus = string(na.Status)
	}

	for _, asset := range assets {
		detail.Media = append(detail.Media, MediaItemView{
			MediaID:    asset.MediaID().String(),
			Type:       string(asset.Type()),
			Position:   asset.Position(),
			StorageKey: asset.StorageKey(),
			URL:        asset.URL(),
		})
	}
	for _, doc := range docs {
		detail.Documents = append(detail.Documents, DocumentItemView{
			DocumentID: doc.DocumentID().String(),
			Type:       string(doc.Type()),
			Status:     string(doc.Status()),
			FileName:   doc.FileName(),
			Note:       doc.Note(),
			CreatedAt:  doc.CreatedAt(),
		})
	}
	return detail
}
