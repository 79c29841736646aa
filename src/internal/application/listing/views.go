package listing

import (
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// 輸出 DTO
// ===========================

// PropertyView 房源摘要視圖（Output DTO）
//
// 列表與詳情共用的基礎投影。只包含原始類型，
// 避免把 Domain 對象暴露給介面層。
type PropertyView struct {
	PropertyID         string     `json:"property_id"`
	OrgID              string     `json:"org_id"`
	ListerID           string     `json:"lister_id"`
	Title              string     `json:"title"`
	Status             string     `json:"status"`
	OperationType      string     `json:"operation_type"`
	PropertyType       string     `json:"property_type"`
	PriceAmount        string     `json:"price_amount"`
	PriceCurrency      string     `json:"price_currency"`
	City               string     `json:"city,omitempty"`
	State              string     `json:"state,omitempty"`
	CompletenessScore  int        `json:"completeness_score"`
	CompletenessBucket string     `json:"completeness_bucket"`
	RppStatus          string     `json:"rpp_status"`
	InternalID         string     `json:"internal_id,omitempty"`
	PublishedAt        *time.Time `json:"published_at,omitempty"`
	SoldAt             *time.Time `json:"sold_at,omitempty"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// newPropertyView 由聚合構建摘要視圖
func newPropertyView(prop *listing.Property) PropertyView {
	view := PropertyView{
		PropertyID:         prop.PropertyID().String(),
		OrgID:              prop.OrgID().String(),
		ListerID:           prop.ListerID().String(),
		Title:              prop.Title(),
		Status:             string(prop.Status()),
		OperationType:      string(prop.OperationType()),
		PropertyType:       string(prop.PropertyType()),
		PriceAmount:        prop.Price().Amount().String(),
		PriceCurrency:      prop.Price().Currency(),
		CompletenessScore:  prop.CompletenessScore(),
		CompletenessBucket: string(listing.ClassifyCompleteness(prop.CompletenessScore())),
		RppStatus:          string(prop.RppStatus()),
		InternalID:         prop.InternalID(),
		PublishedAt:        prop.PublishedAt(),
		SoldAt:             prop.SoldAt(),
		DeletedAt:          prop.DeletedAt(),
		CreatedAt:          prop.CreatedAt(),
		UpdatedAt:          prop.UpdatedAt(),
	}
	if !prop.Address().IsZero() {
		view.City = prop.Address().City()
		view.State = prop.Address().State()
	}
	return view
}
