package listing

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// GORM Models
// ===========================

// PropertyGORM 房源資料表模型
//
// 設計原則：
// - 僅用於 Infrastructure Layer（不暴露給 Domain Layer）
// - 值對象攤平為離散欄位（金額 → amount + currency，
//   地址 → 各自的欄位，座標 → lat / lng），重建時無損還原
// - 軟刪除自行管理（*time.Time，非 gorm.DeletedAt）：
//   FindByID 必須能取回已刪除者，列表查詢才做範圍過濾
//
// 資料庫約束：
// - property_id: 主鍵（UUID）
// - org_id: 索引（多租戶 row-scoping 的過濾鍵）
// - status / internal_id: 索引（列表過濾）
type PropertyGORM struct {
	// 識別欄位
	PropertyID string `gorm:"column:property_id;type:varchar(36);primaryKey"`
	OrgID      string `gorm:"column:org_id;type:varchar(36);index;not null"`
	ListerID   string `gorm:"column:lister_id;type:varchar(36);index;not null"`

	// 生命週期
	Status      string     `gorm:"column:status;type:varchar(16);index;not null"`
	PublishedAt *time.Time `gorm:"column:published_at"`
	SoldAt      *time.Time `gorm:"column:sold_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at;index"`

	// 刊登內容
	OperationType string          `gorm:"column:operation_type;type:varchar(16);not null"`
	PropertyType  string          `gorm:"column:property_type;type:varchar(16);not null"`
	Title         string          `gorm:"column:title;type:varchar(255);not null"`
	Description   string          `gorm:"column:description;type:text"`
	PriceAmount   decimal.Decimal `gorm:"column:price_amount;type:decimal(18,2)"`
	PriceCurrency string          `gorm:"column:price_currency;type:varchar(3)"`

	// 物理特徵（nil = 未提供）
	Bedrooms         *int     `gorm:"column:bedrooms"`
	Bathrooms        *int     `gorm:"column:bathrooms"`
	ParkingSpots     *int     `gorm:"column:parking_spots"`
	ConstructionArea *float64 `gorm:"column:construction_area"`
	LandArea         *float64 `gorm:"column:land_area"`
	Levels           *int     `gorm:"column:levels"`
	YearBuilt        *int     `gorm:"column:year_built"`
	Floor            *int     `gorm:"column:floor"`

	// 地址（address_set 區分「未設定」與「已驗證的地址」）
	AddressSet     bool   `gorm:"column:address_set;not null;default:false"`
	Street         string `gorm:"column:street;type:varchar(255)"`
	ExtNumber      string `gorm:"column:ext_number;type:varchar(32)"`
	IntNumber      string `gorm:"column:int_number;type:varchar(32)"`
	Neighborhood   string `gorm:"column:neighborhood;type:varchar(128)"`
	PostalCode     string `gorm:"column:postal_code;type:varchar(16)"`
	City           string `gorm:"column:city;type:varchar(128);index"`
	State          string `gorm:"column:state;type:varchar(128);index"`
	Country        string `gorm:"column:country;type:varchar(64)"`
	DisplayAddress bool   `gorm:"column:display_address;not null;default:false"`

	// 地理座標（nil = 未設定）
	Lat *float64 `gorm:"column:lat"`
	Lng *float64 `gorm:"column:lng"`

	// 設施 / 標籤（JSON 序列化的字串陣列）
	Amenities      string `gorm:"column:amenities;type:text"`
	AmenitiesExtra string `gorm:"column:amenities_extra;type:varchar(512)"`
	Tags           string `gorm:"column:tags;type:text"`
	InternalID     string `gorm:"column:internal_id;type:varchar(64);index"`

	// 派生摘要
	RppStatus               string `gorm:"column:rpp_status;type:varchar(16);not null"`
	NormalizedAddress       string `gorm:"column:normalized_address;type:varchar(512)"`
	NormalizedAddressStatus string `gorm:"column:normalized_address_status;type:varchar(16)"`
	CompletenessScore       int    `gorm:"column:completeness_score;not null;default:0"`
	TrustScore              int    `gorm:"column:trust_score;not null;default:0"`

	// 審計欄位
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;index"`
}

// TableName 指定資料表名稱
func (PropertyGORM) TableName() string {
	return "properties"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 聚合
//
// 每個值對象都走 checked constructor 重建：
// 損壞的資料在這裡被擋下，不會污染領域層。
func (m *PropertyGORM) toDomain() (*listing.Property, error) {
	propertyID, err := listing.PropertyIDFromString(m.PropertyID)
	if err != nil {
		return nil, err
	}
	orgID, err := listing.OrgIDFromString(m.OrgID)
	if err != nil {
		return nil, err
	}
	listerID, err := listing.ListerIDFromString(m.ListerID)
	if err != nil {
		return nil, err
	}

	price, err := listing.NewMoney(m.PriceAmount, m.PriceCurrency)
	if err != nil {
		return nil, err
	}

	var address listing.Address
	if m.AddressSet {
		address, err = listing.NewAddress(listing.AddressParams{
			Street:         m.Street,
			ExtNumber:      m.ExtNumber,
			IntNumber:      m.IntNumber,
			Neighborhood:   m.Neighborhood,
			PostalCode:     m.PostalCode,
			City:           m.City,
			State:          m.State,
			Country:        m.Country,
			DisplayAddress: m.DisplayAddress,
		})
		if err != nil {
			return nil, err
		}
	}

	var geo *listing.GeoPoint
	if m.Lat != nil && m.Lng != nil {
		point, err := listing.NewGeoPoint(*m.Lat, *m.Lng)
		if err != nil {
			return nil, err
		}
		geo = &point
	}

	amenities, err := decodeStrings(m.Amenities)
	if err != nil {
		return nil, err
	}
	tags, err := decodeStrings(m.Tags)
	if err != nil {
		return nil, err
	}

	return listing.ReconstructProperty(listing.ReconstructPropertyParams{
		PropertyID:    propertyID,
		OrgID:         orgID,
		ListerID:      listerID,
		Status:        listing.PropertyStatus(m.Status),
		OperationType: listing.OperationType(m.OperationType),
		PropertyType:  listing.PropertyType(m.PropertyType),
		Title:         m.Title,
		Description:   m.Description,
		Price:         price,
		Features: listing.Features{
			Bedrooms:         m.Bedrooms,
			Bathrooms:        m.Bathrooms,
			ParkingSpots:     m.ParkingSpots,
			ConstructionArea: m.ConstructionArea,
			LandArea:         m.LandArea,
			Levels:           m.Levels,
			YearBuilt:        m.YearBuilt,
			Floor:            m.Floor,
		},
		Address:        address,
		Geo:            geo,
		Amenities:      amenities,
		AmenitiesExtra: m.AmenitiesExtra,
		Tags:           tags,
		InternalID:     m.InternalID,
		RppStatus:      listing.RppStatus(m.RppStatus),
		NormalizedAddress: listing.NormalizedAddress{
			Formatted: m.NormalizedAddress,
			Status:    listing.NormalizedAddressStatus(m.NormalizedAddressStatus),
		},
		CompletenessScore: m.CompletenessScore,
		TrustScore:        m.TrustScore,
		PublishedAt:       m.PublishedAt,
		SoldAt:            m.SoldAt,
		DeletedAt:         m.DeletedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	})
}

// toGORM 將 Domain 聚合轉換為 GORM 模型
func toGORM(prop *listing.Property) *PropertyGORM {
	f := prop.Features()
	model := &PropertyGORM{
		PropertyID:    prop.PropertyID().String(),
		OrgID:         prop.OrgID().String(),
		ListerID:      prop.ListerID().String(),
		Status:        string(prop.Status()),
		PublishedAt:   prop.PublishedAt(),
		SoldAt:        prop.SoldAt(),
		DeletedAt:     prop.DeletedAt(),
		OperationType: string(prop.OperationType()),
		PropertyType:  string(prop.PropertyType()),
		Title:         prop.Title(),
		Description:   prop.Description(),
		PriceAmount:   prop.Price().Amount(),
		PriceCurrency: prop.Price().Currency(),

		Bedrooms:         f.Bedrooms,
		Bathrooms:        f.Bathrooms,
		ParkingSpots:     f.ParkingSpots,
		ConstructionArea: f.ConstructionArea,
		LandArea:         f.LandArea,
		Levels:           f.Levels,
		YearBuilt:        f.YearBuilt,
		Floor:            f.Floor,

		Amenities:      encodeStrings(prop.Amenities()),
		AmenitiesExtra: prop.AmenitiesExtra(),
		Tags:           encodeStrings(prop.Tags()),
		InternalID:     prop.InternalID(),

		RppStatus:               string(prop.RppStatus()),
		NormalizedAddress:       prop.NormalizedAddress().Formatted,
		NormalizedAddressStatus: string(prop.NormalizedAddress().Status),
		CompletenessScore:       prop.CompletenessScore(),
		TrustScore:              prop.TrustScore(),

		CreatedAt: prop.CreatedAt(),
		UpdatedAt: prop.UpdatedAt(),
	}

	if addr := prop.Address(); !addr.IsZero() {
		model.AddressSet = true
		model.Street = addr.Street()
		model.ExtNumber = addr.ExtNumber()
		model.IntNumber = addr.IntNumber()
		model.Neighborhood = addr.Neighborhood()
		model.PostalCode = addr.PostalCode()
		model.City = addr.City()
		model.State = addr.State()
		model.Country = addr.Country()
		model.DisplayAddress = addr.DisplayAddress()
	}
	if geo := prop.Geo(); geo != nil {
		lat, lng := geo.Lat(), geo.Lng()
		model.Lat = &lat
		model.Lng = &lng
	}
	return model
}

// encodeStrings 字串陣列 → JSON（空陣列存空字串）
func encodeStrings(values []string) string {
	if len(values) == 0 {
		return ""
	}
	encoded, _ := json.Marshal(values)
	return string(encoded)
}

// decodeStrings JSON → 字串陣列（空字串還原為 nil）
func decodeStrings(encoded string) ([]string, error) {
	if encoded == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil, err
	}
	return values, nil
}
