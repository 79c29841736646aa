package listing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// 共用輸入 DTO 與轉換
// ===========================

// AddressInput 地址輸入（Input DTO）
//
// 使用原始類型，由 Use Case 轉換為 Address 值對象。
type AddressInput struct {
	Street         string
	ExtNumber      string
	IntNumber      string
	Neighborhood   string
	PostalCode     string
	City           string
	State          string
	Country        string
	DisplayAddress bool
}

// GeoInput 地理座標輸入
type GeoInput struct {
	Lat float64
	Lng float64
}

// FeaturesInput 物理特徵輸入
//
// 指標為 nil 表示未提供該欄位。
type FeaturesInput struct {
	Bedrooms         *int
	Bathrooms        *int
	ParkingSpots     *int
	ConstructionArea *float64
	LandArea         *float64
	Levels           *int
	YearBuilt        *int
	Floor            *int
}

// toAddress 轉換為 Address 值對象（驗證在值對象建構函數中）
func toAddress(in AddressInput) (listing.Address, error) {
	return listing.NewAddress(listing.AddressParams{
		Street:         in.Street,
		ExtNumber:      in.ExtNumber,
		IntNumber:      in.IntNumber,
		Neighborhood:   in.Neighborhood,
		PostalCode:     in.PostalCode,
		City:           in.City,
		State:          in.State,
		Country:        in.Country,
		DisplayAddress: in.DisplayAddress,
	})
}

// toFeatures 轉換為 Features（驗證由 SetFeatures 執行）
func toFeatures(in FeaturesInput) listing.Features {
	return listing.Features{
		Bedrooms:         in.Bedrooms,
		Bathrooms:        in.Bathrooms,
		ParkingSpots:     in.ParkingSpots,
		ConstructionArea: in.ConstructionArea,
		LandArea:         in.LandArea,
		Levels:           in.Levels,
		YearBuilt:        in.YearBuilt,
		Floor:            in.Floor,
	}
}

// parseMoney 解析金額輸入
//
// 空字串視為未定價（零金額），幣別交由 Money 正規化。
func parseMoney(amount, currency string) (listing.Money, error) {
	if amount == "" {
		return listing.NewMoney(decimal.Zero, currency)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return listing.Money{}, fmt.Errorf("failed to parse price amount: %w",
			listing.ErrInvalidValue.WithContext("field", "price", "value", amount).WithCause(err))
	}
	return listing.NewMoney(d, currency)
}
