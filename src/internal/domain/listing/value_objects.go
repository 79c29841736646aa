package listing

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ===========================
// Money 金額值對象
// ===========================

// HomeCurrency 預設幣別（未指定幣別時採用）
const HomeCurrency = "MXN"

// Money 金額值對象
//
// 設計原則：值對象不可變、自我驗證
//
// 建構約束：
// - 金額必須 >= 0（草稿允許零價格，完整度計分只認 > 0）
// - 幣別為空時採用 HomeCurrency
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney 建構函數（checked 版本）
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrInvalidValue.WithContext(
			"field", "price",
			"reason", "amount cannot be negative",
			"amount", amount.String(),
		)
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = HomeCurrency
	}

	return Money{amount: amount, currency: currency}, nil
}

// NewMoneyFromFloat 從浮點數建構金額
//
// 建構約束：拒絕 NaN / Inf（非有限值）與負數
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrInvalidValue.WithContext(
			"field", "price",
			"reason", "amount must be finite",
		)
	}
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Amount 獲取金額
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency 獲取幣別
func (m Money) Currency() string {
	return m.currency
}

// IsPositive 判斷金額是否大於零
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero 判斷是否為零值（未設定價格）
func (m Money) IsZero() bool {
	return m.currency == "" && m.amount.IsZero()
}

// Equals 結構性相等（金額 + 幣別）
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// ===========================
// Address 地址值對象
// ===========================

// AddressParams Address 建構參數
//
// City / State / Country 為必填，其餘選填。
type AddressParams struct {
	Street       string
	ExtNumber    string
	IntNumber    string
	Neighborhood string
	PostalCode   string
	City         string
	State        string
	Country      string

	// DisplayAddress 是否公開完整街道地址
	// 預設 false：隱私優先，未明確開啟前完整地址不對外顯示
	DisplayAddress bool
}

// Address 地址值對象
//
// 建構約束：
// - City / State / Country 非空（trim 後）
// - 其餘欄位 trim 後為空字串 ⇒ 視為未提供
type Address struct {
	street         string
	extNumber      string
	intNumber      string
	neighborhood   string
	postalCode     string
	city           string
	state          string
	country        string
	displayAddress bool

	// set 區分零值 Address（未設定地址）與已驗證的地址
	set bool
}

// NewAddress 建構函數
func NewAddress(p AddressParams) (Address, error) {
	city := strings.TrimSpace(p.City)
	state := strings.TrimSpace(p.State)
	country := strings.TrimSpace(p.Country)

	if city == "" || state == "" || country == "" {
		return Address{}, ErrInvalidValue.WithContext(
			"field", "address",
			"reason", "city, state and country are required",
		)
	}

	return Address{
		street:         strings.TrimSpace(p.Street),
		extNumber:      strings.TrimSpace(p.ExtNumber),
		intNumber:      strings.TrimSpace(p.IntNumber),
		neighborhood:   strings.TrimSpace(p.Neighborhood),
		postalCode:     strings.TrimSpace(p.PostalCode),
		city:           city,
		state:          state,
		country:        country,
		displayAddress: p.DisplayAddress,
		set:            true,
	}, nil
}

// Street 街道（可能為空）
func (a Address) Street() string { return a.street }

// ExtNumber 門牌外部號碼（可能為空）
func (a Address) ExtNumber() string { return a.extNumber }

// IntNumber 門牌內部號碼（可能為空）
func (a Address) IntNumber() string { return a.intNumber }

// Neighborhood 街區（可能為空）
func (a Address) Neighborhood() string { return a.neighborhood }

// PostalCode 郵遞區號（可能為空）
func (a Address) PostalCode() string { return a.postalCode }

// City 城市
func (a Address) City() string { return a.city }

// State 州 / 省
func (a Address) State() string { return a.state }

// Country 國家
func (a Address) Country() string { return a.country }

// DisplayAddress 是否公開完整街道地址
func (a Address) DisplayAddress() bool { return a.displayAddress }

// IsZero 判斷是否為未設定的零值地址
func (a Address) IsZero() bool { return !a.set }

// ===========================
// GeoPoint 地理座標值對象
// ===========================

// GeoPoint 地理座標值對象
//
// 建構約束：lat ∈ [-90, 90]，lng ∈ [-180, 180]
type GeoPoint struct {
	lat float64
	lng float64
}

// NewGeoPoint 建構函數
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return GeoPoint{}, ErrInvalidValue.WithContext(
			"field", "location",
			"reason", "latitude must be in [-90,90], longitude in [-180,180]",
			"lat", lat,
			"lng", lng,
		)
	}
	return GeoPoint{lat: lat, lng: lng}, nil
}

// Lat 緯度
func (g GeoPoint) Lat() float64 { return g.lat }

// Lng 經度
func (g GeoPoint) Lng() float64 { return g.lng }

// Equals 比較兩個座標是否相等
func (g GeoPoint) Equals(other GeoPoint) bool {
	return g.lat == other.lat && g.lng == other.lng
}
