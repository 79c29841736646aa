package listing_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// Money 測試
// ===========================

func TestNewMoney_ValidAmount_Success(t *testing.T) {
	// Act
	m, err := listing.NewMoney(decimal.NewFromInt(2500000), "mxn")

	// Assert
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(2500000)))
	assert.Equal(t, "MXN", m.Currency(), "幣別正規化為大寫")
	assert.True(t, m.IsPositive())
}

func TestNewMoney_NegativeAmount_ReturnsError(t *testing.T) {
	// Act
	_, err := listing.NewMoney(decimal.NewFromInt(-1), "MXN")

	// Assert
	assert.ErrorIs(t, err, listing.ErrInvalidValue)
}

func TestNewMoney_ZeroAmount_AllowedButNotPositive(t *testing.T) {
	// 草稿允許零價格，完整度計分只認 > 0
	m, err := listing.NewMoney(decimal.Zero, "MXN")

	require.NoError(t, err)
	assert.False(t, m.IsPositive())
}

func TestNewMoney_EmptyCurrency_DefaultsToHomeCurrency(t *testing.T) {
	// Act
	m, err := listing.NewMoney(decimal.NewFromInt(100), "  ")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, listing.HomeCurrency, m.Currency())
}

func TestNewMoneyFromFloat_NonFinite_ReturnsError(t *testing.T) {
	_, errNaN := listing.NewMoneyFromFloat(math.NaN(), "MXN")
	_, errInf := listing.NewMoneyFromFloat(math.Inf(1), "MXN")

	assert.ErrorIs(t, errNaN, listing.ErrInvalidValue)
	assert.ErrorIs(t, errInf, listing.ErrInvalidValue)
}

func TestMoney_Equals_StructuralEquality(t *testing.T) {
	a, _ := listing.NewMoney(decimal.NewFromInt(100), "MXN")
	b, _ := listing.NewMoney(decimal.NewFromInt(100), "MXN")
	c, _ := listing.NewMoney(decimal.NewFromInt(100), "USD")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c), "相同金額不同幣別不相等")
}

// ===========================
// Address 測試
// ===========================

func TestNewAddress_RequiredFields_Success(t *testing.T) {
	// Act
	addr, err := listing.NewAddress(listing.AddressParams{
		Street:  " Av. Insurgentes Sur ",
		City:    "Ciudad de México",
		State:   "CDMX",
		Country: "MX",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Av. Insurgentes Sur", addr.Street(), "選填欄位 trim 後保存")
	assert.False(t, addr.IsZero())
	assert.False(t, addr.DisplayAddress(), "隱私優先：未明確開啟前不公開完整地址")
}

func TestNewAddress_MissingRequiredField_ReturnsError(t *testing.T) {
	tests := []struct {
		name   string
		params listing.AddressParams
	}{
		{"缺城市", listing.AddressParams{State: "CDMX", Country: "MX"}},
		{"缺州", listing.AddressParams{City: "CDMX", Country: "MX"}},
		{"缺國家", listing.AddressParams{City: "CDMX", State: "CDMX"}},
		{"全空白", listing.AddressParams{City: " ", State: " ", Country: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := listing.NewAddress(tt.params)
			assert.ErrorIs(t, err, listing.ErrInvalidValue)
		})
	}
}

func TestAddress_ZeroValue_IsZero(t *testing.T) {
	var addr listing.Address
	assert.True(t, addr.IsZero())
}

// ===========================
// GeoPoint 測試
// ===========================

func TestNewGeoPoint_ValidCoordinates_Success(t *testing.T) {
	// Act
	g, err := listing.NewGeoPoint(19.4326, -99.1332)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 19.4326, g.Lat())
	assert.Equal(t, -99.1332, g.Lng())
}

func TestNewGeoPoint_OutOfRange_ReturnsError(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
	}{
		{"緯度過大", 90.01, 0},
		{"緯度過小", -90.01, 0},
		{"經度過大", 0, 180.01},
		{"經度過小", 0, -180.01},
		{"NaN 緯度", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := listing.NewGeoPoint(tt.lat, tt.lng)
			assert.ErrorIs(t, err, listing.ErrInvalidValue)
		})
	}
}

func TestNewGeoPoint_BoundaryValues_Allowed(t *testing.T) {
	for _, c := range [][2]float64{{90, 180}, {-90, -180}, {0, 0}} {
		_, err := listing.NewGeoPoint(c[0], c[1])
		assert.NoError(t, err, "lat=%v lng=%v", c[0], c[1])
	}
}
