package listing

// ===========================
// 枚舉與狀態機
// ===========================

// PropertyStatus 房源生命週期狀態
type PropertyStatus string

const (
	StatusDraft     PropertyStatus = "draft"
	StatusPublished PropertyStatus = "published"
	StatusSold      PropertyStatus = "sold"
)

// Valid 判斷是否為宣告的狀態值
func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusSold:
		return true
	}
	return false
}

// OperationType 交易操作類型（目前僅支援出售）
type OperationType string

const (
	OperationSale OperationType = "sale"
)

// Valid 判斷是否為宣告的操作類型
func (o OperationType) Valid() bool {
	return o == OperationSale
}

// PropertyType 房源類型
type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeLand       PropertyType = "land"
	TypeOffice     PropertyType = "office"
	TypeCommercial PropertyType = "commercial"
	TypeIndustrial PropertyType = "industrial"
	TypeOther      PropertyType = "other"
)

// Valid 判斷是否為宣告的房源類型
func (t PropertyType) Valid() bool {
	switch t {
	case TypeHouse, TypeApartment, TypeLand, TypeOffice, TypeCommercial, TypeIndustrial, TypeOther:
		return true
	}
	return false
}

// RppStatus 不動產公共登記（RPP）驗證狀態
//
// 房源層級的 RPP 狀態是其 RPP 類型文件的「派生摘要」，
// 由 document.RppStatusFromDocs 依優先序（rejected > pending > verified）解析。
type RppStatus string

const (
	RppPending  RppStatus = "pending"
	RppVerified RppStatus = "verified"
	RppRejected RppStatus = "rejected"
)

// Valid 判斷是否為宣告的 RPP 狀態
func (r RppStatus) Valid() bool {
	switch r {
	case RppPending, RppVerified, RppRejected:
		return true
	}
	return false
}

// NormalizedAddressStatus 正規化地址的驗證狀態
type NormalizedAddressStatus string

const (
	NormalizedAddressPending  NormalizedAddressStatus = "pending"
	NormalizedAddressVerified NormalizedAddressStatus = "verified"
	NormalizedAddressInvalid  NormalizedAddressStatus = "invalid"
)

// NormalizedAddress 正規化地址子對象（外部地址服務的解析結果）
type NormalizedAddress struct {
	Formatted string
	Status    NormalizedAddressStatus
}

// IsZero 判斷是否尚未進行地址正規化
func (n NormalizedAddress) IsZero() bool {
	return n.Formatted == "" && n.Status == ""
}

// ===========================
// 狀態轉換表（單一真相來源）
// ===========================

// allowedTransitions 合法狀態轉換表
//
// - draft → published（發佈）
// - published → draft（暫停）
// - published → sold（成交）
// - sold 為終態
// - draft → sold 不允許：草稿必須先發佈才能標記成交（業務規則）
//
// Property 聚合所有狀態變更都經過 AssertTransition，
// 不在其他地方手寫轉換檢查。
var allowedTransitions = map[PropertyStatus][]PropertyStatus{
	StatusDraft:     {StatusPublished},
	StatusPublished: {StatusDraft, StatusSold},
	StatusSold:      {},
}

// CanTransition 判斷 from → to 是否在轉換表中
func CanTransition(from, to PropertyStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AssertTransition 斷言狀態轉換合法
//
// 返回：
//   nil - 轉換在表中
//   ErrStatusTransition - 轉換不在表中（context 攜帶 from / to 供診斷）
func AssertTransition(from, to PropertyStatus) error {
	if CanTransition(from, to) {
		return nil
	}
	return ErrStatusTransition.WithContext(
		"from", string(from),
		"to", string(to),
	)
}
