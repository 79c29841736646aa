package listing

import (
	"strings"
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// Property 聚合根
// ===========================

// Property 房源聚合根
//
// 聚合邊界：
// - 房源識別（PropertyID / OrgID / ListerID）
// - 生命週期狀態（draft / published / sold）與時間戳
// - 刊登內容（標題、描述、價格、特徵、地址、設施）
// - 派生摘要（RPP 狀態、正規化地址、完整度分數）
//
// 不變條件（建構時與每次變更後檢查）：
// 1. status = published ⇒ publishedAt 已設定
// 2. status = sold ⇒ soldAt 已設定
// 3. 標題永不為空
// 4. operationType 必須是宣告的操作類型
//
// 設計原則：
// - 所有狀態變更經由命令方法執行，外部程式不可直接改欄位
// - 狀態轉換合法性一律委託 AssertTransition（單一真相來源）
// - 發佈資格一律委託 AssertPublishable
// - 失敗的命令不留下部分變更（先驗證、後賦值）
//
// Document / MediaAsset 以 PropertyID 反向引用本聚合，
// 不持有指向 Property 的所有權指標。
type Property struct {
	// 識別欄位
	propertyID PropertyID
	orgID      OrgID
	listerID   ListerID

	// 生命週期
	status      PropertyStatus
	publishedAt *time.Time
	soldAt      *time.Time
	deletedAt   *time.Time

	// 刊登內容
	operationType OperationType
	propertyType  PropertyType
	title         string
	description   string
	price         Money
	features      Features
	address       Address
	geo           *GeoPoint
	amenities     []string
	amenitiesExtra string
	tags          []string
	internalID    string

	// 派生摘要
	rppStatus         RppStatus
	normalizedAddress NormalizedAddress
	completenessScore int
	trustScore        int

	// 審計欄位
	createdAt time.Time
	updatedAt time.Time

	// 待發布的領域事件
	events []shared.DomainEvent
}

// NewPropertyParams 新房源建構參數
type NewPropertyParams struct {
	OrgID         OrgID
	ListerID      ListerID
	Title         string
	OperationType OperationType
	PropertyType  PropertyType
	Price         Money
	Now           time.Time
}

// NewProperty 創建新房源（Checked Constructor）
//
// 業務規則：
// 1. 標題非空（trim 後）
// 2. OperationType / PropertyType 必須是宣告值
// 3. 初始狀態為 draft，RPP 狀態為 pending
// 4. 完整度分數以零媒體、零文件計算（因此接近 0）
// 5. 發布 PropertyCreated 事件
func NewProperty(p NewPropertyParams) (*Property, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrInvalidValue.WithContext("field", "title", "reason", "title cannot be empty")
	}
	if !p.OperationType.Valid() {
		return nil, ErrInvalidValue.WithContext("field", "operation_type", "value", string(p.OperationType))
	}
	if !p.PropertyType.Valid() {
		return nil, ErrInvalidValue.WithContext("field", "property_type", "value", string(p.PropertyType))
	}
	if p.OrgID.IsEmpty() {
		return nil, ErrInvalidOrgID
	}
	if p.ListerID.IsEmpty() {
		return nil, ErrInvalidListerID
	}

	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	prop := &Property{
		propertyID:    NewPropertyID(),
		orgID:         p.OrgID,
		listerID:      p.ListerID,
		status:        StatusDraft,
		operationType: p.OperationType,
		propertyType:  p.PropertyType,
		title:         title,
		price:         p.Price,
		rppStatus:     RppPending,
		createdAt:     now,
		updatedAt:     now,
		events:        make([]shared.DomainEvent, 0),
	}

	prop.completenessScore = prop.Signals(0, false).Score()
	prop.addEvent(NewPropertyCreatedEvent(prop.propertyID, prop.orgID))

	if err := prop.checkInvariants(); err != nil {
		return nil, err
	}
	return prop, nil
}

// ReconstructPropertyParams 從持久化存儲重建聚合的參數
type ReconstructPropertyParams struct {
	PropertyID    PropertyID
	OrgID         OrgID
	ListerID      ListerID
	Status        PropertyStatus
	OperationType OperationType
	PropertyType  PropertyType
	Title         string
	Description   string
	Price         Money
	Features      Features
	Address       Address
	Geo           *GeoPoint
	Amenities     []string
	AmenitiesExtra string
	Tags          []string
	InternalID    string
	RppStatus     RppStatus
	NormalizedAddress NormalizedAddress
	CompletenessScore int
	TrustScore        int
	PublishedAt *time.Time
	SoldAt      *time.Time
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReconstructProperty 從持久化存儲重建聚合根（僅供 Repository 使用）
//
// 與 NewProperty 的區別：
// - 不發布事件（事件已發生過）
// - 不重算完整度（採用持久化的快取分數）
//
// 即使是從資料庫重建，也驗證不變條件，防止損壞資料污染領域層。
func ReconstructProperty(p ReconstructPropertyParams) (*Property, error) {
	if p.PropertyID.IsEmpty() {
		return nil, ErrInvalidPropertyID
	}
	if !p.Status.Valid() {
		return nil, ErrInvariantViolation.WithContext("field", "status", "value", string(p.Status))
	}

	prop := &Property{
		propertyID:        p.PropertyID,
		orgID:             p.OrgID,
		listerID:          p.ListerID,
		status:            p.Status,
		operationType:     p.OperationType,
		propertyType:      p.PropertyType,
		title:             p.Title,
		description:       p.Description,
		price:             p.Price,
		features:          p.Features,
		address:           p.Address,
		geo:               p.Geo,
		amenities:         append([]string(nil), p.Amenities...),
		amenitiesExtra:    p.AmenitiesExtra,
		tags:              append([]string(nil), p.Tags...),
		internalID:        p.InternalID,
		rppStatus:         p.RppStatus,
		normalizedAddress: p.NormalizedAddress,
		completenessScore: p.CompletenessScore,
		trustScore:        p.TrustScore,
		publishedAt:       p.PublishedAt,
		soldAt:            p.SoldAt,
		deletedAt:         p.DeletedAt,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
		events:            make([]shared.DomainEvent, 0),
	}

	if err := prop.checkInvariants(); err != nil {
		return nil, err
	}
	return prop, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================
//
// 供 Repository 持久化與 DTO 轉換使用；
// 業務判斷請使用命令方法，不要在外部用 getter 重組規則。

func (p *Property) PropertyID() PropertyID { return p.propertyID }
func (p *Property) OrgID() OrgID           { return p.orgID }
func (p *Property) ListerID() ListerID     { return p.listerID }

func (p *Property) Status() PropertyStatus       { return p.status }
func (p *Property) OperationType() OperationType { return p.operationType }
func (p *Property) PropertyType() PropertyType   { return p.propertyType }

func (p *Property) Title() string       { return p.title }
func (p *Property) Description() string { return p.description }
func (p *Property) Price() Money        { return p.price }
func (p *Property) Features() Features  { return p.features }
func (p *Property) Address() Address    { return p.address }

// Geo 地理座標（nil 表示未設定）
func (p *Property) Geo() *GeoPoint {
	if p.geo == nil {
		return nil
	}
	g := *p.geo
	return &g
}

// Amenities 設施標籤（副本，防止外部修改）
func (p *Property) Amenities() []string {
	return append([]string(nil), p.amenities...)
}

func (p *Property) AmenitiesExtra() string { return p.amenitiesExtra }

// Tags 自由標籤（副本）
func (p *Property) Tags() []string {
	return append([]string(nil), p.tags...)
}

func (p *Property) InternalID() string                   { return p.internalID }
func (p *Property) RppStatus() RppStatus                 { return p.rppStatus }
func (p *Property) NormalizedAddress() NormalizedAddress { return p.normalizedAddress }
func (p *Property) CompletenessScore() int               { return p.completenessScore }
func (p *Property) TrustScore() int                      { return p.trustScore }

func (p *Property) PublishedAt() *time.Time { return p.publishedAt }
func (p *Property) SoldAt() *time.Time      { return p.soldAt }
func (p *Property) DeletedAt() *time.Time   { return p.deletedAt }
func (p *Property) CreatedAt() time.Time    { return p.createdAt }
func (p *Property) UpdatedAt() time.Time    { return p.updatedAt }

// IsDeleted 判斷是否已軟刪除
func (p *Property) IsDeleted() bool { return p.deletedAt != nil }

// ===========================
// 事件管理
// ===========================

func (p *Property) addEvent(event shared.DomainEvent) {
	p.events = append(p.events, event)
}

// PullEvents 取得所有待發布事件並清空列表
//
// Repository 持久化成功後，Use Case 調用此方法取得事件並交給
// EventPublisher。只讀取一次，避免重複發布。
func (p *Property) PullEvents() []shared.DomainEvent {
	events := p.events
	p.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// 命令方法（內容變更）
// ===========================

// Rename 修改標題
//
// 業務規則：標題非空（trim 後）
func (p *Property) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidValue.WithContext("field", "title", "reason", "title cannot be empty")
	}
	p.title = title
	p.touch()
	return p.checkInvariants()
}

// SetDescription 修改描述（可清空）
func (p *Property) SetDescription(description string) {
	p.description = strings.TrimSpace(description)
	p.touch()
}

// Retype 修改房源類型
func (p *Property) Retype(t PropertyType) error {
	if !t.Valid() {
		return ErrInvalidValue.WithContext("field", "property_type", "value", string(t))
	}
	p.propertyType = t
	p.touch()
	return nil
}

// Reprice 修改價格
//
// Money 值對象已在建構時自我驗證，這裡只接受已驗證的值。
func (p *Property) Reprice(price Money) {
	p.price = price
	p.touch()
}

// SetFeatures 設定物理特徵
//
// 業務規則：所有已提供的數值必須 >= 0
func (p *Property) SetFeatures(f Features) error {
	if err := f.Validate(); err != nil {
		return err
	}
	p.features = f
	p.touch()
	return nil
}

// SetAddress 設定地址（Address 值對象已自我驗證）
//
// 副作用：清空正規化地址（舊的解析結果對新地址不再有效）
func (p *Property) SetAddress(a Address) {
	p.address = a
	p.normalizedAddress = NormalizedAddress{}
	p.touch()
}

// SetGeoPoint 設定地理座標
func (p *Property) SetGeoPoint(g GeoPoint) {
	p.geo = &g
	p.touch()
}

// ClearGeoPoint 清除地理座標
func (p *Property) ClearGeoPoint() {
	p.geo = nil
	p.touch()
}

// SetAmenities 設定設施標籤與補充說明
func (p *Property) SetAmenities(amenities []string, extra string) {
	cleaned := make([]string, 0, len(amenities))
	seen := make(map[string]struct{}, len(amenities))
	for _, a := range amenities {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		cleaned = append(cleaned, a)
	}
	p.amenities = cleaned
	p.amenitiesExtra = strings.TrimSpace(extra)
	p.touch()
}

// SetTags 設定自由標籤
func (p *Property) SetTags(tags []string) {
	p.tags = append([]string(nil), tags...)
	p.touch()
}

// SetInternalID 設定內部編號
func (p *Property) SetInternalID(id string) {
	p.internalID = strings.TrimSpace(id)
	p.touch()
}

// SetRppStatus 設定 RPP 派生摘要狀態
//
// 這是文件驗證用例解析 RppStatusFromDocs 後寫回的摘要，
// 不是獨立的業務事實。
func (p *Property) SetRppStatus(s RppStatus) error {
	if !s.Valid() {
		return ErrInvalidValue.WithContext("field", "rpp_status", "value", string(s))
	}
	p.rppStatus = s
	p.touch()
	return nil
}

// SetNormalizedAddress 寫入地址正規化結果
func (p *Property) SetNormalizedAddress(n NormalizedAddress) {
	p.normalizedAddress = n
	p.touch()
}

// SetTrustScore 寫入信任分數（外部信任引擎計算）
func (p *Property) SetTrustScore(score int) error {
	if score < 0 || score > 100 {
		return ErrInvalidValue.WithContext("field", "trust_score", "value", score)
	}
	p.trustScore = score
	p.touch()
	return nil
}

// ===========================
// 命令方法（生命週期）
// ===========================

// PublishOptions 發佈選項
type PublishOptions struct {
	// Now 發佈時間戳；零值時採用 time.Now()
	Now time.Time

	// KycVerified 刊登者 KYC 是否已驗證（由 Use Case 從認證結果取得）
	KycVerified bool

	// RequireScoreGte 分數門檻覆寫；0 表示採用 MinPublishScore
	RequireScoreGte int

	// AllowRppRejected 關閉 RPP 駁回門檻（預設阻擋）
	AllowRppRejected bool
}

// Publish 發佈房源
//
// 業務流程：
// 1. AssertPublishable（KYC → 分數 → RPP，按優先序）
// 2. 若當前不是 published，AssertTransition(status, published)
// 3. publishedAt 保留既有值，否則設為 now（冪等：
//    重複發佈不改變已設定的時間戳）
// 4. 變更狀態並重驗不變條件
//
// 副作用：更新 updatedAt；發布 PropertyPublished 事件（僅首次轉換時）
func (p *Property) Publish(opts PublishOptions) error {
	if err := AssertPublishable(PublishInput{
		KycVerified:        opts.KycVerified,
		Score:              p.completenessScore,
		RppStatus:          p.rppStatus,
		MinScore:           opts.RequireScoreGte,
		BlockIfRppRejected: !opts.AllowRppRejected,
	}); err != nil {
		return err
	}

	alreadyPublished := p.status == StatusPublished
	if !alreadyPublished {
		if err := AssertTransition(p.status, StatusPublished); err != nil {
			return err
		}
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	if p.publishedAt == nil {
		p.publishedAt = &now
	}
	p.status = StatusPublished
	p.updatedAt = now

	if !alreadyPublished {
		p.addEvent(NewPropertyPublishedEvent(p.propertyID, *p.publishedAt))
	}

	return p.checkInvariants()
}

// SchedulePublication 預約發佈時間
//
// 僅記錄未來的 publishedAt，狀態維持 draft；
// 實際轉換仍須經過 Publish（屆時保留此時間戳）。
func (p *Property) SchedulePublication(at time.Time) error {
	if at.IsZero() {
		return ErrInvalidValue.WithContext("field", "published_at", "reason", "timestamp required")
	}
	if p.status != StatusDraft {
		return ErrStatusTransition.WithContext(
			"from", string(p.status),
			"to", string(StatusPublished),
		)
	}
	p.publishedAt = &at
	p.touch()
	return p.checkInvariants()
}

// Pause 暫停刊登（published → draft）
//
// 業務規則：
// - 僅在 published 時動作；draft / sold 時靜默返回
//   （調用者不需要預先檢查狀態）
// - publishedAt 保留為歷史：之後重新發佈不改變時間戳
func (p *Property) Pause() error {
	if p.status != StatusPublished {
		return nil
	}
	if err := AssertTransition(p.status, StatusDraft); err != nil {
		return err
	}
	p.status = StatusDraft
	p.touch()
	p.addEvent(NewPropertyPausedEvent(p.propertyID))
	return p.checkInvariants()
}

// MarkSold 標記成交
//
// 業務規則：
// - 需要有效的成交時間
// - AssertTransition(status, sold)：draft → sold 不在轉換表中，
//   因此草稿必須先發佈才能標記成交
func (p *Property) MarkSold(at time.Time) error {
	if at.IsZero() {
		return ErrInvalidValue.WithContext("field", "sold_at", "reason", "timestamp required")
	}
	if err := AssertTransition(p.status, StatusSold); err != nil {
		return err
	}
	p.soldAt = &at
	p.status = StatusSold
	p.updatedAt = at
	p.addEvent(NewPropertySoldEvent(p.propertyID, at))
	return p.checkInvariants()
}

// SoftDelete 軟刪除（設定 deletedAt）
//
// 不檢查也不變更 status：sold 或 published 的房源都可以被軟刪除。
// 領域層永不物理刪除。
func (p *Property) SoftDelete(at time.Time) {
	if at.IsZero() {
		at = time.Now()
	}
	p.deletedAt = &at
	p.updatedAt = at
	p.addEvent(NewPropertyDeletedEvent(p.propertyID))
}

// Restore 還原軟刪除
func (p *Property) Restore() {
	p.deletedAt = nil
	p.touch()
}

// Duplicate 複製房源為全新草稿
//
// 複製：特徵、地址、設施、標籤、價格、描述、類型
// 剝除：publishedAt / soldAt / deletedAt / internalID / normalizedAddress
// 完整度分數沿用來源的快取值（調用者應重算）
// 標題加上「(copy)」後綴
//
// 結構獨立：修改副本不影響來源。
func (p *Property) Duplicate(newID PropertyID, listerID ListerID, orgID OrgID) (*Property, error) {
	if newID.IsEmpty() {
		return nil, ErrInvalidPropertyID
	}
	if listerID.IsEmpty() {
		listerID = p.listerID
	}
	if orgID.IsEmpty() {
		orgID = p.orgID
	}

	now := time.Now()
	clone := &Property{
		propertyID:        newID,
		orgID:             orgID,
		listerID:          listerID,
		status:            StatusDraft,
		operationType:     p.operationType,
		propertyType:      p.propertyType,
		title:             p.title + " (copy)",
		description:       p.description,
		price:             p.price,
		features:          p.features,
		address:           p.address,
		geo:               p.Geo(),
		amenities:         append([]string(nil), p.amenities...),
		amenitiesExtra:    p.amenitiesExtra,
		tags:              append([]string(nil), p.tags...),
		rppStatus:         RppPending,
		completenessScore: p.completenessScore,
		createdAt:         now,
		updatedAt:         now,
		events:            make([]shared.DomainEvent, 0),
	}
	clone.addEvent(NewPropertyCreatedEvent(clone.propertyID, clone.orgID))

	if err := clone.checkInvariants(); err != nil {
		return nil, err
	}
	return clone, nil
}

// ===========================
// 完整度
// ===========================

// Signals 由當前欄位值推導完整度信號
//
// 媒體數量與 RPP 文件存在與否不是 Property 的儲存欄位，
// 由調用者（Use Case）從各自的 Repository 取得後傳入。
func (p *Property) Signals(mediaCount int, hasRppDoc bool) CompletenessSignals {
	return CompletenessSignals{
		HasTitle:        p.title != "",
		HasPropertyType: p.propertyType.Valid(),
		HasPrice:        p.price.IsPositive(),
		HasCity:         !p.address.IsZero() && p.address.City() != "",
		HasState:        !p.address.IsZero() && p.address.State() != "",
		HasDescription:  p.description != "",
		HasAmenity:      len(p.amenities) > 0,
		HasMedia:        mediaCount > 0,
		HasDocument:     hasRppDoc,
	}
}

// RecomputeCompleteness 重算並快取完整度分數
func (p *Property) RecomputeCompleteness(mediaCount int, hasRppDoc bool) int {
	p.completenessScore = p.Signals(mediaCount, hasRppDoc).Score()
	p.touch()
	return p.completenessScore
}

// ===========================
// 不變條件
// ===========================

// touch 更新 updatedAt（內容性變更的簿記）
func (p *Property) touch() {
	p.updatedAt = time.Now()
}

// checkInvariants 驗證聚合不變條件
//
// 每個可能影響不變條件的命令方法在返回前調用。
func (p *Property) checkInvariants() error {
	if strings.TrimSpace(p.title) == "" {
		return ErrInvariantViolation.WithContext("reason", "title is empty")
	}
	if !p.operationType.Valid() {
		return ErrInvariantViolation.WithContext(
			"reason", "unknown operation type",
			"operation_type", string(p.operationType),
		)
	}
	if p.status == StatusPublished && p.publishedAt == nil {
		return ErrInvariantViolation.WithContext("reason", "published without publishedAt")
	}
	if p.status == StatusSold && p.soldAt == nil {
		return ErrInvariantViolation.WithContext("reason", "sold without soldAt")
	}
	return nil
}
