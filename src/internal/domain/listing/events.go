package listing

import (
	"time"

	"github.com/google/uuid"
)

// ===========================
// Property 領域事件
// ===========================

// baseEvent 各事件共用的識別與時間欄位
type baseEvent struct {
	eventID     string
	aggregateID string
	occurredAt  time.Time
}

func newBaseEvent(propertyID PropertyID) baseEvent {
	return baseEvent{
		eventID:     uuid.New().String(),
		aggregateID: propertyID.String(),
		occurredAt:  time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e baseEvent) EventID() string { return e.eventID }

// OccurredAt 實現 DomainEvent 介面
func (e baseEvent) OccurredAt() time.Time { return e.occurredAt }

// AggregateID 實現 DomainEvent 介面
func (e baseEvent) AggregateID() string { return e.aggregateID }

// PropertyCreatedEvent 房源已創建
type PropertyCreatedEvent struct {
	baseEvent
	orgID OrgID
}

// NewPropertyCreatedEvent 創建房源已創建事件
func NewPropertyCreatedEvent(propertyID PropertyID, orgID OrgID) *PropertyCreatedEvent {
	return &PropertyCreatedEvent{baseEvent: newBaseEvent(propertyID), orgID: orgID}
}

// EventType 實現 DomainEvent 介面
func (e *PropertyCreatedEvent) EventType() string { return "listing.created" }

// OrgID 獲取組織 ID
func (e *PropertyCreatedEvent) OrgID() OrgID { return e.orgID }

// PropertyPublishedEvent 房源已發佈
type PropertyPublishedEvent struct {
	baseEvent
	publishedAt time.Time
}

// NewPropertyPublishedEvent 創建房源已發佈事件
func NewPropertyPublishedEvent(propertyID PropertyID, publishedAt time.Time) *PropertyPublishedEvent {
	return &PropertyPublishedEvent{baseEvent: newBaseEvent(propertyID), publishedAt: publishedAt}
}

// EventType 實現 DomainEvent 介面
func (e *PropertyPublishedEvent) EventType() string { return "listing.published" }

// PublishedAt 獲取發佈時間
func (e *PropertyPublishedEvent) PublishedAt() time.Time { return e.publishedAt }

// PropertyPausedEvent 房源已暫停刊登
type PropertyPausedEvent struct {
	baseEvent
}

// NewPropertyPausedEvent 創建房源已暫停事件
func NewPropertyPausedEvent(propertyID PropertyID) *PropertyPausedEvent {
	return &PropertyPausedEvent{baseEvent: newBaseEvent(propertyID)}
}

// EventType 實現 DomainEvent 介面
func (e *PropertyPausedEvent) EventType() string { return "listing.paused" }

// PropertySoldEvent 房源已成交
type PropertySoldEvent struct {
	baseEvent
	soldAt time.Time
}

// NewPropertySoldEvent 創建房源已成交事件
func NewPropertySoldEvent(propertyID PropertyID, soldAt time.Time) *PropertySoldEvent {
	return &PropertySoldEvent{baseEvent: newBaseEvent(propertyID), soldAt: soldAt}
}

// EventType 實現 DomainEvent 介面
func (e *PropertySoldEvent) EventType() string { return "listing.sold" }

// SoldAt 獲取成交時間
func (e *PropertySoldEvent) SoldAt() time.Time { return e.soldAt }

// PropertyDeletedEvent 房源已軟刪除
type PropertyDeletedEvent struct {
	baseEvent
}

// NewPropertyDeletedEvent 創建房源已軟刪除事件
func NewPropertyDeletedEvent(propertyID PropertyID) *PropertyDeletedEvent {
	return &PropertyDeletedEvent{baseEvent: newBaseEvent(propertyID)}
}

// EventType 實現 DomainEvent 介面
func (e *PropertyDeletedEvent) EventType() string { return "listing.deleted" }
