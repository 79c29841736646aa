package shared

import "time"

// DomainEvent 領域事件基礎介面
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	EventType() string     // 事件類型（如 "listing.published"）
	OccurredAt() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID
}

// EventPublisher 事件發布器介面
//
// 設計原則：
// - 介面定義在 Domain Layer（使用者），由 Infrastructure 實作
// - Use Case 在持久化成功後透過 PullEvents 取得事件並發布
// - 發布失敗不回滾業務事務（事件是盡力而為的副通道）
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishBatch(events []DomainEvent) error
}
