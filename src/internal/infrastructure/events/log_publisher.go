package events

import (
	"log"

	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// 日誌事件發布器
// ===========================

// LogEventPublisher 把領域事件寫到標準日誌
//
// 事件是盡力而為的副通道：持久化成功後發布，
// 目前的消費者只有日誌（之後可替換為訊息佇列實作，
// 介面不變）。
type LogEventPublisher struct{}

// NewLogEventPublisher 創建發布器實例
func NewLogEventPublisher() *LogEventPublisher {
	return &LogEventPublisher{}
}

// Publish 發布單一事件
func (p *LogEventPublisher) Publish(event shared.DomainEvent) error {
	log.Printf("[EVENT] %s aggregate=%s event_id=%s occurred_at=%s",
		event.EventType(),
		event.AggregateID(),
		event.EventID(),
		event.OccurredAt().Format("2006-01-02T15:04:05Z07:00"),
	)
	return nil
}

// PublishBatch 發布一批事件
func (p *LogEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	for _, event := range events {
		if err := p.Publish(event); err != nil {
			return err
		}
	}
	return nil
}
