package listing

import (
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// AssertOwnedBy 驗證房源屬於操作者的組織
//
// 多租戶隔離的應用層防線：持久層的 row-scoping 之外，
// 每個按 ID 取得聚合的 Use Case 都再驗一次歸屬。
func AssertOwnedBy(prop *listing.Property, user shared.CurrentUser) error {
	if user.OrgID == "" || prop.OrgID().String() != user.OrgID {
		return shared.ErrForbidden.WithContext(
			"property_id", prop.PropertyID().String(),
			"org_id", user.OrgID,
		)
	}
	return nil
}

// publishEvents 持久化成功後發布領域事件（nil-safe）
//
// 發布失敗不回滾業務事務；日誌由 Publisher 實作負責。
func publishEvents(publisher shared.EventPublisher, events []shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	_ = publisher.PublishBatch(events)
}
