package document

import (
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// GORM Models
// ===========================

// DocumentGORM 文件資料表模型
//
// 資料庫約束：
// - document_id: 主鍵（UUID）
// - property_id: 索引（按房源列出文件）
type DocumentGORM struct {
	DocumentID string `gorm:"column:document_id;type:varchar(36);primaryKey"`
	PropertyID string `gorm:"column:property_id;type:varchar(36);index;not null"`

	DocType string `gorm:"column:doc_type;type:varchar(32);not null"`
	Status  string `gorm:"column:status;type:varchar(16);not null"`

	StorageKey string `gorm:"column:storage_key;type:varchar(512)"`
	URL        string `gorm:"column:url;type:varchar(1024)"`
	FileName   string `gorm:"column:file_name;type:varchar(255)"`
	Note       string `gorm:"column:note;type:varchar(1024)"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (DocumentGORM) TableName() string {
	return "documents"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 實體
func (m *DocumentGORM) toDomain() (*document.Document, error) {
	documentID, err := document.DocumentIDFromString(m.DocumentID)
	if err != nil {
		return nil, err
	}
	propertyID, err := listing.PropertyIDFromString(m.PropertyID)
	if err != nil {
		return nil, err
	}

	return document.ReconstructDocument(
		documentID,
		propertyID,
		document.DocumentType(m.DocType),
		document.VerificationStatus(m.Status),
		m.StorageKey,
		m.URL,
		m.FileName,
		m.Note,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// toGORM 將 Domain 實體轉換為 GORM 模型
func toGORM(doc *document.Document) *DocumentGORM {
	return &DocumentGORM{
		DocumentID: doc.DocumentID().String(),
		PropertyID: doc.PropertyID().String(),
		DocType:    string(doc.Type()),
		Status:     string(doc.Status()),
		StorageKey: doc.StorageKey(),
		URL:        doc.URL(),
		FileName:   doc.FileName(),
		Note:       doc.Note(),
		CreatedAt:  doc.CreatedAt(),
		UpdatedAt:  doc.UpdatedAt(),
	}
}
