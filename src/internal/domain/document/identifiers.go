package document

import (
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// DocumentMarker 是 DocumentID 的標記類型
type DocumentMarker struct{}

// DocumentID 文件的唯一標識符
type DocumentID = shared.EntityID[DocumentMarker]

// NewDocumentID 生成新的文件 ID（UUID v4）
func NewDocumentID() DocumentID {
	return shared.NewEntityID[DocumentMarker]()
}

// DocumentIDFromString 從字串解析文件 ID
func DocumentIDFromString(s string) (DocumentID, error) {
	return shared.EntityIDFromString[DocumentMarker](s, ErrInvalidDocumentID)
}
