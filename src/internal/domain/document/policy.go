package document

import (
	"strings"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// DocumentPolicy 純函數策略
// ===========================

// typeAliases 文件類型別名表（大小寫不敏感）
//
// 把自由輸入 / 舊資料的類型字串正規化到標準集合。
// 標準值本身也在表中，正規化是冪等的。
var typeAliases = map[string]DocumentType{
	"rpp_certificate": TypeRppCertificate,
	"rpp":             TypeRppCertificate,
	"certificado_rpp": TypeRppCertificate,

	"deed":      TypeDeed,
	"escritura": TypeDeed,
	"title":     TypeDeed,

	"proof_of_address":        TypeProofOfAddress,
	"comprobante_domicilio":   TypeProofOfAddress,
	"address_proof":           TypeProofOfAddress,

	"tax_receipt": TypeTaxReceipt,
	"predial":     TypeTaxReceipt,

	"id_doc":   TypeIDDoc,
	"ine":      TypeIDDoc,
	"passport": TypeIDDoc,
	"id":       TypeIDDoc,

	"floorplan": TypeFloorplan,
	"plan":      TypeFloorplan,
	"plano":     TypeFloorplan,

	"other": TypeOther,
}

// NormalizeType 將自由輸入的類型字串正規化為標準文件類型
//
// 返回：
//   DocumentType - 正規化後的類型
//   bool - 是否可正規化（false 表示完全未知的類型）
func NormalizeType(raw string) (DocumentType, bool) {
	t, ok := typeAliases[strings.ToLower(strings.TrimSpace(raw))]
	return t, ok
}

// IsAllowedType 判斷類型字串是否可正規化為標準類型
func IsAllowedType(raw string) bool {
	_, ok := NormalizeType(raw)
	return ok
}

// HasValidLocator 判斷文件是否可取回
//
// 至少需要非空的 storage key 或非空的 URL 其中之一。
func HasValidLocator(doc *Document) bool {
	return strings.TrimSpace(doc.StorageKey()) != "" || strings.TrimSpace(doc.URL()) != ""
}

// RppStatusFromDocs 從文件集合派生房源層級的 RPP 摘要狀態
//
// 僅考慮 RPP 類型文件，優先序：
//   任一 rejected ⇒ rejected
//   否則任一 pending ⇒ pending
//   否則 ⇒ verified
//
// 返回：
//   RppStatus - 派生摘要
//   bool - 是否存在 RPP 文件；false 時摘要不可用，
//          調用者不得把「沒有 RPP 文件」當成 pending —
//          缺席與待驗證是不同的狀態
func RppStatusFromDocs(docs []*Document) (listing.RppStatus, bool) {
	found := false
	anyPending := false
	for _, doc := range docs {
		if !doc.IsRpp() {
			continue
		}
		found = true
		switch doc.Status() {
		case VerificationRejected:
			return listing.RppRejected, true
		case VerificationPending:
			anyPending = true
		}
	}

	if !found {
		return "", false
	}
	if anyPending {
		return listing.RppPending, true
	}
	return listing.RppVerified, true
}
