package document

import (
	"strings"
	"time"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// Document 實體
// ===========================

// DocumentType 文件類型（正規化後的標準集合）
type DocumentType string

const (
	TypeRppCertificate DocumentType = "rpp_certificate"
	TypeDeed           DocumentType = "deed"
	TypeProofOfAddress DocumentType = "proof_of_address"
	TypeTaxReceipt     DocumentType = "tax_receipt"
	TypeIDDoc          DocumentType = "id_doc"
	TypeFloorplan      DocumentType = "floorplan"
	TypeOther          DocumentType = "other"
)

// VerificationStatus 文件驗證狀態
//
// 與房源自身的 RPP 摘要欄位獨立：房源層級的 RPP 狀態
// 由其 RPP 類型文件的狀態按優先序派生（見 RppStatusFromDocs）。
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Valid 判斷是否為宣告的驗證狀態
func (v VerificationStatus) Valid() bool {
	switch v {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// Document 文件實體
//
// 附屬於唯一一個房源（以 PropertyID 反向引用）。
// 生命週期：附掛時創建（pending）→ 驗證用例改為 verified / rejected。
// 已驗證的文件不得靜默刪除（刪除是核心之外的管理員操作）。
type Document struct {
	documentID DocumentID
	propertyID listing.PropertyID

	docType DocumentType
	status  VerificationStatus

	// 文件必須可取回：storage key 或 URL 至少其一非空
	storageKey string
	url        string

	fileName string
	note     string

	createdAt time.Time
	updatedAt time.Time
}

// NewDocument 附掛新文件（Checked Constructor）
//
// 業務規則：
// 1. 類型先經 NormalizeType 正規化（接受別名與大小寫差異）
// 2. 必須有有效的取回途徑（storage key 或 URL）
// 3. 初始驗證狀態為 pending
func NewDocument(propertyID listing.PropertyID, rawType, storageKey, url, fileName string, now time.Time) (*Document, error) {
	if propertyID.IsEmpty() {
		return nil, listing.ErrInvalidPropertyID
	}

	docType, ok := NormalizeType(rawType)
	if !ok {
		return nil, ErrInvalidDocumentType.WithContext("raw_type", rawType)
	}

	storageKey = strings.TrimSpace(storageKey)
	url = strings.TrimSpace(url)
	if storageKey == "" && url == "" {
		return nil, ErrMissingLocator
	}

	if now.IsZero() {
		now = time.Now()
	}

	return &Document{
		documentID: NewDocumentID(),
		propertyID: propertyID,
		docType:    docType,
		status:     VerificationPending,
		storageKey: storageKey,
		url:        url,
		fileName:   strings.TrimSpace(fileName),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructDocument 從持久化存儲重建（僅供 Repository 使用）
func ReconstructDocument(
	documentID DocumentID,
	propertyID listing.PropertyID,
	docType DocumentType,
	status VerificationStatus,
	storageKey, url, fileName, note string,
	createdAt, updatedAt time.Time,
) (*Document, error) {
	if documentID.IsEmpty() {
		return nil, ErrInvalidDocumentID
	}
	if !IsAllowedType(string(docType)) {
		return nil, ErrInvalidDocumentType.WithContext("raw_type", string(docType))
	}
	if !status.Valid() {
		return nil, ErrInvalidVerificationStatus.WithContext("status", string(status))
	}

	return &Document{
		documentID: documentID,
		propertyID: propertyID,
		docType:    docType,
		status:     status,
		storageKey: storageKey,
		url:        url,
		fileName:   fileName,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

func (d *Document) DocumentID() DocumentID          { return d.documentID }
func (d *Document) PropertyID() listing.PropertyID { return d.propertyID }
func (d *Document) Type() DocumentType             { return d.docType }
func (d *Document) Status() VerificationStatus     { return d.status }
func (d *Document) StorageKey() string             { return d.storageKey }
func (d *Document) URL() string                    { return d.url }
func (d *Document) FileName() string               { return d.fileName }
func (d *Document) Note() string                   { return d.note }
func (d *Document) CreatedAt() time.Time           { return d.createdAt }
func (d *Document) UpdatedAt() time.Time           { return d.updatedAt }

// IsRpp 判斷是否為 RPP 類型文件
func (d *Document) IsRpp() bool {
	return d.docType == TypeRppCertificate
}

// ===========================
// 命令方法
// ===========================

// Verify 標記驗證通過
func (d *Document) Verify(note string, now time.Time) {
	d.status = VerificationVerified
	d.note = strings.TrimSpace(note)
	d.updatedAt = effectiveTime(now)
}

// Reject 標記驗證駁回
//
// 業務規則：駁回必須附帶原因
func (d *Document) Reject(note string, now time.Time) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return ErrRejectionNoteRequired
	}
	d.status = VerificationRejected
	d.note = note
	d.updatedAt = effectiveTime(now)
	return nil
}

func effectiveTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
