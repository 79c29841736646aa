package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmolista/listing_crm/src/internal/domain/document"
	"github.com/inmolista/listing_crm/src/internal/domain/listing"
)

// ===========================
// Document 建構測試
// ===========================

func TestNewDocument_ValidParams_Success(t *testing.T) {
	// Arrange
	propertyID := listing.NewPropertyID()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Act
	doc, err := document.NewDocument(propertyID, "rpp_certificate", "docs/abc.pdf", "", "certificado.pdf", now)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, propertyID, doc.PropertyID())
	assert.Equal(t, document.TypeRppCertificate, doc.Type())
	assert.Equal(t, document.VerificationPending, doc.Status(), "新文件一律從 pending 開始")
	assert.True(t, doc.IsRpp())
	assert.Equal(t, now, doc.CreatedAt())
}

func TestNewDocument_AliasType_Normalized(t *testing.T) {
	// Act - 西語別名也被接受
	doc, err := document.NewDocument(listing.NewPropertyID(), "ESCRITURA", "docs/deed.pdf", "", "", time.Now())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, document.TypeDeed, doc.Type())
	assert.False(t, doc.IsRpp())
}

func TestNewDocument_UnknownType_ReturnsError(t *testing.T) {
	// Act
	doc, err := document.NewDocument(listing.NewPropertyID(), "selfie", "docs/x.pdf", "", "", time.Now())

	// Assert
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, document.ErrInvalidDocumentType)
}

func TestNewDocument_NoLocator_ReturnsError(t *testing.T) {
	// Act - storage key 與 URL 都空
	doc, err := document.NewDocument(listing.NewPropertyID(), "deed", "  ", "  ", "", time.Now())

	// Assert
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, document.ErrMissingLocator)
}

func TestNewDocument_URLOnly_Succeeds(t *testing.T) {
	// Act - 取回途徑其一即可
	doc, err := document.NewDocument(listing.NewPropertyID(), "deed", "", "https://cdn.example.com/deed.pdf", "", time.Now())

	// Assert
	require.NoError(t, err)
	assert.True(t, document.HasValidLocator(doc))
}

// ===========================
// 驗證命令測試
// ===========================

func TestDocument_Verify_SetsStatusAndNote(t *testing.T) {
	// Arrange
	doc, err := document.NewDocument(listing.NewPropertyID(), "rpp", "docs/rpp.pdf", "", "", time.Now())
	require.NoError(t, err)
	now := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

	// Act
	doc.Verify("  todo en orden  ", now)

	// Assert
	assert.Equal(t, document.VerificationVerified, doc.Status())
	assert.Equal(t, "todo en orden", doc.Note())
	assert.Equal(t, now, doc.UpdatedAt())
}

func TestDocument_Verify_EmptyNoteAllowed(t *testing.T) {
	// Arrange
	doc, err := document.NewDocument(listing.NewPropertyID(), "rpp", "docs/rpp.pdf", "", "", time.Now())
	require.NoError(t, err)

	// Act
	doc.Verify("", time.Now())

	// Assert
	assert.Equal(t, document.VerificationVerified, doc.Status())
}

func TestDocument_Reject_RequiresNote(t *testing.T) {
	// Arrange
	doc, err := document.NewDocument(listing.NewPropertyID(), "rpp", "docs/rpp.pdf", "", "", time.Now())
	require.NoError(t, err)

	// Act
	errEmpty := doc.Reject("   ", time.Now())

	// Assert - 駁回必須附帶原因
	assert.ErrorIs(t, errEmpty, document.ErrRejectionNoteRequired)
	assert.Equal(t, document.VerificationPending, doc.Status(), "失敗的命令不留下變更")

	// 附帶原因則成功
	require.NoError(t, doc.Reject("documento ilegible", time.Now()))
	assert.Equal(t, document.VerificationRejected, doc.Status())
	assert.Equal(t, "documento ilegible", doc.Note())
}
