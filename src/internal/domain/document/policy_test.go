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
// 類型正規化測試
// ===========================

func TestNormalizeType_Aliases(t *testing.T) {
	tests := []struct {
		raw  string
		want document.DocumentType
	}{
		{"rpp", document.TypeRppCertificate},
		{"RPP_CERTIFICATE", document.TypeRppCertificate},
		{"certificado_rpp", document.TypeRppCertificate},
		{"escritura", document.TypeDeed},
		{"title", document.TypeDeed},
		{"comprobante_domicilio", document.TypeProofOfAddress},
		{"predial", document.TypeTaxReceipt},
		{"INE", document.TypeIDDoc},
		{"passport", document.TypeIDDoc},
		{"plano", document.TypeFloorplan},
		{"  other  ", document.TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := document.NormalizeType(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeType_Idempotent(t *testing.T) {
	// 標準值本身也在別名表中
	first, ok := document.NormalizeType("deed")
	require.True(t, ok)

	second, ok := document.NormalizeType(string(first))
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestNormalizeType_Unknown_ReturnsFalse(t *testing.T) {
	for _, raw := range []string{"", "selfie", "contract", "видео"} {
		_, ok := document.NormalizeType(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}

func TestIsAllowedType(t *testing.T) {
	assert.True(t, document.IsAllowedType("rpp"))
	assert.False(t, document.IsAllowedType("selfie"))
}

// ===========================
// RPP 摘要派生測試
// ===========================

func rppDoc(t *testing.T, status document.VerificationStatus) *document.Document {
	t.Helper()
	doc, err := document.NewDocument(listing.NewPropertyID(), "rpp", "docs/rpp.pdf", "", "", time.Now())
	require.NoError(t, err)

	switch status {
	case document.VerificationVerified:
		doc.Verify("", time.Now())
	case document.VerificationRejected:
		require.NoError(t, doc.Reject("ilegible", time.Now()))
	}
	return doc
}

func otherDoc(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.NewDocument(listing.NewPropertyID(), "deed", "docs/deed.pdf", "", "", time.Now())
	require.NoError(t, err)
	return doc
}

func TestRppStatusFromDocs_NoRppDocs_ReturnsNotFound(t *testing.T) {
	// Act - 只有非 RPP 文件
	status, found := document.RppStatusFromDocs([]*document.Document{otherDoc(t)})

	// Assert - 缺席與待驗證是不同的狀態
	assert.False(t, found)
	assert.Equal(t, listing.RppStatus(""), status)
}

func TestRppStatusFromDocs_EmptyList_ReturnsNotFound(t *testing.T) {
	_, found := document.RppStatusFromDocs(nil)
	assert.False(t, found)
}

func TestRppStatusFromDocs_AnyRejected_WinsOverAll(t *testing.T) {
	// Arrange - rejected > pending > verified
	docs := []*document.Document{
		rppDoc(t, document.VerificationVerified),
		rppDoc(t, document.VerificationPending),
		rppDoc(t, document.VerificationRejected),
	}

	// Act
	status, found := document.RppStatusFromDocs(docs)

	// Assert
	assert.True(t, found)
	assert.Equal(t, listing.RppRejected, status)
}

func TestRppStatusFromDocs_PendingWinsOverVerified(t *testing.T) {
	// Arrange
	docs := []*document.Document{
		rppDoc(t, document.VerificationVerified),
		rppDoc(t, document.VerificationPending),
	}

	// Act
	status, found := document.RppStatusFromDocs(docs)

	// Assert
	assert.True(t, found)
	assert.Equal(t, listing.RppPending, status)
}

func TestRppStatusFromDocs_AllVerified_ReturnsVerified(t *testing.T) {
	// Arrange
	docs := []*document.Document{
		rppDoc(t, document.VerificationVerified),
		rppDoc(t, document.VerificationVerified),
	}

	// Act
	status, found := document.RppStatusFromDocs(docs)

	// Assert
	assert.True(t, found)
	assert.Equal(t, listing.RppVerified, status)
}

func TestRppStatusFromDocs_IgnoresNonRppDocs(t *testing.T) {
	// Arrange - deed 被駁回不影響 RPP 摘要
	deed := otherDoc(t)
	require.NoError(t, deed.Reject("wrong owner", time.Now()))

	docs := []*document.Document{
		deed,
		rppDoc(t, document.VerificationVerified),
	}

	// Act
	status, found := document.RppStatusFromDocs(docs)

	// Assert
	assert.True(t, found)
	assert.Equal(t, listing.RppVerified, status)
}
