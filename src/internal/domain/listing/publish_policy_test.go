package listing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmolista/listing_crm/src/internal/domain/listing"
	"github.com/inmolista/listing_crm/src/internal/domain/shared"
)

// ===========================
// 發佈門檻測試
// ===========================

// passingInput 三個門檻全部通過的輸入
func passingInput() listing.PublishInput {
	return listing.PublishInput{
		KycVerified:        true,
		Score:              90,
		RppStatus:          listing.RppVerified,
		BlockIfRppRejected: true,
	}
}

func TestAssertPublishable_AllGatesPass_ReturnsNil(t *testing.T) {
	assert.NoError(t, listing.AssertPublishable(passingInput()))
}

func TestAssertPublishable_KycMissing_ReturnsKycRequired(t *testing.T) {
	// Arrange
	in := passingInput()
	in.KycVerified = false

	// Act & Assert
	assert.ErrorIs(t, listing.AssertPublishable(in), listing.ErrKycRequired)
}

func TestAssertPublishable_ScoreBelowDefault_ReturnsPublishBlocked(t *testing.T) {
	// Arrange
	in := passingInput()
	in.Score = listing.MinPublishScore - 1

	// Act
	err := listing.AssertPublishable(in)

	// Assert
	require.ErrorIs(t, err, listing.ErrPublishBlocked)

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, listing.MinPublishScore, domainErr.Context["min_score"])
	assert.Equal(t, listing.MinPublishScore-1, domainErr.Context["actual_score"])
}

func TestAssertPublishable_ScoreAtThreshold_Passes(t *testing.T) {
	// Arrange - 門檻是 >=，80 分剛好通過
	in := passingInput()
	in.Score = listing.MinPublishScore

	// Act & Assert
	assert.NoError(t, listing.AssertPublishable(in))
}

func TestAssertPublishable_CustomMinScore_Overrides(t *testing.T) {
	// Arrange
	in := passingInput()
	in.Score = 85
	in.MinScore = 90

	// Act & Assert
	assert.ErrorIs(t, listing.AssertPublishable(in), listing.ErrPublishBlocked)
}

func TestAssertPublishable_RppRejected_ReturnsRppRejected(t *testing.T) {
	// Arrange
	in := passingInput()
	in.RppStatus = listing.RppRejected

	// Act & Assert
	assert.ErrorIs(t, listing.AssertPublishable(in), listing.ErrRppRejected)
}

func TestAssertPublishable_RppRejectedGateDisabled_Passes(t *testing.T) {
	// Arrange
	in := passingInput()
	in.RppStatus = listing.RppRejected
	in.BlockIfRppRejected = false

	// Act & Assert
	assert.NoError(t, listing.AssertPublishable(in))
}

// TestAssertPublishable_GatePriority KYC 優先於分數，分數優先於 RPP
func TestAssertPublishable_GatePriority(t *testing.T) {
	// Arrange - 三個門檻同時未通過
	in := listing.PublishInput{
		KycVerified:        false,
		Score:              10,
		RppStatus:          listing.RppRejected,
		BlockIfRppRejected: true,
	}

	// Act & Assert - 只報第一個（KYC）
	assert.ErrorIs(t, listing.AssertPublishable(in), listing.ErrKycRequired)

	// KYC 通過後報分數
	in.KycVerified = true
	assert.ErrorIs(t, listing.AssertPublishable(in), listing.ErrPublishBlocked)

	// 分數通過後報 RPP
	in.Score = 90
	assert.ErrorIs(t, listing.AssertPublishable(in), listing.ErrRppRejected)
}

// ===========================
// CanPublish（非拋出版本）測試
// ===========================

func TestCanPublish_AllGatesPass_NoReasons(t *testing.T) {
	// Act
	ok, reasons := listing.CanPublish(passingInput())

	// Assert
	assert.True(t, ok)
	assert.Empty(t, reasons)
}

func TestCanPublish_AllGatesFail_CollectsAllReasons(t *testing.T) {
	// Arrange
	in := listing.PublishInput{
		KycVerified:        false,
		Score:              10,
		RppStatus:          listing.RppRejected,
		BlockIfRppRejected: true,
	}

	// Act
	ok, reasons := listing.CanPublish(in)

	// Assert - 與 AssertPublishable 不同：一次列出全部待辦
	assert.False(t, ok)
	assert.Len(t, reasons, 3)
}

func TestCanPublish_OnlyScoreFails_SingleReason(t *testing.T) {
	// Arrange
	in := passingInput()
	in.Score = 50

	// Act
	ok, reasons := listing.CanPublish(in)

	// Assert
	assert.False(t, ok)
	assert.Len(t, reasons, 1)
}
