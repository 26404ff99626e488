package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, MinQuantity, ClampQuantity(0))
	assert.Equal(t, MinQuantity, ClampQuantity(-3))
	assert.Equal(t, 5, ClampQuantity(5))
	assert.Equal(t, MaxQuantity, ClampQuantity(MaxQuantity))
	assert.Equal(t, MaxQuantity, ClampQuantity(15))
}

func TestDefaultTiers(t *testing.T) {
	tiers := DefaultTiers()
	require.Len(t, tiers, 4)

	ids := make(map[string]SeatingTier)
	for _, tier := range tiers {
		ids[tier.ID] = tier
		assert.Greater(t, tier.Price, 0)
		assert.Greater(t, tier.OriginalPrice, tier.Price, "tier %s should show a strikethrough price", tier.ID)
		assert.LessOrEqual(t, tier.Available, tier.Total)
		assert.False(t, tier.IsSoldOut())
	}

	require.Contains(t, ids, "vip")
	require.Contains(t, ids, "premium")
	require.Contains(t, ids, "standard")
	require.Contains(t, ids, "traditional")
	assert.Equal(t, 3500, ids["vip"].Price)
	assert.Equal(t, 800, ids["traditional"].Price)
}

func TestAvailabilityBands(t *testing.T) {
	assert.Equal(t, BandHigh, SeatingTier{Available: 85, Total: 100}.AvailabilityBand())
	assert.Equal(t, BandMedium, SeatingTier{Available: 30, Total: 100}.AvailabilityBand())
	assert.Equal(t, BandMedium, SeatingTier{Available: 25, Total: 100}.AvailabilityBand())
	assert.Equal(t, BandLow, SeatingTier{Available: 24, Total: 100}.AvailabilityBand())
	assert.Equal(t, BandLow, SeatingTier{Available: 0, Total: 100}.AvailabilityBand())
	assert.Equal(t, BandLow, SeatingTier{Available: 5, Total: 0}.AvailabilityBand())
}

func TestDefaultTierBands(t *testing.T) {
	bands := make(map[string]AvailabilityBand)
	for _, tier := range DefaultTiers() {
		bands[tier.ID] = tier.AvailabilityBand()
	}

	assert.Equal(t, BandHigh, bands["vip"])         // 12/20
	assert.Equal(t, BandMedium, bands["premium"])   // 18/60
	assert.Equal(t, BandLow, bands["standard"])     // 30/140
	assert.Equal(t, BandHigh, bands["traditional"]) // 85/100
}

func TestSessionSelectTier(t *testing.T) {
	sess := &Session{Step: StepSelectSeating, Quantity: 1}
	tier := SeatingTier{ID: "vip", Price: 3500, Available: 12, Total: 20}

	require.NoError(t, sess.SelectTier(tier))
	assert.Equal(t, StepReview, sess.Step)
	require.NotNil(t, sess.Tier)
	assert.Equal(t, "vip", sess.Tier.ID)

	// Selecting again in review is a guard violation.
	assert.ErrorIs(t, sess.SelectTier(tier), ErrInvalidTransition)
}

func TestSessionSelectSoldOutTier(t *testing.T) {
	sess := &Session{Step: StepSelectSeating, Quantity: 1}
	soldOut := SeatingTier{ID: "vip", Price: 3500, Available: 0, Total: 20}

	err := sess.SelectTier(soldOut)
	assert.ErrorIs(t, err, ErrTierSoldOut)
	assert.Equal(t, StepSelectSeating, sess.Step, "failed selection must not advance the session")
	assert.Nil(t, sess.Tier)
}

func TestSessionSelectTierCopiesValue(t *testing.T) {
	sess := &Session{Step: StepSelectSeating, Quantity: 1}
	tier := SeatingTier{ID: "vip", Price: 3500, Available: 12, Total: 20}

	require.NoError(t, sess.SelectTier(tier))
	tier.Price = 1

	assert.Equal(t, 3500, sess.Tier.Price)
}

func TestSessionAdjustQuantity(t *testing.T) {
	sess := &Session{Step: StepSelectSeating, Quantity: 1}

	// Not allowed before a tier is selected.
	assert.ErrorIs(t, sess.AdjustQuantity(3), ErrInvalidTransition)

	require.NoError(t, sess.SelectTier(SeatingTier{ID: "vip", Price: 3500, Available: 12, Total: 20}))
	require.NoError(t, sess.AdjustQuantity(3))
	assert.Equal(t, 3, sess.Quantity)

	require.NoError(t, sess.AdjustQuantity(15))
	assert.Equal(t, MaxQuantity, sess.Quantity)

	require.NoError(t, sess.AdjustQuantity(0))
	assert.Equal(t, MinQuantity, sess.Quantity)
}

func TestSessionTotalPrice(t *testing.T) {
	sess := &Session{Step: StepSelectSeating, Quantity: 1}
	assert.Equal(t, 0, sess.TotalPrice(), "no tier selected yet")

	require.NoError(t, sess.SelectTier(SeatingTier{ID: "vip", Price: 3500, Available: 12, Total: 20}))
	require.NoError(t, sess.AdjustQuantity(3))
	assert.Equal(t, 10500, sess.TotalPrice())

	require.NoError(t, sess.AdjustQuantity(15)) // clamps to 10
	assert.Equal(t, 35000, sess.TotalPrice())
}

func TestSessionFullLifecycle(t *testing.T) {
	sess := &Session{Step: StepSelectSeating, Quantity: 1}

	// Payment cannot start from seat selection.
	assert.ErrorIs(t, sess.BeginPayment(), ErrInvalidTransition)

	require.NoError(t, sess.SelectTier(SeatingTier{ID: "standard", Price: 1500, Available: 30, Total: 140}))
	require.NoError(t, sess.BeginPayment())
	assert.Equal(t, StepPayment, sess.Step)

	// No quantity edits mid-payment.
	assert.ErrorIs(t, sess.AdjustQuantity(2), ErrInvalidTransition)

	now := time.Now()
	require.NoError(t, sess.Complete("VRS-TEST123456", now))
	assert.Equal(t, StepConfirmed, sess.Step)
	assert.Equal(t, "VRS-TEST123456", sess.Reference)
	require.NotNil(t, sess.ConfirmedAt)
	assert.Equal(t, now, *sess.ConfirmedAt)
}

func TestSessionFailPayment(t *testing.T) {
	sess := &Session{Step: StepSelectSeating, Quantity: 1}

	// Only valid from the payment step.
	assert.ErrorIs(t, sess.FailPayment(), ErrInvalidTransition)

	require.NoError(t, sess.SelectTier(SeatingTier{ID: "vip", Price: 3500, Available: 12, Total: 20}))
	require.NoError(t, sess.AdjustQuantity(3))
	require.NoError(t, sess.BeginPayment())

	before := sess.UpdatedAt
	time.Sleep(time.Millisecond)

	require.NoError(t, sess.FailPayment())
	assert.Equal(t, StepReview, sess.Step)
	assert.True(t, sess.UpdatedAt.After(before), "a failed payment is a transition and must refresh UpdatedAt")

	// Tier and quantity survive for the retry.
	require.NotNil(t, sess.Tier)
	assert.Equal(t, 3, sess.Quantity)
	require.NoError(t, sess.BeginPayment())
}

func TestSessionRestart(t *testing.T) {
	sess := &Session{Step: StepSelectSeating, Quantity: 1}
	require.NoError(t, sess.SelectTier(SeatingTier{ID: "vip", Price: 3500, Available: 12, Total: 20}))
	require.NoError(t, sess.AdjustQuantity(4))

	require.NoError(t, sess.Restart())
	assert.Equal(t, StepSelectSeating, sess.Step)
	assert.Nil(t, sess.Tier)
	assert.Equal(t, MinQuantity, sess.Quantity)
}

func TestConfirmedSessionIsTerminal(t *testing.T) {
	sess := &Session{Step: StepConfirmed, Quantity: 1}

	assert.ErrorIs(t, sess.Restart(), ErrInvalidTransition)
	assert.ErrorIs(t, sess.SelectTier(SeatingTier{ID: "vip", Available: 1, Total: 1}), ErrInvalidTransition)
	assert.ErrorIs(t, sess.AdjustQuantity(2), ErrInvalidTransition)
	assert.ErrorIs(t, sess.BeginPayment(), ErrInvalidTransition)
}

func TestStepPredicates(t *testing.T) {
	for _, s := range []Step{StepSelectSeating, StepReview, StepPayment, StepConfirmed} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Step("CANCELLED").IsValid())

	assert.True(t, StepConfirmed.IsTerminal())
	assert.False(t, StepReview.IsTerminal())

	assert.True(t, StepSelectSeating.CanRestart())
	assert.True(t, StepPayment.CanRestart())
	assert.False(t, StepConfirmed.CanRestart())
}
