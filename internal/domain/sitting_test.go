package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sittingTemplate() SittingTemplate {
	return SittingTemplate{ID: 5, Name: "Hair Spa x6", PaidSittings: 5, CompSittings: 1, TotalSittings: 6}
}

func TestNewSittingBundle(t *testing.T) {
	assigned := day(2025, time.June, 2)

	sub, err := NewSittingBundle(sittingTemplate(), 1, "9000000002", "Ravi", "Hair Spa", 1200, 5000, assigned, nil)
	require.NoError(t, err)

	assert.Equal(t, 6, sub.TotalSittings)
	assert.Equal(t, 0, sub.SittingsUsed)
	assert.Equal(t, 6, sub.RemainingSittings)
	assert.Equal(t, SittingActive, sub.Status)
	assert.Equal(t, assigned.AddDate(1, 0, 0), sub.ExpiryDate)

	require.Len(t, sub.History, 1)
	assert.Equal(t, SittingActivation, sub.History[0].Type)
}

func TestNewSittingBundleWithFirstRedemption(t *testing.T) {
	first := &SittingEntry{StaffID: 11, StaffName: "Meena"}

	sub, err := NewSittingBundle(sittingTemplate(), 1, "9000000002", "Ravi", "Hair Spa", 1200, 5000, day(2025, time.June, 2), first)
	require.NoError(t, err)

	assert.Equal(t, 1, sub.SittingsUsed)
	assert.Equal(t, 5, sub.RemainingSittings)
	require.Len(t, sub.History, 2)
	assert.Equal(t, SittingRedemption, sub.History[1].Type)
	assert.Equal(t, int64(11), sub.History[1].StaffID)
}

func TestRedeemSittingConservation(t *testing.T) {
	sub, err := NewSittingBundle(sittingTemplate(), 1, "9000000002", "Ravi", "Hair Spa", 1200, 5000, day(2025, time.June, 2), nil)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		require.NoError(t, sub.RedeemSitting(day(2025, time.June, 3+i), 11, "Meena"))
		assert.Equal(t, sub.TotalSittings, sub.SittingsUsed+sub.RemainingSittings)
	}

	assert.Equal(t, 6, sub.SittingsUsed)
	assert.Equal(t, 0, sub.RemainingSittings)
	assert.Equal(t, SittingConsumed, sub.Status)

	redemptions := 0
	for _, e := range sub.History {
		if e.Type == SittingRedemption {
			redemptions++
		}
	}
	assert.Equal(t, sub.SittingsUsed, redemptions)
}

func TestRedeemSittingExhaustedLeavesBundleUntouched(t *testing.T) {
	tmpl := SittingTemplate{ID: 6, Name: "Single", PaidSittings: 1, TotalSittings: 1}
	sub, err := NewSittingBundle(tmpl, 1, "9000000002", "Ravi", "Pedicure", 900, 700, day(2025, time.June, 2), nil)
	require.NoError(t, err)

	require.NoError(t, sub.RedeemSitting(day(2025, time.June, 3), 11, "Meena"))
	err = sub.RedeemSitting(day(2025, time.June, 4), 12, "Kiran")
	assert.ErrorIs(t, err, ErrNoSittingsRemaining)

	assert.Equal(t, 1, sub.SittingsUsed)
	assert.Equal(t, 0, sub.RemainingSittings)
	assert.Len(t, sub.History, 2)
}
