package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

func TestWalletSettlementSnapshot(t *testing.T) {
	tpl := domain.PackageTemplate{ID: 7, Name: "Gold Wallet", PaidAmount: 10000, OfferedValue: 15000}
	sub, err := domain.NewValueWallet(tpl, 1, "9000000001", "Asha", day(2025, time.June, 1), nil)
	require.NoError(t, err)
	sub.ID = 42

	previous := sub.CurrentBalance
	_, err = sub.Redeem(day(2025, time.June, 10), "INV-1-00007", []domain.WalletEntryItem{
		{ServiceName: "Haircut", Quantity: 2, Price: 500},
	})
	require.NoError(t, err)

	snap := settlementFor(sub, previous)
	assert.Equal(t, int64(42), snap.SubscriptionID)
	assert.Equal(t, "Gold Wallet", snap.PackageName)
	// The snapshot carries the package's purchase price, not the 1050 debit.
	assert.InDelta(t, 10000, snap.PaidAmount, 1e-9)
	assert.InDelta(t, 15000, snap.PreviousBalance, 1e-9)
	assert.InDelta(t, 13950, snap.RemainingBalance, 1e-9)
}
