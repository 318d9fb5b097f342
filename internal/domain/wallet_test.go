package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walletTemplate() PackageTemplate {
	return PackageTemplate{ID: 7, Name: "Gold 10K", PaidAmount: 10000, OfferedValue: 15000}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewValueWallet(t *testing.T) {
	assigned := day(2025, time.June, 2)

	sub, err := NewValueWallet(walletTemplate(), 1, "9000000001", "Asha", assigned, nil)
	require.NoError(t, err)

	assert.Equal(t, 15000.0, sub.InitialValue)
	assert.Equal(t, 15000.0, sub.CurrentBalance)
	assert.Equal(t, WalletActive, sub.Status)
	assert.Equal(t, assigned.AddDate(1, 0, 0), sub.ExpiryDate)

	require.Len(t, sub.History, 1)
	entry := sub.History[0]
	assert.Equal(t, 1, entry.Seq)
	assert.Equal(t, 15000.0, entry.Amount)
	assert.Equal(t, "Wallet Activation: Gold 10K", entry.Description)
	assert.Equal(t, 15000.0, entry.BalanceAfter)
	assert.False(t, entry.IsUsage())
}

func TestNewValueWalletWithInitialConsumption(t *testing.T) {
	items := []WalletEntryItem{
		{ServiceName: "Haircut", Quantity: 2, Price: 500},
		{ServiceName: "Spa", Quantity: 1, Price: 1000},
	}

	sub, err := NewValueWallet(walletTemplate(), 1, "9000000001", "Asha", day(2025, time.June, 2), items)
	require.NoError(t, err)

	// 2000 subtotal + 5% GST.
	assert.InDelta(t, 15000-2100, sub.CurrentBalance, 1e-9)
	require.Len(t, sub.History, 2)

	consumption := sub.History[1]
	assert.Equal(t, 2, consumption.Seq)
	assert.InDelta(t, -2100, consumption.Amount, 1e-9)
	assert.Equal(t, "Initial Service Consumption", consumption.Description)
	assert.False(t, consumption.IsUsage())
	assert.Equal(t, items, consumption.Items)

	assert.InDelta(t, sub.CurrentBalance, sub.ReplayBalance(), 1e-9)
}

func TestNewValueWalletRejectsOversizedConsumption(t *testing.T) {
	tmpl := PackageTemplate{ID: 2, Name: "Mini", PaidAmount: 800, OfferedValue: 1000}
	items := []WalletEntryItem{{ServiceName: "Spa", Quantity: 1, Price: 1000}}

	_, err := NewValueWallet(tmpl, 1, "9000000001", "Asha", day(2025, time.June, 2), items)
	assert.ErrorIs(t, err, ErrInsufficientWalletValue)
}

func TestRedeem(t *testing.T) {
	sub, err := NewValueWallet(walletTemplate(), 1, "9000000001", "Asha", day(2025, time.June, 2), nil)
	require.NoError(t, err)

	items := []WalletEntryItem{{ServiceName: "Haircut", Quantity: 1, Price: 1000}}
	deducted, err := sub.Redeem(day(2025, time.June, 10), "INV-1-00042", items)
	require.NoError(t, err)

	assert.InDelta(t, 1050, deducted, 1e-9)
	assert.InDelta(t, 13950, sub.CurrentBalance, 1e-9)
	assert.Equal(t, WalletActive, sub.Status)

	require.Len(t, sub.History, 2)
	usage := sub.History[1]
	assert.Equal(t, "Wallet Usage: INV-1-00042", usage.Description)
	assert.True(t, usage.IsUsage())
	assert.InDelta(t, 13950, usage.BalanceAfter, 1e-9)
	assert.InDelta(t, sub.CurrentBalance, sub.ReplayBalance(), 1e-9)
}

func TestRedeemInsufficientBalanceLeavesWalletUntouched(t *testing.T) {
	tmpl := PackageTemplate{ID: 3, Name: "Small", PaidAmount: 500, OfferedValue: 600}
	sub, err := NewValueWallet(tmpl, 1, "9000000001", "Asha", day(2025, time.June, 2), nil)
	require.NoError(t, err)

	items := []WalletEntryItem{{ServiceName: "Spa", Quantity: 1, Price: 1000}}
	_, err = sub.Redeem(day(2025, time.June, 10), "INV-1-00001", items)
	assert.ErrorIs(t, err, ErrInsufficientWalletBalance)

	assert.Equal(t, 600.0, sub.CurrentBalance)
	assert.Equal(t, WalletActive, sub.Status)
	assert.Len(t, sub.History, 1)
}

func TestRedeemToZeroMarksFullyConsumed(t *testing.T) {
	tmpl := PackageTemplate{ID: 4, Name: "Exact", PaidAmount: 1000, OfferedValue: 1050}
	sub, err := NewValueWallet(tmpl, 1, "9000000001", "Asha", day(2025, time.June, 2), nil)
	require.NoError(t, err)

	items := []WalletEntryItem{{ServiceName: "Facial", Quantity: 1, Price: 1000}}
	_, err = sub.Redeem(day(2025, time.June, 10), "INV-1-00002", items)
	require.NoError(t, err)

	assert.InDelta(t, 0, sub.CurrentBalance, 1e-9)
	assert.Equal(t, WalletFullyConsumed, sub.Status)
	assert.InDelta(t, sub.CurrentBalance, sub.ReplayBalance(), 1e-9)
}

func TestReplayBalanceAcrossManyRedemptions(t *testing.T) {
	sub, err := NewValueWallet(walletTemplate(), 1, "9000000001", "Asha",
		day(2025, time.June, 2), []WalletEntryItem{{ServiceName: "Haircut", Quantity: 1, Price: 400}})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := sub.Redeem(day(2025, time.June, 3+i), "", []WalletEntryItem{
			{ServiceName: "Trim", Quantity: 1, Price: 300},
		})
		require.NoError(t, err)
	}

	assert.Len(t, sub.History, 7)
	for i, e := range sub.History {
		assert.Equal(t, i+1, e.Seq)
	}
	assert.InDelta(t, sub.CurrentBalance, sub.ReplayBalance(), 1e-9)
}

func TestWalletDeduction(t *testing.T) {
	items := []WalletEntryItem{
		{ServiceName: "Haircut", Quantity: 2, Price: 500},
		{ServiceName: "Beard", Quantity: 1, Price: 200},
	}
	assert.InDelta(t, 1260, WalletDeduction(items), 1e-9)
	assert.Zero(t, WalletDeduction(nil))
}
