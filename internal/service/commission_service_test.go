package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

func TestAttributeSalesDirectInvoiceDiscountSpread(t *testing.T) {
	invoices := []domain.Invoice{{
		Subtotal:    1000,
		Discount:    100,
		PaymentMode: domain.PaymentUPI,
		Date:        day(2025, time.June, 10),
		Items: []domain.InvoiceItem{
			{ServiceName: "Haircut", Price: 1000, Quantity: 1, StaffID: 1},
		},
	}}

	attributed := AttributeSales(invoices, nil, nil, time.June, 2025)
	assert.InDelta(t, 900, attributed[1], 1e-9)
}

func TestAttributeSalesDiscountSpreadsAcrossStaff(t *testing.T) {
	invoices := []domain.Invoice{{
		Subtotal:    1000,
		Discount:    100,
		PaymentMode: domain.PaymentCash,
		Date:        day(2025, time.June, 10),
		Items: []domain.InvoiceItem{
			{ServiceName: "Haircut", Price: 600, Quantity: 1, StaffID: 1},
			{ServiceName: "Beard", Price: 400, Quantity: 1, StaffID: 2},
		},
	}}

	attributed := AttributeSales(invoices, nil, nil, time.June, 2025)
	assert.InDelta(t, 540, attributed[1], 1e-9)
	assert.InDelta(t, 360, attributed[2], 1e-9)
}

func TestAttributeSalesZeroSubtotalAttributesAtFullRate(t *testing.T) {
	invoices := []domain.Invoice{{
		Subtotal:    0,
		PaymentMode: domain.PaymentCash,
		Date:        day(2025, time.June, 10),
		Items: []domain.InvoiceItem{
			{ServiceName: "Haircut", Price: 500, Quantity: 1, StaffID: 1},
		},
	}}

	attributed := AttributeSales(invoices, nil, nil, time.June, 2025)
	assert.InDelta(t, 500, attributed[1], 1e-9)
}

func TestAttributeSalesWalletInvoiceUsesFlatFactor(t *testing.T) {
	invoices := []domain.Invoice{{
		Subtotal:    1000,
		PaymentMode: domain.PaymentWallet,
		Date:        day(2025, time.June, 10),
		Items: []domain.InvoiceItem{
			{ServiceName: "Haircut", Price: 1000, Quantity: 1, StaffID: 1},
		},
	}}

	attributed := AttributeSales(invoices, nil, nil, time.June, 2025)
	assert.InDelta(t, 600, attributed[1], 1e-9)
}

func TestAttributeSalesSkipsWalletUsageEntries(t *testing.T) {
	staffID := int64(3)
	tmpl := domain.PackageTemplate{ID: 1, Name: "Gold", PaidAmount: 10000, OfferedValue: 15000}
	sub, err := domain.NewValueWallet(tmpl, 1, "9000000001", "Asha", day(2025, time.June, 2),
		[]domain.WalletEntryItem{{ServiceName: "Spa", Quantity: 1, Price: 2000, StaffID: &staffID}})
	require.NoError(t, err)

	// The usage entry is settled by an invoice elsewhere; counting it here
	// would double it.
	_, err = sub.Redeem(day(2025, time.June, 12), "INV-1-00009",
		[]domain.WalletEntryItem{{ServiceName: "Facial", Quantity: 1, Price: 5000, StaffID: &staffID}})
	require.NoError(t, err)

	attributed := AttributeSales(nil, []domain.ValueWalletSubscription{*sub}, nil, time.June, 2025)
	assert.InDelta(t, 1200, attributed[staffID], 1e-9)
}

func TestAttributeSalesSittingRedemptions(t *testing.T) {
	tmpl := domain.SittingTemplate{ID: 2, Name: "Spa x6", PaidSittings: 5, CompSittings: 1, TotalSittings: 6}
	sub, err := domain.NewSittingBundle(tmpl, 1, "9000000002", "Ravi", "Hair Spa", 800, 3500, day(2025, time.June, 2), nil)
	require.NoError(t, err)

	require.NoError(t, sub.RedeemSitting(day(2025, time.June, 5), 4, "Meena"))
	require.NoError(t, sub.RedeemSitting(day(2025, time.June, 20), 4, "Meena"))
	require.NoError(t, sub.RedeemSitting(day(2025, time.July, 1), 4, "Meena"))

	attributed := AttributeSales(nil, nil, []domain.SittingBundleSubscription{*sub}, time.June, 2025)
	// Two June redemptions at 800 x 0.6; the July one belongs to next month.
	assert.InDelta(t, 960, attributed[4], 1e-9)
}

func TestAttributeSalesIgnoresOtherMonths(t *testing.T) {
	invoices := []domain.Invoice{{
		Subtotal:    500,
		PaymentMode: domain.PaymentCash,
		Date:        day(2025, time.May, 31),
		Items: []domain.InvoiceItem{
			{ServiceName: "Haircut", Price: 500, Quantity: 1, StaffID: 1},
		},
	}}

	attributed := AttributeSales(invoices, nil, nil, time.June, 2025)
	assert.Empty(t, attributed)
}
