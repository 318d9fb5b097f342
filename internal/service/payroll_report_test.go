package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

type fakeStaffDirectory struct {
	members []domain.Staff
}

func (f fakeStaffDirectory) ListBySalon(_ context.Context, _ int64, _ bool) ([]domain.Staff, error) {
	return f.members, nil
}

type fakeAttendance struct {
	byStaff map[int64][]domain.AttendanceMark
}

func (f fakeAttendance) ListMonth(_ context.Context, staffID int64, _ time.Month, _ int) ([]domain.AttendanceMark, error) {
	return f.byStaff[staffID], nil
}

type fakeInvoices struct {
	invoices []domain.Invoice
}

func (f fakeInvoices) ListMonth(_ context.Context, _ int64, _ time.Month, _ int) ([]domain.Invoice, error) {
	return f.invoices, nil
}

type fakeWallets struct {
	subs []domain.ValueWalletSubscription
}

func (f fakeWallets) ListBySalon(_ context.Context, _ int64) ([]domain.ValueWalletSubscription, error) {
	return f.subs, nil
}

type fakeSittings struct {
	subs []domain.SittingBundleSubscription
}

func (f fakeSittings) ListBySalon(_ context.Context, _ int64) ([]domain.SittingBundleSubscription, error) {
	return f.subs, nil
}

func TestPayrollReport(t *testing.T) {
	stylist := domain.Staff{ID: 1, Name: "Meena", Role: domain.StaffStylist, BaseSalary: 25000, Status: domain.StaffActive}
	housekeeping := domain.Staff{ID: 2, Name: "Raju", Role: domain.StaffHousekeeping, BaseSalary: 12000, Status: domain.StaffActive}

	invoices := []domain.Invoice{{
		Subtotal:    140000,
		PaymentMode: domain.PaymentCash,
		Date:        day(2025, time.June, 10),
		Items: []domain.InvoiceItem{
			{ServiceName: "Styling", Price: 140000, Quantity: 1, StaffID: 1},
		},
	}}

	commission := NewCommissionService(
		fakeInvoices{invoices: invoices},
		fakeWallets{},
		fakeSittings{},
		fakeStaffDirectory{members: []domain.Staff{stylist, housekeeping}},
	)
	payroll := NewPayrollService(
		fakeStaffDirectory{members: []domain.Staff{stylist, housekeeping}},
		fakeAttendance{byStaff: map[int64][]domain.AttendanceMark{
			1: {
				{Date: day(2025, time.June, 2), Status: domain.AttendanceLeave},
				{Date: day(2025, time.June, 3), Status: domain.AttendanceLeave},
				present(day(2025, time.June, 4), 9, 0, 20, 0),
			},
		}},
		commission,
	)

	report, err := payroll.Report(context.Background(), 1, time.June, 2025)
	require.NoError(t, err)
	require.Len(t, report.Lines, 2)

	meena := report.Lines[0]
	assert.Equal(t, int64(1), meena.StaffID)
	assert.Equal(t, 2, meena.LOPDays)
	assert.Equal(t, 2, meena.OvertimeHours)
	assert.InDelta(t, 140000, meena.AttributedSales, 1e-9)
	assert.InDelta(t, 1500, meena.Incentive, 0.01)
	// 25000 - 1666.67 deduction + 208.33 for two OT hours + 1500 incentive.
	assert.InDelta(t, 25041.67, meena.NetPayout, 0.01)

	raju := report.Lines[1]
	assert.Zero(t, raju.Incentive)
	assert.InDelta(t, 12000, raju.NetPayout, 1e-9)

	assert.InDelta(t, meena.NetPayout+raju.NetPayout, report.TotalPayout, 1e-9)
}
