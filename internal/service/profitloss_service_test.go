package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

func TestComposeStatement(t *testing.T) {
	rec := domain.ProfitLossRecord{
		SalonID: 1,
		Month:   time.June,
		Year:    2025,
		Rent:    40000,
		Royalty: 5000,
		Others:  1000,
	}

	invoices := []domain.Invoice{
		{Total: 1050, PaymentMode: domain.PaymentUPI, Date: day(2025, time.June, 5)},
		{Total: 2100, PaymentMode: domain.PaymentCash, Date: day(2025, time.June, 6)},
		// Wallet-settled: revenue recognized at package sale, not here.
		{Total: 3000, PaymentMode: domain.PaymentWallet, Date: day(2025, time.June, 7)},
	}

	wallets := []domain.ValueWalletSubscription{
		{PaidAmount: 10000, AssignedDate: day(2025, time.June, 3)},
		{PaidAmount: 8000, AssignedDate: day(2025, time.May, 20)},
	}
	sittings := []domain.SittingBundleSubscription{
		{PaidAmount: 3500, AssignedDate: day(2025, time.June, 15)},
	}

	payroll := []PayrollLine{
		{BaseSalary: 25000, Deduction: 1666.67, OvertimePay: 312.5, Incentive: 1500},
		{BaseSalary: 15000},
	}

	expenses := []domain.Expense{
		{ExpenseAmount: 1200},
		{ExpenseAmount: 800},
	}

	stmt := ComposeStatement(rec, invoices, wallets, sittings, expenses, payroll)

	assert.InDelta(t, 3150, stmt.ServiceIncome, 1e-9)
	assert.InDelta(t, 13500, stmt.PackageIncome, 1e-9)
	assert.InDelta(t, 16650, stmt.TotalIncome, 1e-9)

	assert.InDelta(t, 46000, stmt.FixedCosts, 1e-9)
	assert.InDelta(t, 38645.83, stmt.SalaryExpense, 0.01)
	assert.InDelta(t, 1500, stmt.IncentivePaid, 1e-9)
	assert.InDelta(t, 2000, stmt.CashExpenses, 1e-9)
	assert.InDelta(t, 88145.83, stmt.TotalExpenses, 0.01)

	assert.InDelta(t, stmt.TotalIncome-stmt.TotalExpenses, stmt.NetProfit, 1e-9)
}

func TestComposeStatementEmptyMonth(t *testing.T) {
	rec := domain.ProfitLossRecord{SalonID: 1, Month: time.June, Year: 2025}

	stmt := ComposeStatement(rec, nil, nil, nil, nil, nil)

	assert.Zero(t, stmt.TotalIncome)
	assert.Zero(t, stmt.TotalExpenses)
	assert.Zero(t, stmt.NetProfit)
}
