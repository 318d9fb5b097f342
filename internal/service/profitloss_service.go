package service

import (
	"context"
	"errors"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

type expenseSource interface {
	ListMonth(ctx context.Context, salonID int64, month time.Month, year int) ([]domain.Expense, error)
}

// ProfitLossService derives a salon's monthly statement. Only the fixed costs
// are stored; income and the computed expense sides are rebuilt from the
// ledgers on every read.
type ProfitLossService struct {
	records  repository.ProfitLossRepository
	invoices invoiceSource
	wallets  walletSource
	sittings sittingSource
	expenses expenseSource
	payroll  *PayrollService
}

func NewProfitLossService(
	records repository.ProfitLossRepository,
	invoices invoiceSource,
	wallets walletSource,
	sittings sittingSource,
	expenses expenseSource,
	payroll *PayrollService,
) *ProfitLossService {
	return &ProfitLossService{
		records:  records,
		invoices: invoices,
		wallets:  wallets,
		sittings: sittings,
		expenses: expenses,
		payroll:  payroll,
	}
}

// Statement is one salon-month profit and loss view.
type Statement struct {
	SalonID       int64                   `json:"salonId"`
	Month         time.Month              `json:"month"`
	Year          int                     `json:"year"`
	ServiceIncome float64                 `json:"serviceIncome"`
	PackageIncome float64                 `json:"packageIncome"`
	TotalIncome   float64                 `json:"totalIncome"`
	FixedCosts    float64                 `json:"fixedCosts"`
	SalaryExpense float64                 `json:"salaryExpense"`
	IncentivePaid float64                 `json:"incentivePaid"`
	CashExpenses  float64                 `json:"cashExpenses"`
	TotalExpenses float64                 `json:"totalExpenses"`
	NetProfit     float64                 `json:"netProfit"`
	Record        domain.ProfitLossRecord `json:"record"`
}

// SaveRecord stores the hand-entered fixed costs; the latest write wins.
func (s *ProfitLossService) SaveRecord(ctx context.Context, rec domain.ProfitLossRecord) (*domain.ProfitLossRecord, error) {
	return s.records.Upsert(ctx, rec)
}

// Statement composes the month's statement from the stored record and the
// live ledgers.
func (s *ProfitLossService) Statement(ctx context.Context, salonID int64, month time.Month, year int) (*Statement, error) {
	rec, err := s.records.Get(ctx, salonID, month, year)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		rec = &domain.ProfitLossRecord{SalonID: salonID, Month: month, Year: year}
	}

	invoices, err := s.invoices.ListMonth(ctx, salonID, month, year)
	if err != nil {
		return nil, err
	}
	wallets, err := s.wallets.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	sittings, err := s.sittings.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListMonth(ctx, salonID, month, year)
	if err != nil {
		return nil, err
	}
	payroll, err := s.payroll.Report(ctx, salonID, month, year)
	if err != nil {
		return nil, err
	}

	stmt := ComposeStatement(*rec, invoices, wallets, sittings, expenses, payroll.Lines)
	return &stmt, nil
}

// ComposeStatement derives the statement from its inputs.
//
// Income counts direct invoice totals plus the paid amount of every package
// assigned in the month; wallet-settled invoices are excluded because their
// revenue was recognized when the package was sold. Expenses stack the fixed
// costs, earned salaries (base less deductions plus overtime), incentives and
// the cash ledger.
func ComposeStatement(
	rec domain.ProfitLossRecord,
	invoices []domain.Invoice,
	wallets []domain.ValueWalletSubscription,
	sittings []domain.SittingBundleSubscription,
	expenses []domain.Expense,
	payroll []PayrollLine,
) Statement {
	stmt := Statement{SalonID: rec.SalonID, Month: rec.Month, Year: rec.Year, Record: rec}

	for _, inv := range invoices {
		if inv.PaymentMode == domain.PaymentWallet {
			continue
		}
		stmt.ServiceIncome += inv.Total
	}
	for _, sub := range wallets {
		if inMonth(sub.AssignedDate, rec.Month, rec.Year) {
			stmt.PackageIncome += sub.PaidAmount
		}
	}
	for _, sub := range sittings {
		if inMonth(sub.AssignedDate, rec.Month, rec.Year) {
			stmt.PackageIncome += sub.PaidAmount
		}
	}
	stmt.TotalIncome = stmt.ServiceIncome + stmt.PackageIncome

	stmt.FixedCosts = rec.FixedCosts()
	for _, line := range payroll {
		stmt.SalaryExpense += line.BaseSalary - line.Deduction + line.OvertimePay
		stmt.IncentivePaid += line.Incentive
	}
	for _, e := range expenses {
		stmt.CashExpenses += e.ExpenseAmount
	}
	stmt.TotalExpenses = stmt.FixedCosts + stmt.SalaryExpense + stmt.IncentivePaid + stmt.CashExpenses
	stmt.NetProfit = stmt.TotalIncome - stmt.TotalExpenses
	return stmt
}
