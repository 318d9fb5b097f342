package service

import (
	"context"
	"errors"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

// ExpenseService keeps the daily cash ledger per outlet.
type ExpenseService struct {
	expenses repository.ExpenseRepository
}

func NewExpenseService(expenses repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// Record appends a cash-ledger row. The opening balance carries forward from
// the previous row when the caller leaves it at zero, and the closing balance
// is always derived, never trusted from input.
func (s *ExpenseService) Record(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	if e.OpeningBalance == 0 {
		last, err := s.expenses.Latest(ctx, e.SalonID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if last != nil {
			e.OpeningBalance = last.ClosingBalance
		}
	}
	e.ClosingBalance = e.OpeningBalance + e.CashReceived - e.ExpenseAmount - e.CashDeposited
	return s.expenses.Create(ctx, e)
}

func (s *ExpenseService) List(ctx context.Context, salonID int64, limit int) ([]domain.Expense, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.expenses.ListBySalon(ctx, salonID, limit)
}

func (s *ExpenseService) ListMonth(ctx context.Context, salonID int64, month time.Month, year int) ([]domain.Expense, error) {
	return s.expenses.ListMonth(ctx, salonID, month, year)
}
