package repository

import (
	"context"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

type ExpenseRepository struct {
	DB *db.Postgres
}

const expenseColumns = `id, salon_id, entry_date, opening_balance, cash_received, category,
	expense_amount, cash_deposited, closing_balance, recorded_by, created_at`

func (r ExpenseRepository) Create(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO expenses
		(salon_id, entry_date, opening_balance, cash_received, category,
		 expense_amount, cash_deposited, closing_balance, recorded_by, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now())
		RETURNING `+expenseColumns+`
	`, e.SalonID, e.Date, e.OpeningBalance, e.CashReceived, e.Category,
		e.ExpenseAmount, e.CashDeposited, e.ClosingBalance, e.RecordedBy)
	out, err := scanExpense(row)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r ExpenseRepository) ListBySalon(ctx context.Context, salonID int64, limit int) ([]domain.Expense, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE salon_id=$1
		ORDER BY entry_date DESC, id DESC
		LIMIT $2
	`, salonID, limit)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

func (r ExpenseRepository) ListMonth(ctx context.Context, salonID int64, month time.Month, year int) ([]domain.Expense, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE salon_id=$1 AND entry_date >= $2 AND entry_date < $2 + interval '1 month'
		ORDER BY entry_date ASC, id ASC
	`, salonID, start)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

// Latest returns the most recent ledger row for a salon, used to carry the
// closing balance forward as the next day's opening balance.
func (r ExpenseRepository) Latest(ctx context.Context, salonID int64) (*domain.Expense, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE salon_id=$1
		ORDER BY entry_date DESC, id DESC
		LIMIT 1
	`, salonID)
	out, err := scanExpense(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return out, nil
}

func collectExpenses(rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}) ([]domain.Expense, error) {
	defer rows.Close()
	var items []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func scanExpense(row interface {
	Scan(dest ...any) error
}) (*domain.Expense, error) {
	var e domain.Expense
	if err := row.Scan(&e.ID, &e.SalonID, &e.Date, &e.OpeningBalance, &e.CashReceived, &e.Category,
		&e.ExpenseAmount, &e.CashDeposited, &e.ClosingBalance, &e.RecordedBy, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
