package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/ports"
)

// WalletRepository persists value-wallet subscriptions as aggregates: the
// subscription row plus its append-only history move in one transaction.
// Mutating loads take a row lock so concurrent redemptions serialize instead
// of double-spending.
type WalletRepository struct {
	DB *db.Postgres
}

const walletColumns = `id, salon_id, customer_mobile, customer_name, template_id, template_name,
	initial_value, current_balance, paid_amount, assigned_date, expiry_date, status, created_at, updated_at`

// Create inserts a freshly activated wallet with its opening history. It
// enforces at most one Active wallet per (salon, customer).
func (r WalletRepository) Create(ctx context.Context, sub *domain.ValueWalletSubscription) (*domain.ValueWalletSubscription, error) {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var existing int64
	err = tx.QueryRow(ctx, `
		SELECT id FROM wallet_subscriptions
		WHERE salon_id=$1 AND customer_mobile=$2 AND status='Active'
		LIMIT 1
		FOR UPDATE
	`, sub.SalonID, sub.CustomerMobile).Scan(&existing)
	if err == nil {
		return nil, domain.ErrActiveWalletExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO wallet_subscriptions
		(salon_id, customer_mobile, customer_name, template_id, template_name,
		 initial_value, current_balance, paid_amount, assigned_date, expiry_date, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11, now(), now())
		RETURNING id, created_at, updated_at
	`, sub.SalonID, sub.CustomerMobile, sub.CustomerName, sub.TemplateID, sub.TemplateName,
		sub.InitialValue, sub.CurrentBalance, sub.PaidAmount, sub.AssignedDate, sub.ExpiryDate, string(sub.Status))
	if err := row.Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
		return nil, err
	}

	if err := r.insertEntries(ctx, tx, sub.ID, sub.History); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return sub, nil
}

// GetForUpdateWith loads the aggregate under a row lock inside tx.
func (r WalletRepository) GetForUpdateWith(ctx context.Context, tx pgx.Tx, id int64) (*domain.ValueWalletSubscription, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+walletColumns+`
		FROM wallet_subscriptions
		WHERE id=$1
		FOR UPDATE
	`, id)
	sub, err := scanWallet(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	if err := r.loadHistory(ctx, tx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ActiveForCustomerWith finds the customer's Active wallet for a salon under a
// row lock. With legacy duplicates the oldest assignment wins, so the choice
// is deterministic.
func (r WalletRepository) ActiveForCustomerWith(ctx context.Context, tx pgx.Tx, salonID int64, mobile string) (*domain.ValueWalletSubscription, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+walletColumns+`
		FROM wallet_subscriptions
		WHERE salon_id=$1 AND customer_mobile=$2 AND status='Active'
		ORDER BY assigned_date ASC, id ASC
		LIMIT 1
		FOR UPDATE
	`, salonID, mobile)
	sub, err := scanWallet(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	if err := r.loadHistory(ctx, tx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// SaveMutationWith persists a redemption applied to the aggregate in memory:
// the balance/status update and the new history entries land together.
func (r WalletRepository) SaveMutationWith(ctx context.Context, tx pgx.Tx, sub *domain.ValueWalletSubscription, newEntries []domain.WalletEntry) error {
	tag, err := tx.Exec(ctx, `
		UPDATE wallet_subscriptions
		SET current_balance=$2, status=$3, updated_at=now()
		WHERE id=$1
	`, sub.ID, sub.CurrentBalance, string(sub.Status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return r.insertEntries(ctx, tx, sub.ID, newEntries)
}

func (r WalletRepository) Get(ctx context.Context, id int64) (*domain.ValueWalletSubscription, error) {
	row := r.DB.Pool.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallet_subscriptions WHERE id=$1`, id)
	sub, err := scanWallet(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	if err := r.loadHistory(ctx, r.DB.Pool, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (r WalletRepository) ListBySalon(ctx context.Context, salonID int64) ([]domain.ValueWalletSubscription, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+walletColumns+`
		FROM wallet_subscriptions
		WHERE $1 = 0 OR salon_id=$1
		ORDER BY assigned_date DESC, id DESC
	`, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.ValueWalletSubscription
	var ids []int64
	for rows.Next() {
		sub, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		ids = append(ids, sub.ID)
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return subs, nil
	}

	entryRows, err := r.DB.Pool.Query(ctx, `
		SELECT subscription_id, seq, entry_date, amount, description, balance_after, items
		FROM wallet_history
		WHERE subscription_id = ANY($1)
		ORDER BY subscription_id, seq
	`, ids)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	bySub := make(map[int64][]domain.WalletEntry)
	for entryRows.Next() {
		var subID int64
		e, err := scanWalletEntry(entryRows, &subID)
		if err != nil {
			return nil, err
		}
		bySub[subID] = append(bySub[subID], e)
	}
	if err := entryRows.Err(); err != nil {
		return nil, err
	}
	for i := range subs {
		subs[i].History = bySub[subs[i].ID]
	}
	return subs, nil
}

func (r WalletRepository) insertEntries(ctx context.Context, q ports.Querier, subID int64, entries []domain.WalletEntry) error {
	for _, e := range entries {
		var items any
		if len(e.Items) > 0 {
			data, err := json.Marshal(e.Items)
			if err != nil {
				return err
			}
			items = data
		}
		if _, err := q.Exec(ctx, `
			INSERT INTO wallet_history (subscription_id, seq, entry_date, amount, description, balance_after, items)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
		`, subID, e.Seq, e.Date, e.Amount, e.Description, e.BalanceAfter, items); err != nil {
			return err
		}
	}
	return nil
}

func (r WalletRepository) loadHistory(ctx context.Context, q ports.Querier, sub *domain.ValueWalletSubscription) error {
	rows, err := q.Query(ctx, `
		SELECT subscription_id, seq, entry_date, amount, description, balance_after, items
		FROM wallet_history
		WHERE subscription_id=$1
		ORDER BY seq
	`, sub.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var subID int64
		e, err := scanWalletEntry(rows, &subID)
		if err != nil {
			return err
		}
		sub.History = append(sub.History, e)
	}
	return rows.Err()
}

func scanWallet(row interface {
	Scan(dest ...any) error
}) (*domain.ValueWalletSubscription, error) {
	var (
		sub    domain.ValueWalletSubscription
		status string
	)
	if err := row.Scan(
		&sub.ID, &sub.SalonID, &sub.CustomerMobile, &sub.CustomerName, &sub.TemplateID, &sub.TemplateName,
		&sub.InitialValue, &sub.CurrentBalance, &sub.PaidAmount, &sub.AssignedDate, &sub.ExpiryDate, &status,
		&sub.CreatedAt, &sub.UpdatedAt,
	); err != nil {
		return nil, err
	}
	sub.Status = domain.WalletStatus(status)
	return &sub, nil
}

func scanWalletEntry(row interface {
	Scan(dest ...any) error
}, subID *int64) (domain.WalletEntry, error) {
	var (
		e     domain.WalletEntry
		items []byte
	)
	if err := row.Scan(subID, &e.Seq, &e.Date, &e.Amount, &e.Description, &e.BalanceAfter, &items); err != nil {
		return e, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &e.Items); err != nil {
			return e, err
		}
	}
	return e, nil
}
