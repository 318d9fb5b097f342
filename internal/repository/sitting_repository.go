package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/ports"
)

// SittingRepository persists sitting-bundle subscriptions the same way
// WalletRepository persists wallets: subscription plus history in one
// transaction, row locks on mutating loads.
type SittingRepository struct {
	DB *db.Postgres
}

const sittingColumns = `id, salon_id, customer_mobile, customer_name, template_id, template_name,
	service_name, unit_price, total_sittings, sittings_used, remaining_sittings, paid_amount,
	assigned_date, expiry_date, status, created_at, updated_at`

func (r SittingRepository) Create(ctx context.Context, sub *domain.SittingBundleSubscription) (*domain.SittingBundleSubscription, error) {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO sitting_subscriptions
		(salon_id, customer_mobile, customer_name, template_id, template_name,
		 service_name, unit_price, total_sittings, sittings_used, remaining_sittings, paid_amount,
		 assigned_date, expiry_date, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14, now(), now())
		RETURNING id, created_at, updated_at
	`, sub.SalonID, sub.CustomerMobile, sub.CustomerName, sub.TemplateID, sub.TemplateName,
		sub.ServiceName, sub.UnitPrice, sub.TotalSittings, sub.SittingsUsed, sub.RemainingSittings, sub.PaidAmount,
		sub.AssignedDate, sub.ExpiryDate, string(sub.Status))
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

func (r SittingRepository) GetForUpdateWith(ctx context.Context, tx pgx.Tx, id int64) (*domain.SittingBundleSubscription, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+sittingColumns+`
		FROM sitting_subscriptions
		WHERE id=$1
		FOR UPDATE
	`, id)
	sub, err := scanSitting(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	if err := r.loadHistory(ctx, tx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (r SittingRepository) SaveMutationWith(ctx context.Context, tx pgx.Tx, sub *domain.SittingBundleSubscription, newEntries []domain.SittingEntry) error {
	tag, err := tx.Exec(ctx, `
		UPDATE sitting_subscriptions
		SET sittings_used=$2, remaining_sittings=$3, status=$4, updated_at=now()
		WHERE id=$1
	`, sub.ID, sub.SittingsUsed, sub.RemainingSittings, string(sub.Status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return r.insertEntries(ctx, tx, sub.ID, newEntries)
}

func (r SittingRepository) Get(ctx context.Context, id int64) (*domain.SittingBundleSubscription, error) {
	row := r.DB.Pool.QueryRow(ctx, `SELECT `+sittingColumns+` FROM sitting_subscriptions WHERE id=$1`, id)
	sub, err := scanSitting(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	if err := r.loadHistory(ctx, r.DB.Pool, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (r SittingRepository) ListBySalon(ctx context.Context, salonID int64) ([]domain.SittingBundleSubscription, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+sittingColumns+`
		FROM sitting_subscriptions
		WHERE $1 = 0 OR salon_id=$1
		ORDER BY assigned_date DESC, id DESC
	`, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.SittingBundleSubscription
	var ids []int64
	for rows.Next() {
		sub, err := scanSitting(rows)
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
		SELECT subscription_id, seq, entry_date, staff_id, staff_name, entry_type
		FROM sitting_history
		WHERE subscription_id = ANY($1)
		ORDER BY subscription_id, seq
	`, ids)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	bySub := make(map[int64][]domain.SittingEntry)
	for entryRows.Next() {
		var subID int64
		e, err := scanSittingEntry(entryRows, &subID)
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

func (r SittingRepository) insertEntries(ctx context.Context, q ports.Querier, subID int64, entries []domain.SittingEntry) error {
	for _, e := range entries {
		if _, err := q.Exec(ctx, `
			INSERT INTO sitting_history (subscription_id, seq, entry_date, staff_id, staff_name, entry_type)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, subID, e.Seq, e.Date, e.StaffID, e.StaffName, string(e.Type)); err != nil {
			return err
		}
	}
	return nil
}

func (r SittingRepository) loadHistory(ctx context.Context, q ports.Querier, sub *domain.SittingBundleSubscription) error {
	rows, err := q.Query(ctx, `
		SELECT subscription_id, seq, entry_date, staff_id, staff_name, entry_type
		FROM sitting_history
		WHERE subscription_id=$1
		ORDER BY seq
	`, sub.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var subID int64
		e, err := scanSittingEntry(rows, &subID)
		if err != nil {
			return err
		}
		sub.History = append(sub.History, e)
	}
	return rows.Err()
}

func scanSitting(row interface {
	Scan(dest ...any) error
}) (*domain.SittingBundleSubscription, error) {
	var (
		sub    domain.SittingBundleSubscription
		status string
	)
	if err := row.Scan(
		&sub.ID, &sub.SalonID, &sub.CustomerMobile, &sub.CustomerName, &sub.TemplateID, &sub.TemplateName,
		&sub.ServiceName, &sub.UnitPrice, &sub.TotalSittings, &sub.SittingsUsed, &sub.RemainingSittings, &sub.PaidAmount,
		&sub.AssignedDate, &sub.ExpiryDate, &status, &sub.CreatedAt, &sub.UpdatedAt,
	); err != nil {
		return nil, err
	}
	sub.Status = domain.SittingStatus(status)
	return &sub, nil
}

func scanSittingEntry(row interface {
	Scan(dest ...any) error
}, subID *int64) (domain.SittingEntry, error) {
	var (
		e         domain.SittingEntry
		entryType string
	)
	if err := row.Scan(subID, &e.Seq, &e.Date, &e.StaffID, &e.StaffName, &entryType); err != nil {
		return e, err
	}
	e.Type = domain.SittingEntryType(entryType)
	return e, nil
}
