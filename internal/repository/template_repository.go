package repository

import (
	"context"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/ports"
)

// TemplateRepository stores the read-mostly package catalog: value-wallet
// plans and sitting-bundle plans, each scoped to a set of salons.
type TemplateRepository struct {
	DB *db.Postgres
}

func (r TemplateRepository) ListValue(ctx context.Context, salonID int64) ([]domain.PackageTemplate, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, paid_amount, offered_value, salon_ids, created_at
		FROM package_templates
		WHERE deleted_at IS NULL AND ($1 = 0 OR $1 = ANY(salon_ids))
		ORDER BY paid_amount ASC
	`, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.PackageTemplate
	for rows.Next() {
		var t domain.PackageTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.PaidAmount, &t.OfferedValue, &t.SalonIDs, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r TemplateRepository) GetValue(ctx context.Context, id int64) (*domain.PackageTemplate, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, paid_amount, offered_value, salon_ids, created_at
		FROM package_templates
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	var t domain.PackageTemplate
	if err := row.Scan(&t.ID, &t.Name, &t.PaidAmount, &t.OfferedValue, &t.SalonIDs, &t.CreatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	return &t, nil
}

func (r TemplateRepository) CreateValue(ctx context.Context, t domain.PackageTemplate) (*domain.PackageTemplate, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO package_templates (name, paid_amount, offered_value, salon_ids, created_at)
		VALUES ($1,$2,$3,$4, now())
		RETURNING id, name, paid_amount, offered_value, salon_ids, created_at
	`, t.Name, t.PaidAmount, t.OfferedValue, t.SalonIDs)
	var out domain.PackageTemplate
	if err := row.Scan(&out.ID, &out.Name, &out.PaidAmount, &out.OfferedValue, &out.SalonIDs, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r TemplateRepository) DeleteValue(ctx context.Context, id int64) error {
	_, err := r.DB.Pool.Exec(ctx, `UPDATE package_templates SET deleted_at=now() WHERE id=$1`, id)
	return err
}

func (r TemplateRepository) ListSitting(ctx context.Context, salonID int64) ([]domain.SittingTemplate, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, paid_sittings, comp_sittings, total_sittings, salon_ids, created_at
		FROM sitting_templates
		WHERE deleted_at IS NULL AND ($1 = 0 OR $1 = ANY(salon_ids))
		ORDER BY total_sittings ASC
	`, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.SittingTemplate
	for rows.Next() {
		var t domain.SittingTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.PaidSittings, &t.CompSittings, &t.TotalSittings, &t.SalonIDs, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r TemplateRepository) GetSitting(ctx context.Context, id int64) (*domain.SittingTemplate, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, paid_sittings, comp_sittings, total_sittings, salon_ids, created_at
		FROM sitting_templates
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	var t domain.SittingTemplate
	if err := row.Scan(&t.ID, &t.Name, &t.PaidSittings, &t.CompSittings, &t.TotalSittings, &t.SalonIDs, &t.CreatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	return &t, nil
}

func (r TemplateRepository) CreateSitting(ctx context.Context, t domain.SittingTemplate) (*domain.SittingTemplate, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO sitting_templates (name, paid_sittings, comp_sittings, total_sittings, salon_ids, created_at)
		VALUES ($1,$2,$3,$4,$5, now())
		RETURNING id, name, paid_sittings, comp_sittings, total_sittings, salon_ids, created_at
	`, t.Name, t.PaidSittings, t.CompSittings, t.TotalSittings, t.SalonIDs)
	var out domain.SittingTemplate
	if err := row.Scan(&out.ID, &out.Name, &out.PaidSittings, &out.CompSittings, &out.TotalSittings, &out.SalonIDs, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r TemplateRepository) DeleteSitting(ctx context.Context, id int64) error {
	_, err := r.DB.Pool.Exec(ctx, `UPDATE sitting_templates SET deleted_at=now() WHERE id=$1`, id)
	return err
}

// AttachSalonAll adds a salon to every template's salon set. Sets already
// holding the salon are left untouched, so onboarding the same salon a second
// time never duplicates an id. Callers run it inside the onboarding
// transaction; the select locks the rows for its duration.
func (r TemplateRepository) AttachSalonAll(ctx context.Context, q ports.Querier, salonID int64) error {
	for _, table := range []string{"package_templates", "sitting_templates"} {
		if err := attachSalon(ctx, q, table, salonID); err != nil {
			return err
		}
	}
	return nil
}

func attachSalon(ctx context.Context, q ports.Querier, table string, salonID int64) error {
	rows, err := q.Query(ctx, `SELECT id, salon_ids FROM `+table+` WHERE deleted_at IS NULL FOR UPDATE`)
	if err != nil {
		return err
	}
	type update struct {
		id  int64
		ids []int64
	}
	var updates []update
	for rows.Next() {
		var u update
		if err := rows.Scan(&u.id, &u.ids); err != nil {
			rows.Close()
			return err
		}
		if next, changed := appendSalonOnce(u.ids, salonID); changed {
			updates = append(updates, update{id: u.id, ids: next})
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	for _, u := range updates {
		if _, err := q.Exec(ctx, `UPDATE `+table+` SET salon_ids=$1 WHERE id=$2`, u.ids, u.id); err != nil {
			return err
		}
	}
	return nil
}

// appendSalonOnce returns the set with salonID included, reporting whether it
// grew. Membership wins over append: an id never appears twice.
func appendSalonOnce(ids []int64, salonID int64) ([]int64, bool) {
	for _, id := range ids {
		if id == salonID {
			return ids, false
		}
	}
	return append(ids, salonID), true
}
