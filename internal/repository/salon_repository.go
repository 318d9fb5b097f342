package repository

import (
	"context"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/ports"
)

type SalonRepository struct {
	DB *db.Postgres
}

func (r SalonRepository) List(ctx context.Context) ([]domain.Salon, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, address, contact, gst_number, manager_name, created_at, updated_at
		FROM salons
		WHERE deleted_at IS NULL
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Salon
	for rows.Next() {
		var s domain.Salon
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Contact, &s.GSTNumber, &s.ManagerName, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r SalonRepository) Get(ctx context.Context, id int64) (*domain.Salon, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, address, contact, gst_number, manager_name, created_at, updated_at
		FROM salons
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	var s domain.Salon
	if err := row.Scan(&s.ID, &s.Name, &s.Address, &s.Contact, &s.GSTNumber, &s.ManagerName, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	return &s, nil
}

// CreateWith inserts a salon using the supplied querier so onboarding can run
// inside the same transaction that clones package templates.
func (r SalonRepository) CreateWith(ctx context.Context, q ports.Querier, s domain.Salon) (*domain.Salon, error) {
	row := q.QueryRow(ctx, `
		INSERT INTO salons (name, address, contact, gst_number, manager_name, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, now(), now())
		RETURNING id, name, address, contact, gst_number, manager_name, created_at, updated_at
	`, s.Name, s.Address, s.Contact, s.GSTNumber, s.ManagerName)
	var out domain.Salon
	if err := row.Scan(&out.ID, &out.Name, &out.Address, &out.Contact, &out.GSTNumber, &out.ManagerName, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r SalonRepository) Update(ctx context.Context, s domain.Salon) (*domain.Salon, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE salons
		SET name=$2, address=$3, contact=$4, gst_number=$5, manager_name=$6, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, name, address, contact, gst_number, manager_name, created_at, updated_at
	`, s.ID, s.Name, s.Address, s.Contact, s.GSTNumber, s.ManagerName)
	var out domain.Salon
	if err := row.Scan(&out.ID, &out.Name, &out.Address, &out.Contact, &out.GSTNumber, &out.ManagerName, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	return &out, nil
}
