package repository

import (
	"context"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

type CustomerRepository struct {
	DB *db.Postgres
}

func (r CustomerRepository) Upsert(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO customers (mobile, name, created_at)
		VALUES ($1,$2, now())
		ON CONFLICT (mobile) DO UPDATE SET name=EXCLUDED.name
		RETURNING mobile, name, created_at
	`, c.Mobile, c.Name)
	var out domain.Customer
	if err := row.Scan(&out.Mobile, &out.Name, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r CustomerRepository) Get(ctx context.Context, mobile string) (*domain.Customer, error) {
	row := r.DB.Pool.QueryRow(ctx, `SELECT mobile, name, created_at FROM customers WHERE mobile=$1`, mobile)
	var c domain.Customer
	if err := row.Scan(&c.Mobile, &c.Name, &c.CreatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	return &c, nil
}

func (r CustomerRepository) List(ctx context.Context, limit int) ([]domain.Customer, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT mobile, name, created_at
		FROM customers
		ORDER BY name ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.Mobile, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
