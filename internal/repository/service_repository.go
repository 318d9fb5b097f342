package repository

import (
	"context"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

type ServiceRepository struct {
	DB *db.Postgres
}

func (r ServiceRepository) List(ctx context.Context) ([]domain.CatalogService, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, category, base_price, created_at, updated_at
		FROM catalog_services
		WHERE deleted_at IS NULL
		ORDER BY category ASC, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.CatalogService
	for rows.Next() {
		var s domain.CatalogService
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.BasePrice, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r ServiceRepository) Upsert(ctx context.Context, s domain.CatalogService) (*domain.CatalogService, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO catalog_services (id, name, category, base_price, created_at, updated_at)
		VALUES (COALESCE($1, nextval('catalog_services_id_seq')), $2,$3,$4, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			name=EXCLUDED.name,
			category=EXCLUDED.category,
			base_price=EXCLUDED.base_price,
			updated_at=now(),
			deleted_at=NULL
		RETURNING id, name, category, base_price, created_at, updated_at
	`, nullableID(s.ID), s.Name, s.Category, s.BasePrice)
	var out domain.CatalogService
	if err := row.Scan(&out.ID, &out.Name, &out.Category, &out.BasePrice, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r ServiceRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.Pool.Exec(ctx, `UPDATE catalog_services SET deleted_at=now() WHERE id=$1`, id)
	return err
}
