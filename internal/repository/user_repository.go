package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/ports"
)

type UserRepository struct {
	DB *db.Postgres
}

type CreateUserParams struct {
	Name         string
	Username     string
	Role         domain.UserRole
	PasswordHash *string
	SalonIDs     []int64
}

func (r UserRepository) Create(ctx context.Context, p CreateUserParams) (*domain.User, error) {
	return r.CreateWith(ctx, r.DB.Pool, p)
}

// CreateWith inserts using the supplied querier so account creation can join
// an enclosing transaction.
func (r UserRepository) CreateWith(ctx context.Context, q ports.Querier, p CreateUserParams) (*domain.User, error) {
	row := q.QueryRow(ctx, `
		INSERT INTO users (name, username, role, password_hash, salon_ids, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, now(), now())
		RETURNING id, name, username, role, password_hash, salon_ids, created_at, updated_at
	`, p.Name, p.Username, string(p.Role), p.PasswordHash, p.SalonIDs)
	return scanUser(row)
}

func (r UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, username, role, password_hash, salon_ids, created_at, updated_at
		FROM users
		WHERE username=$1 AND deleted_at IS NULL
	`, username)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, username, role, password_hash, salon_ids, created_at, updated_at
		FROM users
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r UserRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, username, role, password_hash, salon_ids, created_at, updated_at
		FROM users
		WHERE role=$1 AND deleted_at IS NULL
		ORDER BY name ASC
	`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	return items, rows.Err()
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&role,
		&u.PasswordHash,
		&u.SalonIDs,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
