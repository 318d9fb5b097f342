package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

type StaffRepository struct {
	DB *db.Postgres
}

const staffColumns = `id, salon_id, name, phone, role, base_salary, joining_date, exit_date, status, created_at, updated_at`

func (r StaffRepository) ListBySalon(ctx context.Context, salonID int64, activeOnly bool) ([]domain.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE salon_id=$1
	`
	if activeOnly {
		query += ` AND status='Active'`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.DB.Pool.Query(ctx, query, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

func (r StaffRepository) Get(ctx context.Context, id int64) (*domain.Staff, error) {
	row := r.DB.Pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id=$1`, id)
	s, err := scanStaff(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return s, nil
}

// Upsert creates or rewrites a staff member. Records referenced by history are
// never deleted; deactivation flips status instead.
func (r StaffRepository) Upsert(ctx context.Context, s domain.Staff) (*domain.Staff, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO staff (id, salon_id, name, phone, role, base_salary, joining_date, exit_date, status, created_at, updated_at)
		VALUES (COALESCE($1, nextval('staff_id_seq')), $2,$3,$4,$5,$6,$7,$8,$9, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			salon_id=EXCLUDED.salon_id,
			name=EXCLUDED.name,
			phone=EXCLUDED.phone,
			role=EXCLUDED.role,
			base_salary=EXCLUDED.base_salary,
			joining_date=EXCLUDED.joining_date,
			exit_date=EXCLUDED.exit_date,
			status=EXCLUDED.status,
			updated_at=now()
		RETURNING `+staffColumns+`
	`, nullableID(s.ID), s.SalonID, s.Name, s.Phone, string(s.Role), s.BaseSalary, s.JoiningDate, s.ExitDate, string(s.Status))
	out, err := scanStaff(row)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r StaffRepository) SetStatus(ctx context.Context, id int64, status domain.StaffStatus) error {
	_, err := r.DB.Pool.Exec(ctx, `UPDATE staff SET status=$2, updated_at=now() WHERE id=$1`, id, string(status))
	return err
}

func scanStaff(row interface {
	Scan(dest ...any) error
}) (*domain.Staff, error) {
	var (
		s      domain.Staff
		role   string
		status string
		exit   pgtype.Date
	)
	if err := row.Scan(&s.ID, &s.SalonID, &s.Name, &s.Phone, &role, &s.BaseSalary, &s.JoiningDate, &exit, &status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Role = domain.StaffRole(role)
	s.Status = domain.StaffStatus(status)
	if exit.Valid {
		t := exit.Time
		s.ExitDate = &t
	}
	return &s, nil
}
