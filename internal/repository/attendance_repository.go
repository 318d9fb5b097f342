package repository

import (
	"context"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

type AttendanceRepository struct {
	DB *db.Postgres
}

// Upsert records a mark for (staff, date), replacing any earlier mark for the
// same day.
func (r AttendanceRepository) Upsert(ctx context.Context, m domain.AttendanceMark) (*domain.AttendanceMark, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO attendance (staff_id, mark_date, status, check_in, check_out)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (staff_id, mark_date) DO UPDATE SET
			status=EXCLUDED.status,
			check_in=EXCLUDED.check_in,
			check_out=EXCLUDED.check_out
		RETURNING id, staff_id, mark_date, status, check_in, check_out
	`, m.StaffID, m.Date, string(m.Status), m.CheckIn, m.CheckOut)
	out, err := scanAttendance(row)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMonth returns a staff member's marks inside the given month, date order.
func (r AttendanceRepository) ListMonth(ctx context.Context, staffID int64, month time.Month, year int) ([]domain.AttendanceMark, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, staff_id, mark_date, status, check_in, check_out
		FROM attendance
		WHERE staff_id=$1 AND mark_date >= $2 AND mark_date < $2 + interval '1 month'
		ORDER BY mark_date ASC
	`, staffID, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var marks []domain.AttendanceMark
	for rows.Next() {
		m, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		marks = append(marks, *m)
	}
	return marks, rows.Err()
}

// ListDay returns every mark for one salon's staff on a single date.
func (r AttendanceRepository) ListDay(ctx context.Context, salonID int64, day time.Time) ([]domain.AttendanceMark, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT a.id, a.staff_id, a.mark_date, a.status, a.check_in, a.check_out
		FROM attendance a
		JOIN staff s ON s.id = a.staff_id
		WHERE s.salon_id=$1 AND a.mark_date=$2
		ORDER BY a.staff_id ASC
	`, salonID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var marks []domain.AttendanceMark
	for rows.Next() {
		m, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		marks = append(marks, *m)
	}
	return marks, rows.Err()
}

func scanAttendance(row interface {
	Scan(dest ...any) error
}) (*domain.AttendanceMark, error) {
	var (
		m      domain.AttendanceMark
		status string
	)
	if err := row.Scan(&m.ID, &m.StaffID, &m.Date, &status, &m.CheckIn, &m.CheckOut); err != nil {
		return nil, err
	}
	m.Status = domain.AttendanceStatus(status)
	return &m, nil
}
