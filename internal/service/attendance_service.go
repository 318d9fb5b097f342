package service

import (
	"context"
	"math"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

// Overtime kicks in only when the worked surplus over the required shift
// clears this threshold, in hours.
const overtimeThreshold = 0.75

type AttendanceService struct {
	marks repository.AttendanceRepository
	staff repository.StaffRepository
}

func NewAttendanceService(marks repository.AttendanceRepository, staff repository.StaffRepository) *AttendanceService {
	return &AttendanceService{marks: marks, staff: staff}
}

// Mark validates and records one staff member's mark for a date, replacing any
// earlier mark for the same day.
func (s *AttendanceService) Mark(ctx context.Context, m domain.AttendanceMark) (*domain.AttendanceMark, error) {
	if !m.Status.Valid() {
		return nil, domain.ErrInvalidAttendanceMark
	}
	if m.Status != domain.AttendancePresent {
		m.CheckIn, m.CheckOut = nil, nil
	}
	if m.CheckIn != nil && m.CheckOut != nil && m.CheckOut.Before(*m.CheckIn) {
		return nil, domain.ErrInvalidAttendanceMark
	}
	if _, err := s.staff.Get(ctx, m.StaffID); err != nil {
		return nil, err
	}
	return s.marks.Upsert(ctx, m)
}

func (s *AttendanceService) ListDay(ctx context.Context, salonID int64, day time.Time) ([]domain.AttendanceMark, error) {
	return s.marks.ListDay(ctx, salonID, day)
}

// MonthlyStats aggregates one staff member's marks for a month.
func (s *AttendanceService) MonthlyStats(ctx context.Context, staffID int64, month time.Month, year int) (domain.AttendanceStats, error) {
	marks, err := s.marks.ListMonth(ctx, staffID, month, year)
	if err != nil {
		return domain.AttendanceStats{}, err
	}
	return ComputeAttendanceStats(marks), nil
}

// ComputeAttendanceStats folds a month of marks into payroll inputs.
//
// Present and Weekoff are paid days. Leave is loss of pay: one LOP day on
// weekdays, two on weekends. Overtime accrues only on Present days with both
// clocks, against a 9 hour required shift on weekdays and 10 on weekends.
func ComputeAttendanceStats(marks []domain.AttendanceMark) domain.AttendanceStats {
	var stats domain.AttendanceStats
	for _, m := range marks {
		weekend := isWeekend(m.Date)
		switch m.Status {
		case domain.AttendancePresent, domain.AttendanceWeekoff:
			stats.PresentPaidDays++
		case domain.AttendanceLeave:
			if weekend {
				stats.LOPDays += 2
			} else {
				stats.LOPDays++
			}
		}
		if m.Status == domain.AttendancePresent {
			stats.OvertimeHours += overtimeFor(m, weekend)
		}
	}
	stats.EffectiveDeductionDays = stats.LOPDays
	return stats
}

func overtimeFor(m domain.AttendanceMark, weekend bool) int {
	if m.CheckIn == nil || m.CheckOut == nil {
		return 0
	}
	worked := m.CheckOut.Sub(*m.CheckIn).Hours()
	required := 9.0
	if weekend {
		required = 10.0
	}
	extra := worked - required
	if extra <= overtimeThreshold {
		return 0
	}
	hours := int(math.Round(extra))
	if hours < 1 {
		hours = 1
	}
	return hours
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
