package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(base time.Time, hour, min int) *time.Time {
	t := time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, time.UTC)
	return &t
}

func present(date time.Time, inHour, inMin, outHour, outMin int) domain.AttendanceMark {
	return domain.AttendanceMark{
		Date:     date,
		Status:   domain.AttendancePresent,
		CheckIn:  clock(date, inHour, inMin),
		CheckOut: clock(date, outHour, outMin),
	}
}

func TestComputeAttendanceStats(t *testing.T) {
	monday := day(2025, time.June, 2)
	saturday := day(2025, time.June, 7)
	sunday := day(2025, time.June, 8)

	tests := []struct {
		name  string
		marks []domain.AttendanceMark
		want  domain.AttendanceStats
	}{
		{
			name: "weekday overtime above threshold",
			// 10 hours against a 9 hour shift.
			marks: []domain.AttendanceMark{present(monday, 9, 0, 19, 0)},
			want:  domain.AttendanceStats{PresentPaidDays: 1, OvertimeHours: 1},
		},
		{
			name: "weekday surplus under threshold earns nothing",
			// 9.5 hours, surplus 0.5.
			marks: []domain.AttendanceMark{present(monday, 9, 0, 18, 30)},
			want:  domain.AttendanceStats{PresentPaidDays: 1},
		},
		{
			name: "weekend shift requires ten hours",
			// 12 hours against a 10 hour Saturday shift.
			marks: []domain.AttendanceMark{present(saturday, 9, 0, 21, 0)},
			want:  domain.AttendanceStats{PresentPaidDays: 1, OvertimeHours: 2},
		},
		{
			name: "missing clocks earn no overtime",
			marks: []domain.AttendanceMark{
				{Date: monday, Status: domain.AttendancePresent},
			},
			want: domain.AttendanceStats{PresentPaidDays: 1},
		},
		{
			name: "weekoff is a paid day",
			marks: []domain.AttendanceMark{
				{Date: sunday, Status: domain.AttendanceWeekoff},
			},
			want: domain.AttendanceStats{PresentPaidDays: 1},
		},
		{
			name: "weekday leave deducts one day",
			marks: []domain.AttendanceMark{
				{Date: monday, Status: domain.AttendanceLeave},
			},
			want: domain.AttendanceStats{LOPDays: 1, EffectiveDeductionDays: 1},
		},
		{
			name: "weekend leave counts two LOP days",
			marks: []domain.AttendanceMark{
				{Date: saturday, Status: domain.AttendanceLeave},
			},
			want: domain.AttendanceStats{LOPDays: 2, EffectiveDeductionDays: 2},
		},
		{
			name: "mixed month",
			marks: []domain.AttendanceMark{
				present(monday, 9, 0, 19, 0),
				present(day(2025, time.June, 3), 9, 0, 18, 0),
				{Date: day(2025, time.June, 4), Status: domain.AttendanceWeekoff},
				{Date: day(2025, time.June, 5), Status: domain.AttendanceLeave},
				{Date: sunday, Status: domain.AttendanceLeave},
			},
			want: domain.AttendanceStats{
				PresentPaidDays:        3,
				LOPDays:                3,
				OvertimeHours:          1,
				EffectiveDeductionDays: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeAttendanceStats(tt.marks))
		})
	}
}

func TestOvertimeRounding(t *testing.T) {
	monday := day(2025, time.June, 2)

	// 0.8 surplus clears the threshold and rounds to the one hour floor.
	stats := ComputeAttendanceStats([]domain.AttendanceMark{present(monday, 9, 0, 18, 48)})
	assert.Equal(t, 1, stats.OvertimeHours)

	// 2.6 surplus rounds to 3.
	stats = ComputeAttendanceStats([]domain.AttendanceMark{present(monday, 9, 0, 20, 36)})
	assert.Equal(t, 3, stats.OvertimeHours)
}
