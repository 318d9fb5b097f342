package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

func TestBuildPayrollLineStylistWithIncentive(t *testing.T) {
	stylist := domain.Staff{ID: 1, Name: "Meena", Role: domain.StaffStylist, BaseSalary: 25000}
	stats := domain.AttendanceStats{
		PresentPaidDays:        26,
		LOPDays:                2,
		OvertimeHours:          3,
		EffectiveDeductionDays: 2,
	}

	line := BuildPayrollLine(stylist, stats, 140000)

	assert.Equal(t, 125000.0, line.SalesTarget)
	assert.InDelta(t, 112, line.TargetAchieved, 0.01)
	assert.InDelta(t, 1666.67, line.Deduction, 0.01)
	assert.InDelta(t, 312.5, line.OvertimePay, 0.01)
	assert.InDelta(t, 1500, line.Incentive, 0.01)
	assert.InDelta(t, 25145.83, line.NetPayout, 0.01)
}

func TestBuildPayrollLineStylistBelowTarget(t *testing.T) {
	stylist := domain.Staff{ID: 1, Role: domain.StaffStylist, BaseSalary: 25000}

	line := BuildPayrollLine(stylist, domain.AttendanceStats{}, 100000)

	assert.Zero(t, line.Incentive)
	assert.InDelta(t, 80, line.TargetAchieved, 0.01)
	assert.InDelta(t, 25000, line.NetPayout, 1e-9)
}

func TestBuildPayrollLineNonStylistEarnsNoIncentive(t *testing.T) {
	manager := domain.Staff{ID: 2, Role: domain.StaffManager, BaseSalary: 30000}

	line := BuildPayrollLine(manager, domain.AttendanceStats{}, 500000)

	assert.Zero(t, line.SalesTarget)
	assert.Zero(t, line.TargetAchieved)
	assert.Zero(t, line.Incentive)
	assert.InDelta(t, 30000, line.NetPayout, 1e-9)
}

func TestBuildPayrollLineNetPayoutFloorsAtZero(t *testing.T) {
	housekeeping := domain.Staff{ID: 3, Role: domain.StaffHousekeeping, BaseSalary: 3000}
	stats := domain.AttendanceStats{LOPDays: 20, EffectiveDeductionDays: 31}

	line := BuildPayrollLine(housekeeping, stats, 0)

	assert.Zero(t, line.NetPayout)
}

func TestBuildPayrollLineOvertimeOnly(t *testing.T) {
	stylist := domain.Staff{ID: 4, Role: domain.StaffStylist, BaseSalary: 24000}
	stats := domain.AttendanceStats{OvertimeHours: 8}

	line := BuildPayrollLine(stylist, stats, 0)

	// Eight OT hours equal one full day at salary/30.
	assert.InDelta(t, 800, line.OvertimePay, 1e-9)
	assert.InDelta(t, 24800, line.NetPayout, 1e-9)
}
