package service

import (
	"context"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

// Incentive terms for stylists: a tenth of sales above five times salary.
const incentiveRate = 0.10

type attendanceSource interface {
	ListMonth(ctx context.Context, staffID int64, month time.Month, year int) ([]domain.AttendanceMark, error)
}

// PayrollService assembles the monthly payout sheet for a salon.
type PayrollService struct {
	staff      staffDirectory
	attendance attendanceSource
	commission *CommissionService
}

func NewPayrollService(staff staffDirectory, attendance attendanceSource, commission *CommissionService) *PayrollService {
	return &PayrollService{staff: staff, attendance: attendance, commission: commission}
}

// PayrollLine is one staff member's computed monthly payout.
type PayrollLine struct {
	StaffID         int64            `json:"staffId"`
	StaffName       string           `json:"staffName"`
	Role            domain.StaffRole `json:"role"`
	BaseSalary      float64          `json:"baseSalary"`
	PresentPaidDays int              `json:"presentPaidDays"`
	LOPDays         int              `json:"lopDays"`
	OvertimeHours   int              `json:"overtimeHours"`
	Deduction       float64          `json:"deduction"`
	OvertimePay     float64          `json:"overtimePay"`
	SalesTarget     float64          `json:"salesTarget"`
	AttributedSales float64          `json:"attributedSales"`
	TargetAchieved  float64          `json:"targetAchievementPercent"`
	Incentive       float64          `json:"incentive"`
	NetPayout       float64          `json:"netPayout"`
}

// PayrollReport is the payout sheet for one salon and month.
type PayrollReport struct {
	SalonID     int64         `json:"salonId"`
	Month       time.Month    `json:"month"`
	Year        int           `json:"year"`
	Lines       []PayrollLine `json:"lines"`
	TotalPayout float64       `json:"totalPayout"`
}

// Report computes every active staff member's line for the month.
func (s *PayrollService) Report(ctx context.Context, salonID int64, month time.Month, year int) (*PayrollReport, error) {
	members, err := s.staff.ListBySalon(ctx, salonID, true)
	if err != nil {
		return nil, err
	}
	sales, err := s.commission.Attribution(ctx, salonID, month, year)
	if err != nil {
		return nil, err
	}
	salesByStaff := make(map[int64]float64, len(sales))
	for _, ss := range sales {
		salesByStaff[ss.Staff.ID] = ss.AttributedSales
	}

	report := &PayrollReport{SalonID: salonID, Month: month, Year: year}
	for _, m := range members {
		marks, err := s.attendance.ListMonth(ctx, m.ID, month, year)
		if err != nil {
			return nil, err
		}
		line := BuildPayrollLine(m, ComputeAttendanceStats(marks), salesByStaff[m.ID])
		report.Lines = append(report.Lines, line)
		report.TotalPayout += line.NetPayout
	}
	return report, nil
}

// BuildPayrollLine computes one payout from salary, attendance and sales.
//
// The day rate is a thirtieth of salary regardless of calendar month length.
// Overtime pays the hourly fraction of an eight hour day. Stylists earn an
// incentive on attributed sales above their five-times-salary target. The net
// payout never goes below zero.
func BuildPayrollLine(staff domain.Staff, stats domain.AttendanceStats, attributedSales float64) PayrollLine {
	dailyRate := staff.BaseSalary / 30
	deduction := dailyRate * float64(stats.EffectiveDeductionDays)
	overtimePay := float64(stats.OvertimeHours) * dailyRate / 8

	var incentive, achieved float64
	target := staff.SalesTarget()
	if target > 0 {
		achieved = attributedSales / target * 100
	}
	if staff.Role == domain.StaffStylist && attributedSales > target {
		incentive = (attributedSales - target) * incentiveRate
	}

	net := staff.BaseSalary - deduction + overtimePay + incentive
	if net < 0 {
		net = 0
	}

	return PayrollLine{
		StaffID:         staff.ID,
		StaffName:       staff.Name,
		Role:            staff.Role,
		BaseSalary:      staff.BaseSalary,
		PresentPaidDays: stats.PresentPaidDays,
		LOPDays:         stats.LOPDays,
		OvertimeHours:   stats.OvertimeHours,
		Deduction:       deduction,
		OvertimePay:     overtimePay,
		SalesTarget:     target,
		AttributedSales: attributedSales,
		TargetAchieved:  achieved,
		Incentive:       incentive,
		NetPayout:       net,
	}
}
