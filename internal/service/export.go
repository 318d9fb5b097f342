package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"
)

var payrollHeader = []string{
	"Staff ID", "Name", "Role", "Base Salary", "Paid Days", "LOP Days",
	"OT Hours", "Deduction", "OT Pay", "Sales Target", "Attributed Sales", "Target %", "Incentive", "Net Payout",
}

func payrollRow(line PayrollLine) []any {
	return []any{
		line.StaffID, line.StaffName, string(line.Role), line.BaseSalary,
		line.PresentPaidDays, line.LOPDays, line.OvertimeHours,
		round2(line.Deduction), round2(line.OvertimePay), line.SalesTarget,
		round2(line.AttributedSales), round2(line.TargetAchieved), round2(line.Incentive), round2(line.NetPayout),
	}
}

// WritePayrollCSV streams the payout sheet as CSV.
func WritePayrollCSV(w io.Writer, report *PayrollReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(payrollHeader); err != nil {
		return err
	}
	for _, line := range report.Lines {
		record := make([]string, 0, len(payrollHeader))
		for _, cell := range payrollRow(line) {
			record = append(record, fmt.Sprint(cell))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePayrollXLSX streams the payout sheet as a workbook.
func WritePayrollXLSX(w io.Writer, report *PayrollReport) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Payroll %s %d", report.Month.String(), report.Year)
	f.SetSheetName("Sheet1", sheet)

	header := make([]any, len(payrollHeader))
	for i, h := range payrollHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, line := range report.Lines {
		cell := fmt.Sprintf("A%d", i+2)
		row := payrollRow(line)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	total := []any{"", "", "", "", "", "", "", "", "", "", "", "", "Total", round2(report.TotalPayout)}
	cell := fmt.Sprintf("A%d", len(report.Lines)+3)
	if err := f.SetSheetRow(sheet, cell, &total); err != nil {
		return err
	}
	return f.Write(w)
}

// WriteStatementXLSX streams a monthly statement as a workbook.
func WriteStatementXLSX(w io.Writer, stmt *Statement) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("P&L %s %d", stmt.Month.String(), stmt.Year)
	f.SetSheetName("Sheet1", sheet)

	rows := [][]any{
		{"Service Income", round2(stmt.ServiceIncome)},
		{"Package Income", round2(stmt.PackageIncome)},
		{"Total Income", round2(stmt.TotalIncome)},
		{},
		{"Fixed Costs", round2(stmt.FixedCosts)},
		{"Salaries", round2(stmt.SalaryExpense)},
		{"Incentives", round2(stmt.IncentivePaid)},
		{"Cash Expenses", round2(stmt.CashExpenses)},
		{"Total Expenses", round2(stmt.TotalExpenses)},
		{},
		{"Net Profit", round2(stmt.NetProfit)},
	}
	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
