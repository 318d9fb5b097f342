package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *PayrollReport {
	return &PayrollReport{
		SalonID: 1,
		Month:   time.June,
		Year:    2025,
		Lines: []PayrollLine{
			{StaffID: 1, StaffName: "Meena", Role: "Stylist", BaseSalary: 25000, NetPayout: 25145.83},
			{StaffID: 2, StaffName: "Raju", Role: "Housekeeping", BaseSalary: 12000, NetPayout: 12000},
		},
		TotalPayout: 37145.83,
	}
}

func TestWritePayrollCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePayrollCSV(&buf, sampleReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Net Payout")
	assert.Contains(t, lines[1], "Meena")
	assert.Contains(t, lines[2], "Raju")
}

func TestWritePayrollXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePayrollXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Payroll June 2025"
	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Meena", name)
}

func TestWriteStatementXLSX(t *testing.T) {
	stmt := &Statement{
		SalonID:       1,
		Month:         time.June,
		Year:          2025,
		ServiceIncome: 3150,
		PackageIncome: 13500,
		TotalIncome:   16650,
		NetProfit:     -71495.83,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatementXLSX(&buf, stmt))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue("P&L June 2025", "A11")
	require.NoError(t, err)
	assert.Equal(t, "Net Profit", label)
}
