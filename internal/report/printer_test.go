package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneylens/internal/model"
)

func TestPrinterMonthlySummary(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb)

	p.MonthlySummary([]model.MonthlySummary{
		{Month: "2024-01", Expenses: 100, Income: 200},
		{Month: "2024-02", Expenses: 50, Income: 0},
	})

	out := sb.String()
	assert.Contains(t, out, "Monthly Income and Expenses")
	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "200.00")
	assert.Contains(t, out, "2024-02")
}

func TestPrinterPivot(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb)

	pv := model.NewPivot([]model.CategoryMonthTotal{
		{Month: "2024-01", Category: "Food", Total: 100},
		{Month: "2024-02", Category: "Transport", Total: 20},
	})
	p.Pivot("Monthly Expenses by Sub-Category (Pivot)", pv)

	out := sb.String()
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "Transport")
	assert.Contains(t, out, "0.00", "absent combinations print as zero")
}

func TestPrinterPivotEmpty(t *testing.T) {
	var sb strings.Builder
	NewPrinter(&sb).Pivot("Monthly Income by Main Category (Pivot)", model.NewPivot(nil))

	assert.Contains(t, sb.String(), "(no data)")
}

func TestPrinterNoRows(t *testing.T) {
	var sb strings.Builder
	NewPrinter(&sb).CategoryTotals("Expenses by Main Category", nil)

	assert.Contains(t, sb.String(), "(no rows)")
}

func TestPrinterAverageAndPeak(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb)

	p.Average("Average Monthly Expense", 75)
	p.PeakMonth(model.MonthTotal{Month: "2024-01", Total: 100})

	out := sb.String()
	assert.Contains(t, out, "75.00")
	assert.Contains(t, out, "Month with Highest Expenses")
	assert.Contains(t, out, "2024-01")
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	rows := []model.CategoryTotal{
		{Category: "Food", Total: 150},
		{Category: "Transport", Total: 30},
	}

	path, err := WriteCSV(dir, "expenses_by_category", &rows)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "expenses_by_category.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "category,total")
	assert.Contains(t, content, "Food,150")
	assert.Contains(t, content, "Transport,30")
}

func TestWriteCSVBadDir(t *testing.T) {
	rows := []model.CategoryTotal{}
	_, err := WriteCSV(filepath.Join(t.TempDir(), "nope"), "x", &rows)
	assert.Error(t, err)
}
