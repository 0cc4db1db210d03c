// Package report renders tabular summaries to the console and to CSV.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"moneylens/internal/cli"
	"moneylens/internal/model"
)

// Printer writes labeled report tables to a single output.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// MonthlySummary prints expense and income totals per month.
func (p *Printer) MonthlySummary(rows []model.MonthlySummary) {
	p.title("Monthly Income and Expenses")
	tw := p.table("Month", "Expenses", "Income")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\n", r.Month, r.Expenses, r.Income)
	}
	p.flush(tw, len(rows))
}

// MonthlyNet prints income minus expenses per month.
func (p *Printer) MonthlyNet(rows []model.MonthlyNet) {
	p.title("Monthly Net Revenue")
	tw := p.table("Month", "Net Revenue")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\n", r.Month, r.Net)
	}
	p.flush(tw, len(rows))
}

// RevenueAnalysis prints the combined monthly revenue view.
func (p *Printer) RevenueAnalysis(rows []model.RevenuePoint) {
	p.title("Monthly Revenue Analysis")
	tw := p.table("Month", "Income", "Expenses", "Revenue")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\n", r.Month, r.Income, r.Expenses, r.Revenue)
	}
	p.flush(tw, len(rows))
}

// Average prints a single averaged figure under the given header.
func (p *Printer) Average(header string, value float64) {
	p.title(header)
	fmt.Fprintf(p.w, "%.2f\n\n", value)
}

// NoData prints a placeholder when a report has nothing to show.
func (p *Printer) NoData(header string) {
	p.title(header)
	fmt.Fprintln(p.w, cli.FormatSubtle("(no data)"))
	fmt.Fprintln(p.w)
}

// CategoryTotals prints per-category totals under the given header.
func (p *Printer) CategoryTotals(header string, rows []model.CategoryTotal) {
	p.title(header)
	tw := p.table("Category", "Total")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\n", r.Category, r.Total)
	}
	p.flush(tw, len(rows))
}

// MethodTotals prints per-payment-method totals under the given header.
func (p *Printer) MethodTotals(header string, rows []model.MethodTotal) {
	p.title(header)
	tw := p.table("Payment Method", "Total")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\n", r.Method, r.Total)
	}
	p.flush(tw, len(rows))
}

// Pivot prints a month-by-category cross-tabulation.
func (p *Printer) Pivot(header string, pv *model.Pivot) {
	p.title(header)
	if pv.Empty() {
		fmt.Fprintln(p.w, cli.FormatSubtle("(no data)"))
		fmt.Fprintln(p.w)
		return
	}

	tw := p.table(append([]string{"Month"}, pv.Categories...)...)
	for _, m := range pv.Months {
		cells := make([]string, 0, len(pv.Categories)+1)
		cells = append(cells, m)
		for _, c := range pv.Categories {
			cells = append(cells, fmt.Sprintf("%.2f", pv.Value(m, c)))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	p.flush(tw, len(pv.Months))
}

// PeakMonth prints the month with the highest total expenses.
func (p *Printer) PeakMonth(peak model.MonthTotal) {
	p.title("Month with Highest Expenses")
	fmt.Fprintf(p.w, "%s\t%.2f\n\n", peak.Month, peak.Total)
}

func (p *Printer) title(s string) {
	fmt.Fprintln(p.w, cli.FormatTitle(s))
}

func (p *Printer) table(headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	styled := make([]string, len(headers))
	dashes := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = cli.TableHeaderStyle.Render(h)
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(styled, "\t"))
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))
	return tw
}

func (p *Printer) flush(tw *tabwriter.Writer, rowCount int) {
	if rowCount == 0 {
		fmt.Fprintln(tw, cli.FormatSubtle("(no rows)"))
	}
	_ = tw.Flush()
	fmt.Fprintln(p.w)
}
