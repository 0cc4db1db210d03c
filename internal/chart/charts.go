// Package chart renders query results as interactive HTML charts.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"moneylens/internal/model"
)

// Renderer is anything go-echarts can write out as a standalone HTML page.
type Renderer interface {
	Render(w io.Writer) error
}

// WriteHTML renders a chart (or page of charts) to path.
func WriteHTML(r Renderer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := r.Render(f); err != nil {
		return fmt.Errorf("failed to render chart %s: %w", path, err)
	}
	return nil
}

// RevenueLines plots monthly income, expenses and revenue as three lines
// against the period axis.
func RevenueLines(points []model.RevenuePoint) *charts.Line {
	months := make([]string, len(points))
	income := make([]opts.LineData, len(points))
	expenses := make([]opts.LineData, len(points))
	revenue := make([]opts.LineData, len(points))
	for i, p := range points {
		months[i] = p.Month
		income[i] = opts.LineData{Value: p.Income}
		expenses[i] = opts.LineData{Value: p.Expenses}
		revenue[i] = opts.LineData{Value: p.Revenue}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Monthly Revenue Analysis"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Amount (€)"}),
	)
	line.SetXAxis(months).
		AddSeries("Income", income).
		AddSeries("Expenses", expenses).
		AddSeries("Revenue", revenue).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	return line
}

// CategoryBar plots one bar per category, height = total.
func CategoryBar(title string, rows []model.CategoryTotal) *charts.Bar {
	names := make([]string, len(rows))
	values := make([]opts.BarData, len(rows))
	for i, r := range rows {
		names[i] = r.Category
		values[i] = opts.BarData{Value: r.Total}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total (€)"}),
	)
	bar.SetXAxis(names).AddSeries("Total", values)
	return bar
}

// TrendLines plots one line per pivot category column against the period
// axis, with the legend placed beside the plot.
func TrendLines(title string, p *model.Pivot) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1400px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Orient: "vertical", Left: "right", Top: "center"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Amount (€)"}),
	)

	line.SetXAxis(p.Months)
	for _, category := range p.Categories {
		series := p.Series(category)
		items := make([]opts.LineData, len(series))
		for i, v := range series {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(category, items)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	return line
}

// MonthlyDistributionPies draws one pie per distinct month from long-form
// expense rows, restricted to non-negative slices. Months with no positive
// values are skipped and returned so the caller can print a notice. Returns
// a nil page when every month was skipped.
func MonthlyDistributionPies(rows []model.CategoryMonthTotal) (*components.Page, []string) {
	months := make([]string, 0)
	byMonth := make(map[string][]model.CategoryMonthTotal)
	for _, r := range rows {
		if _, ok := byMonth[r.Month]; !ok {
			months = append(months, r.Month)
		}
		byMonth[r.Month] = append(byMonth[r.Month], r)
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	var skipped []string
	rendered := 0
	for _, month := range months {
		items := make([]opts.PieData, 0, len(byMonth[month]))
		var sum float64
		for _, r := range byMonth[month] {
			// Pie charts cannot represent negative slices (refunds).
			if r.Total < 0 {
				continue
			}
			sum += r.Total
			items = append(items, opts.PieData{Name: r.Category, Value: r.Total})
		}
		if len(items) == 0 || sum == 0 {
			skipped = append(skipped, month)
			continue
		}
		page.AddCharts(distributionPie(month, items))
		rendered++
	}

	if rendered == 0 {
		return nil, skipped
	}
	return page, skipped
}

func distributionPie(month string, items []opts.PieData) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Expense Distribution by Category for %s", month)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("expenses", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}))
	return pie
}

// AveragePie plots the proportion each main category contributes to the
// average monthly expense, with a side legend and percentage labels.
func AveragePie(rows []model.CategoryTotal) *charts.Pie {
	items := make([]opts.PieData, len(rows))
	for i, r := range rows {
		items[i] = opts.PieData{Name: r.Category, Value: r.Total}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Average Monthly Expense by Main Category"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Orient: "vertical", Left: "right", Top: "center"}),
	)
	pie.AddSeries("average expense", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{d}%"}))
	return pie
}
