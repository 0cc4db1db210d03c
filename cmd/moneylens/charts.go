package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"moneylens/internal/chart"
	"moneylens/internal/cli"
	"moneylens/internal/config"
	"moneylens/internal/model"
)

func chartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Render the summary charts as interactive HTML",
		Long: `Render the fixed chart sequence (revenue lines, category bar, trend
lines, monthly pies, average pie) as standalone interactive HTML files.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			open, _ := cmd.Flags().GetBool("open")

			dir := config.ExpandPath(viper.GetString("charts.dir"))
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create charts directory: %w", err)
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var written []string
			render := func(name string, r chart.Renderer) error {
				path := filepath.Join(dir, name)
				if err := chart.WriteHTML(r, path); err != nil {
					return err
				}
				slog.Info("rendered chart", "path", path)
				written = append(written, path)
				return nil
			}

			points, err := store.RevenueAnalysis(ctx)
			if err != nil {
				return err
			}
			if err := render("revenue_analysis.html", chart.RevenueLines(points)); err != nil {
				return err
			}

			mainExpenses, err := store.CategorySummary(ctx, model.DirectionExpense, model.GroupByMainCategory)
			if err != nil {
				return err
			}
			if err := render("expenses_by_main_category.html", chart.CategoryBar("Total Expenses by Main Category", mainExpenses)); err != nil {
				return err
			}

			expensePivot, err := store.MonthlyCategorySummary(ctx, model.DirectionExpense, model.GroupByMainCategory)
			if err != nil {
				return err
			}
			if err := render("expense_trends.html", chart.TrendLines("Monthly Expense Trends by Main Category", expensePivot)); err != nil {
				return err
			}

			incomePivot, err := store.MonthlyCategorySummary(ctx, model.DirectionIncome, model.GroupByMainCategory)
			if err != nil {
				return err
			}
			if err := render("income_trends.html", chart.TrendLines("Monthly Income Trends by Main Category", incomePivot)); err != nil {
				return err
			}

			dist, err := store.MonthlyExpenseDistribution(ctx)
			if err != nil {
				return err
			}
			page, skipped := chart.MonthlyDistributionPies(dist)
			for _, month := range skipped {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No positive expenses to plot for %s. Skipping pie chart.", month)))
			}
			if page != nil {
				if err := render("monthly_expense_pies.html", page); err != nil {
					return err
				}
			}

			averages, err := store.AverageExpenseByMainCategory(ctx)
			if err != nil {
				return err
			}
			if err := render("average_expense_pie.html", chart.AveragePie(averages)); err != nil {
				return err
			}

			if open {
				for _, path := range written {
					if err := browser.OpenFile(path); err != nil {
						slog.Warn("failed to open chart in browser", "path", path, "error", err)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().Bool("open", false, "open each rendered chart in the browser")
	cmd.Flags().String("dir", "./charts", "directory for rendered HTML files")
	_ = viper.BindPFlag("charts.dir", cmd.Flags().Lookup("dir"))

	return cmd
}
