package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"moneylens/internal/config"
	"moneylens/internal/model"
	"moneylens/internal/report"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every summary table to CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dir, _ := cmd.Flags().GetString("dir")
			dir = config.ExpandPath(dir)

			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create export directory: %w", err)
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			write := func(name string, rows any) error {
				path, err := report.WriteCSV(dir, name, rows)
				if err != nil {
					return err
				}
				slog.Info("exported summary", "path", path)
				return nil
			}

			monthly, err := store.MonthlySummary(ctx)
			if err != nil {
				return err
			}
			if err := write("monthly_summary", &monthly); err != nil {
				return err
			}

			nets, err := store.MonthlyNetRevenue(ctx)
			if err != nil {
				return err
			}
			if err := write("monthly_net_revenue", &nets); err != nil {
				return err
			}

			points, err := store.RevenueAnalysis(ctx)
			if err != nil {
				return err
			}
			if err := write("revenue_analysis", &points); err != nil {
				return err
			}

			categoryExports := []struct {
				name      string
				direction model.Direction
				grouping  model.Grouping
			}{
				{"expenses_by_category", model.DirectionExpense, model.GroupByCategory},
				{"expenses_by_main_category", model.DirectionExpense, model.GroupByMainCategory},
				{"income_by_main_category", model.DirectionIncome, model.GroupByMainCategory},
			}
			for _, e := range categoryExports {
				totals, err := store.CategorySummary(ctx, e.direction, e.grouping)
				if err != nil {
					return err
				}
				if err := write(e.name, &totals); err != nil {
					return err
				}
			}

			averages, err := store.AverageExpenseByMainCategory(ctx)
			if err != nil {
				return err
			}
			if err := write("average_expense_by_main_category", &averages); err != nil {
				return err
			}

			for _, e := range []struct {
				name      string
				direction model.Direction
			}{
				{"expenses_by_payment_method", model.DirectionExpense},
				{"income_by_payment_method", model.DirectionIncome},
			} {
				totals, err := store.PaymentMethodSummary(ctx, e.direction)
				if err != nil {
					return err
				}
				if err := write(e.name, &totals); err != nil {
					return err
				}
			}

			dist, err := store.MonthlyExpenseDistribution(ctx)
			if err != nil {
				return err
			}
			return write("monthly_expense_distribution", &dist)
		},
	}

	cmd.Flags().String("dir", "./exports", "directory for CSV files")

	return cmd
}
