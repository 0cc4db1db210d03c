package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"moneylens/internal/cli"
	"moneylens/internal/model"
	"moneylens/internal/report"
	"moneylens/internal/storage"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full set of summary tables",
		Long:  `Run every summary over the money-manager database and print each one as a labeled table.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return runReports(ctx, store, os.Stdout)
		},
	}
}

// runReports executes the fixed report sequence. Every summary is computed
// fresh, printed, and discarded; none depends on another.
func runReports(ctx context.Context, store *storage.SQLiteStore, w io.Writer) error {
	p := report.NewPrinter(w)

	count, first, last, err := store.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, cli.FormatSubtle(fmt.Sprintf("%d transactions from %s to %s", count, first, last)))
	fmt.Fprintln(w)

	monthly, err := store.MonthlySummary(ctx)
	if err != nil {
		return err
	}
	p.MonthlySummary(monthly)

	nets, err := store.MonthlyNetRevenue(ctx)
	if err != nil {
		return err
	}
	p.MonthlyNet(nets)

	if err := printAverage(ctx, store, p, model.DirectionExpense, "Average Monthly Expense"); err != nil {
		return err
	}
	if err := printAverage(ctx, store, p, model.DirectionIncome, "Average Monthly Income"); err != nil {
		return err
	}

	categoryReports := []struct {
		header    string
		direction model.Direction
		grouping  model.Grouping
	}{
		{"Expenses by Sub-Category", model.DirectionExpense, model.GroupByCategory},
		{"Expenses by Main Category", model.DirectionExpense, model.GroupByMainCategory},
		{"Income by Main Category", model.DirectionIncome, model.GroupByMainCategory},
	}
	for _, r := range categoryReports {
		totals, err := store.CategorySummary(ctx, r.direction, r.grouping)
		if err != nil {
			return err
		}
		p.CategoryTotals(r.header, totals)
	}

	pivotReports := []struct {
		header    string
		direction model.Direction
		grouping  model.Grouping
	}{
		{"Monthly Expenses by Sub-Category (Pivot)", model.DirectionExpense, model.GroupByCategory},
		{"Monthly Expenses by Main Category (Pivot)", model.DirectionExpense, model.GroupByMainCategory},
		{"Monthly Income by Main Category (Pivot)", model.DirectionIncome, model.GroupByMainCategory},
	}
	for _, r := range pivotReports {
		pivot, err := store.MonthlyCategorySummary(ctx, r.direction, r.grouping)
		if err != nil {
			return err
		}
		p.Pivot(r.header, pivot)
	}

	averages, err := store.AverageExpenseByMainCategory(ctx)
	if err != nil {
		return err
	}
	p.CategoryTotals("Average Monthly Expense by Main Category", averages)

	expenseMethods, err := store.PaymentMethodSummary(ctx, model.DirectionExpense)
	if err != nil {
		return err
	}
	p.MethodTotals("Expenses by Payment Method", expenseMethods)

	incomeMethods, err := store.PaymentMethodSummary(ctx, model.DirectionIncome)
	if err != nil {
		return err
	}
	p.MethodTotals("Income by Payment Method", incomeMethods)

	peak, err := store.PeakExpenseMonth(ctx)
	switch {
	case errors.Is(err, storage.ErrNoData):
		p.NoData("Month with Highest Expenses")
	case err != nil:
		return err
	default:
		p.PeakMonth(peak)
	}

	return nil
}

func printAverage(ctx context.Context, store *storage.SQLiteStore, p *report.Printer, d model.Direction, header string) error {
	avg, err := store.AverageMonthlyTotal(ctx, d)
	if errors.Is(err, storage.ErrNoData) {
		p.NoData(header)
		return nil
	}
	if err != nil {
		return err
	}
	p.Average(header, avg)
	return nil
}
