package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"moneylens/internal/model"
	"moneylens/internal/textutil"
)

// The query layer is a closed set of SQL templates. Enumerated parameters
// (model.Direction, model.Grouping) pick a template and bind placeholders;
// no SQL text is ever assembled at runtime.
const (
	monthlySummaryQuery = `
		SELECT strftime('%Y-%m', WDATE) AS month,
		       SUM(CASE WHEN DO_TYPE = 1 THEN ZMONEY ELSE 0 END) AS expenses,
		       SUM(CASE WHEN DO_TYPE = 0 THEN ZMONEY ELSE 0 END) AS income
		FROM INOUTCOME
		GROUP BY month
		ORDER BY month`

	monthlyNetRevenueQuery = `
		SELECT strftime('%Y-%m', WDATE) AS month,
		       SUM(CASE WHEN DO_TYPE = 0 THEN ZMONEY ELSE 0 END) -
		       SUM(CASE WHEN DO_TYPE = 1 THEN ZMONEY ELSE 0 END) AS net
		FROM INOUTCOME
		GROUP BY month
		ORDER BY month`

	// Labeled MM-YYYY but ordered by year then month so December 2023 sorts
	// before January 2024.
	revenueAnalysisQuery = `
		SELECT strftime('%m-%Y', WDATE) AS month,
		       SUM(CASE WHEN DO_TYPE = 0 THEN ZMONEY ELSE 0 END) AS income,
		       SUM(CASE WHEN DO_TYPE = 1 THEN ZMONEY ELSE 0 END) AS expenses,
		       SUM(CASE WHEN DO_TYPE = 0 THEN ZMONEY ELSE 0 END) -
		       SUM(CASE WHEN DO_TYPE = 1 THEN ZMONEY ELSE 0 END) AS revenue
		FROM INOUTCOME
		GROUP BY month
		ORDER BY strftime('%Y', WDATE), strftime('%m', WDATE)`

	averageMonthlyTotalQuery = `
		SELECT ROUND(AVG(monthly_total), 2)
		FROM (
			SELECT strftime('%Y-%m', WDATE) AS month, SUM(ZMONEY) AS monthly_total
			FROM INOUTCOME
			WHERE DO_TYPE = ?
			GROUP BY month
		)`

	categorySummaryQuery = `
		SELECT c.NAME AS category, SUM(i.ZMONEY) AS total
		FROM INOUTCOME i
		JOIN ZCATEGORY c ON i.ctgUid = c.uid
		WHERE i.DO_TYPE = ?
		GROUP BY c.NAME
		ORDER BY total DESC`

	mainCategorySummaryQuery = `
		SELECT COALESCE(mc.NAME, c.NAME) AS category, SUM(i.ZMONEY) AS total
		FROM INOUTCOME i
		JOIN ZCATEGORY c ON i.ctgUid = c.uid
		LEFT JOIN ZCATEGORY mc ON c.pUid = mc.uid
		WHERE i.DO_TYPE = ?
		GROUP BY COALESCE(mc.NAME, c.NAME)
		ORDER BY total DESC`

	monthlyCategoryQuery = `
		SELECT strftime('%Y-%m', i.WDATE) AS month,
		       c.NAME AS category,
		       ROUND(SUM(i.ZMONEY), 2) AS total
		FROM INOUTCOME i
		JOIN ZCATEGORY c ON i.ctgUid = c.uid
		WHERE i.DO_TYPE = ?
		GROUP BY month, category
		ORDER BY month, total DESC`

	monthlyMainCategoryQuery = `
		SELECT strftime('%Y-%m', i.WDATE) AS month,
		       COALESCE(mc.NAME, c.NAME) AS category,
		       ROUND(SUM(i.ZMONEY), 2) AS total
		FROM INOUTCOME i
		JOIN ZCATEGORY c ON i.ctgUid = c.uid
		LEFT JOIN ZCATEGORY mc ON c.pUid = mc.uid
		WHERE i.DO_TYPE = ?
		GROUP BY month, category
		ORDER BY month, total DESC`

	averageExpenseByMainCategoryQuery = `
		SELECT category, ROUND(AVG(monthly_total), 2) AS average
		FROM (
			SELECT COALESCE(mc.NAME, c.NAME) AS category,
			       strftime('%Y-%m', i.WDATE) AS month,
			       SUM(i.ZMONEY) AS monthly_total
			FROM INOUTCOME i
			JOIN ZCATEGORY c ON i.ctgUid = c.uid
			LEFT JOIN ZCATEGORY mc ON c.pUid = mc.uid
			WHERE i.DO_TYPE = 1
			GROUP BY category, month
		)
		GROUP BY category
		ORDER BY average DESC`

	paymentMethodSummaryQuery = `
		SELECT a.NIC_NAME AS method, SUM(i.ZMONEY) AS total
		FROM INOUTCOME i
		JOIN ASSETS a ON i.assetUid = a.uid
		WHERE i.DO_TYPE = ?
		GROUP BY a.NIC_NAME
		ORDER BY total DESC`

	peakExpenseMonthQuery = `
		SELECT strftime('%Y-%m', WDATE) AS month, SUM(ZMONEY) AS total
		FROM INOUTCOME
		WHERE DO_TYPE = 1
		GROUP BY month
		ORDER BY total DESC
		LIMIT 1`

	expenseDistributionQuery = `
		SELECT strftime('%Y-%m', i.WDATE) AS month,
		       c.NAME AS category,
		       SUM(i.ZMONEY) AS total
		FROM INOUTCOME i
		JOIN ZCATEGORY c ON i.ctgUid = c.uid
		WHERE i.DO_TYPE = 1
		GROUP BY month, category
		ORDER BY month, total DESC`
)

// MonthlySummary returns expense and income totals per calendar month,
// ordered by month ascending. Months without transactions do not appear.
func (s *SQLiteStore) MonthlySummary(ctx context.Context) ([]model.MonthlySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, monthlySummaryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []model.MonthlySummary
	for rows.Next() {
		var m model.MonthlySummary
		if err := rows.Scan(&m.Month, &m.Expenses, &m.Income); err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary: %w", err)
		}
		summaries = append(summaries, m)
	}
	return summaries, rows.Err()
}

// MonthlyNetRevenue returns income minus expenses per month, ordered by
// month ascending.
func (s *SQLiteStore) MonthlyNetRevenue(ctx context.Context) ([]model.MonthlyNet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, monthlyNetRevenueQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly net revenue: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var nets []model.MonthlyNet
	for rows.Next() {
		var n model.MonthlyNet
		if err := rows.Scan(&n.Month, &n.Net); err != nil {
			return nil, fmt.Errorf("failed to scan monthly net revenue: %w", err)
		}
		nets = append(nets, n)
	}
	return nets, rows.Err()
}

// RevenueAnalysis returns the combined monthly view of income, expenses and
// revenue, ordered chronologically across year boundaries.
func (s *SQLiteStore) RevenueAnalysis(ctx context.Context) ([]model.RevenuePoint, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, revenueAnalysisQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue analysis: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var points []model.RevenuePoint
	for rows.Next() {
		var p model.RevenuePoint
		if err := rows.Scan(&p.Month, &p.Income, &p.Expenses, &p.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue analysis: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// AverageMonthlyTotal returns the mean of per-month totals for the given
// direction, rounded to 2 decimals. Months with no transactions of that
// direction are excluded from the mean. Returns ErrNoData when the store
// holds no matching transactions at all.
func (s *SQLiteStore) AverageMonthlyTotal(ctx context.Context, d model.Direction) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if !d.Valid() {
		return 0, fmt.Errorf("%w: direction %d", ErrInvalidParameter, d)
	}

	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx, averageMonthlyTotalQuery, int(d)).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to query average monthly %s: %w", d, err)
	}
	if !avg.Valid {
		// AVG over zero rows yields NULL, not an arithmetic fault.
		return 0, fmt.Errorf("average monthly %s: %w", d, ErrNoData)
	}
	return avg.Float64, nil
}

// CategorySummary returns summed amounts per category for the given
// direction, ordered by total descending. With GroupByMainCategory a
// sub-category is attributed to its parent; a category without a parent
// stands for itself.
func (s *SQLiteStore) CategorySummary(ctx context.Context, d model.Direction, g model.Grouping) ([]model.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: direction %d", ErrInvalidParameter, d)
	}
	if !g.Valid() {
		return nil, fmt.Errorf("%w: grouping %d", ErrInvalidParameter, g)
	}

	query := categorySummaryQuery
	if g == model.GroupByMainCategory {
		query = mainCategorySummaryQuery
	}

	rows, err := s.db.QueryContext(ctx, query, int(d))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s summary by %s: %w", d, g, err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.CategoryTotal
	for rows.Next() {
		var t model.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category summary: %w", err)
		}
		t.Category = textutil.StripPictographs(t.Category)
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// MonthlyCategorySummary returns the month-by-category pivot for the given
// direction and grouping. Absent (month, category) combinations read as
// zero; all cells are rounded to 2 decimals.
func (s *SQLiteStore) MonthlyCategorySummary(ctx context.Context, d model.Direction, g model.Grouping) (*model.Pivot, error) {
	rows, err := s.monthlyCategoryRows(ctx, d, g)
	if err != nil {
		return nil, err
	}
	return model.NewPivot(rows), nil
}

func (s *SQLiteStore) monthlyCategoryRows(ctx context.Context, d model.Direction, g model.Grouping) ([]model.CategoryMonthTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: direction %d", ErrInvalidParameter, d)
	}
	if !g.Valid() {
		return nil, fmt.Errorf("%w: grouping %d", ErrInvalidParameter, g)
	}

	query := monthlyCategoryQuery
	if g == model.GroupByMainCategory {
		query = monthlyMainCategoryQuery
	}

	rows, err := s.db.QueryContext(ctx, query, int(d))
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly %s by %s: %w", d, g, err)
	}
	defer func() { _ = rows.Close() }()

	return scanCategoryMonthRows(rows)
}

// AverageExpenseByMainCategory returns the average of per-month expense
// sums for each main category, ordered by average descending.
func (s *SQLiteStore) AverageExpenseByMainCategory(ctx context.Context) ([]model.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, averageExpenseByMainCategoryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query average expense by main category: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.CategoryTotal
	for rows.Next() {
		var t model.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan average expense: %w", err)
		}
		t.Category = textutil.StripPictographs(t.Category)
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// PaymentMethodSummary returns summed amounts per payment method for the
// given direction, ordered by total descending.
func (s *SQLiteStore) PaymentMethodSummary(ctx context.Context, d model.Direction) ([]model.MethodTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: direction %d", ErrInvalidParameter, d)
	}

	rows, err := s.db.QueryContext(ctx, paymentMethodSummaryQuery, int(d))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by payment method: %w", d, err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.MethodTotal
	for rows.Next() {
		var t model.MethodTotal
		if err := rows.Scan(&t.Method, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan payment method summary: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// PeakExpenseMonth returns the single month with the highest total expense.
// Returns ErrNoData when the store holds no expenses.
func (s *SQLiteStore) PeakExpenseMonth(ctx context.Context) (model.MonthTotal, error) {
	if err := validateContext(ctx); err != nil {
		return model.MonthTotal{}, err
	}

	var peak model.MonthTotal
	err := s.db.QueryRowContext(ctx, peakExpenseMonthQuery).Scan(&peak.Month, &peak.Total)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.MonthTotal{}, fmt.Errorf("peak expense month: %w", ErrNoData)
		}
		return model.MonthTotal{}, fmt.Errorf("failed to query peak expense month: %w", err)
	}
	return peak, nil
}

// MonthlyExpenseDistribution returns long-form month-by-sub-category
// expense totals, ordered by month ascending then total descending. Feeds
// the per-month pie charts.
func (s *SQLiteStore) MonthlyExpenseDistribution(ctx context.Context) ([]model.CategoryMonthTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, expenseDistributionQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense distribution: %w", err)
	}
	defer func() { _ = rows.Close() }()

	dist, err := scanCategoryMonthRows(rows)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded expense distribution", "rows", len(dist))
	return dist, nil
}

func scanCategoryMonthRows(rows *sql.Rows) ([]model.CategoryMonthTotal, error) {
	var result []model.CategoryMonthTotal
	for rows.Next() {
		var r model.CategoryMonthTotal
		if err := rows.Scan(&r.Month, &r.Category, &r.Total); err != nil {
			return nil, fmt.Errorf("failed to scan month/category row: %w", err)
		}
		r.Category = textutil.StripPictographs(r.Category)
		result = append(result, r)
	}
	return result, rows.Err()
}
