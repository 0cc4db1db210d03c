package model

// MonthlySummary holds the expense and income totals for one calendar month.
type MonthlySummary struct {
	Month    string  `csv:"month"`
	Expenses float64 `csv:"expenses"`
	Income   float64 `csv:"income"`
}

// MonthlyNet holds income minus expenses for one month.
type MonthlyNet struct {
	Month string  `csv:"month"`
	Net   float64 `csv:"net_revenue"`
}

// RevenuePoint is one month of the combined revenue view. Month is labeled
// MM-YYYY; rows are ordered chronologically, not lexicographically.
type RevenuePoint struct {
	Month    string  `csv:"month"`
	Income   float64 `csv:"income"`
	Expenses float64 `csv:"expenses"`
	Revenue  float64 `csv:"revenue"`
}

// CategoryTotal is a summed amount for one category, used for both
// sub-category and main-category summaries. Results are ordered by Total
// descending.
type CategoryTotal struct {
	Category string  `csv:"category"`
	Total    float64 `csv:"total"`
}

// MethodTotal is a summed amount for one payment method, ordered by Total
// descending.
type MethodTotal struct {
	Method string  `csv:"payment_method"`
	Total  float64 `csv:"total"`
}

// MonthTotal is a single month with its summed amount.
type MonthTotal struct {
	Month string  `csv:"month"`
	Total float64 `csv:"total"`
}

// CategoryMonthTotal is one long-form row of a month-by-category
// distribution: the summed amount for a (month, category) pair.
type CategoryMonthTotal struct {
	Month    string  `csv:"month"`
	Category string  `csv:"category"`
	Total    float64 `csv:"total"`
}
