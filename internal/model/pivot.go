package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Pivot is a month-by-category cross-tabulation. Rows are months in
// ascending order, columns are category names in lexicographic order, and
// every cell holds the summed amount for that (month, category) pair,
// rounded to 2 decimals. Combinations absent from the source rows read as
// zero.
type Pivot struct {
	Months     []string
	Categories []string
	cells      map[string]map[string]float64
}

// NewPivot builds a Pivot from long-form rows.
func NewPivot(rows []CategoryMonthTotal) *Pivot {
	p := &Pivot{cells: make(map[string]map[string]float64)}

	monthSeen := make(map[string]bool)
	categorySeen := make(map[string]bool)
	for _, r := range rows {
		if !monthSeen[r.Month] {
			monthSeen[r.Month] = true
			p.Months = append(p.Months, r.Month)
		}
		if !categorySeen[r.Category] {
			categorySeen[r.Category] = true
			p.Categories = append(p.Categories, r.Category)
		}
		if p.cells[r.Month] == nil {
			p.cells[r.Month] = make(map[string]float64)
		}
		p.cells[r.Month][r.Category] += r.Total
	}
	sort.Strings(p.Months)
	sort.Strings(p.Categories)

	for _, byCategory := range p.cells {
		for name, total := range byCategory {
			byCategory[name] = Round2(total)
		}
	}
	return p
}

// Value returns the cell for (month, category), zero when the combination
// never occurred.
func (p *Pivot) Value(month, category string) float64 {
	return p.cells[month][category]
}

// Series returns one value per month (in Months order) for the given
// category column. Used to draw one trend line per category.
func (p *Pivot) Series(category string) []float64 {
	values := make([]float64, len(p.Months))
	for i, m := range p.Months {
		values[i] = p.cells[m][category]
	}
	return values
}

// Empty reports whether the pivot has no rows at all.
func (p *Pivot) Empty() bool {
	return len(p.Months) == 0
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
