package model

import "time"

// Direction distinguishes expense transactions from income transactions.
// The numeric values mirror the DO_TYPE column of the money-manager store.
type Direction int

const (
	// DirectionIncome marks money coming in (DO_TYPE = 0).
	DirectionIncome Direction = 0
	// DirectionExpense marks money going out (DO_TYPE = 1).
	DirectionExpense Direction = 1
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

func (d Direction) String() string {
	switch d {
	case DirectionIncome:
		return "income"
	case DirectionExpense:
		return "expense"
	default:
		return "unknown"
	}
}

// Grouping selects the category-resolution rule for summary queries.
type Grouping int

const (
	// GroupByCategory groups by the transaction's own category name.
	GroupByCategory Grouping = iota
	// GroupByMainCategory collapses a sub-category into its parent: the
	// parent's name if one exists, the category's own name otherwise.
	GroupByMainCategory
)

// Valid reports whether g is a known grouping mode.
func (g Grouping) Valid() bool {
	return g == GroupByCategory || g == GroupByMainCategory
}

func (g Grouping) String() string {
	if g == GroupByMainCategory {
		return "main_category"
	}
	return "category"
}

// Transaction is a single monetary movement as stored by the external
// money-manager application.
type Transaction struct {
	Date       time.Time
	Direction  Direction
	Amount     float64
	CategoryID int64
	AssetID    int64
}

// Category is a named category, optionally nested one level under a parent.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64
}

// Asset is a payment method or account with a display name.
type Asset struct {
	ID   int64
	Name string
}
