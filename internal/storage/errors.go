package storage

import "errors"

// Store errors.
var (
	// ErrNoData is returned when a summary has no matching transactions at
	// all, e.g. the average of an empty set of months or the peak month of
	// a store without expenses.
	ErrNoData = errors.New("no matching transactions")

	// ErrInvalidParameter is returned when a direction or grouping value is
	// outside the known set.
	ErrInvalidParameter = errors.New("invalid parameter")
)
