package entity

import "time"

// SavedComparison bookmarks one catalog major for one account.
type SavedComparison struct {
	AccountID int64
	MajorID   int64
	SavedAt   time.Time
}

// SavedComparisonView is a saved comparison joined with the major name and its aggregated job statistics.
type SavedComparisonView struct {
	MajorID   int64
	MajorName string
	// AverageSalary is nil when the major has no statistics rows.
	AverageSalary *float64
	JobStatCount  int64
	SavedAt       time.Time
}
