package entity

// InterestArea groups majors by field of interest.
type InterestArea struct {
	ID   int64
	Name string
}

// Major is a catalog major.
type Major struct {
	ID             int64
	Name           string
	InterestAreaID *int64
}

// MajorSummary aggregates the statistics of one major.
type MajorSummary struct {
	MajorID        int64
	MajorName      string
	InterestAreaID *int64
	AverageSalary  *float64
	// JobGrowthRate is expressed in percent.
	JobGrowthRate *float64
	Grads         *float64
}

// MajorFilter narrows the major summaries. Minimums apply to the aggregated averages.
type MajorFilter struct {
	InterestAreaID *int64
	MinSalary      float64
	MinGrowth      float64
}

// MajorJobStat is one statistics row for a major together with its data source.
type MajorJobStat struct {
	StatID        int64
	AvgSalary     *float64
	JobGrowthRate *float64
	GradCount     *int64
	Year          *int
	SourceName    *string
	SourceURL     *string
}

// HealthStatus describes the state of the persistence layer.
type HealthStatus struct {
	DatabaseConnected   bool
	AccountsTableExists bool
	AccountsCount       int64
}
