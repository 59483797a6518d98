package model

// InterestAreaModel mirrors the 'interest_areas' table.
type InterestAreaModel struct {
	InterestAreaID int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(120);uniqueIndex;not null"`

	Majors []MajorModel `gorm:"foreignKey:InterestAreaID"`
}

// TableName explicitly sets the table name for GORM.
func (InterestAreaModel) TableName() string {
	return "interest_areas"
}

// MajorModel mirrors the 'majors' table.
type MajorModel struct {
	MajorID        int64  `gorm:"primaryKey;autoIncrement"`
	MajorName      string `gorm:"type:varchar(160);not null"`
	InterestAreaID *int64

	Stats []MajorStatModel `gorm:"foreignKey:MajorID"`
}

// TableName explicitly sets the table name for GORM.
func (MajorModel) TableName() string {
	return "majors"
}

// DataSourceModel mirrors the 'data_sources' table.
type DataSourceModel struct {
	SourceID int64   `gorm:"primaryKey;autoIncrement"`
	Name     string  `gorm:"type:varchar(160);not null"`
	URL      *string `gorm:"column:url;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (DataSourceModel) TableName() string {
	return "data_sources"
}

// MajorStatModel mirrors the 'major_stats' table. JobGrowthRate is a fraction, not a percentage.
type MajorStatModel struct {
	StatID        int64 `gorm:"primaryKey;autoIncrement"`
	MajorID       int64 `gorm:"not null;index"`
	SourceID      *int64
	AvgSalary     *float64 `gorm:"type:numeric(12,2)"`
	JobGrowthRate *float64 `gorm:"type:numeric(6,4)"`
	GradCount     *int64
	Year          *int

	Source *DataSourceModel `gorm:"foreignKey:SourceID"`
}

// TableName explicitly sets the table name for GORM.
func (MajorStatModel) TableName() string {
	return "major_stats"
}
