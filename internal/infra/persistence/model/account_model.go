// Package model holds the GORM persistence models. They are exported so the GORM Gen tool can use them from other packages.
package model

import "time"

// AccountModel mirrors the 'accounts' table. Username and email are each globally unique.
type AccountModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
	UpdatedAt    time.Time `gorm:"not null;default:now()"`

	SavedComparisons []SavedComparisonModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// SavedComparisonModel mirrors the 'saved_comparisons' table. At most one row exists per (account_id, major_id).
type SavedComparisonModel struct {
	ComparisonID int64     `gorm:"primaryKey;autoIncrement"`
	AccountID    int64     `gorm:"not null;uniqueIndex:uq_saved_comparisons_account_major"`
	MajorID      int64     `gorm:"not null;uniqueIndex:uq_saved_comparisons_account_major"`
	SavedAt      time.Time `gorm:"not null;default:now()"`

	Major *MajorModel `gorm:"foreignKey:MajorID"`
}

// TableName explicitly sets the table name for GORM.
func (SavedComparisonModel) TableName() string {
	return "saved_comparisons"
}
