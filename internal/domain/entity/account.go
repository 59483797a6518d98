// Package entity contains the core business objects of the application.
package entity

import "time"

// Account is a registered user identity with a unique username and email.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountUpdate is a partial set of account fields. Nil fields are left untouched.
type AccountUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update would change nothing.
func (u AccountUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil
}
