package repository

import (
	"context"
	"strings"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/errors"
)

// ErrAccountNotFound is returned when an account lookup matches no row.
var ErrAccountNotFound = errors.New("account not found")

// Account fields that can collide with another account.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

// UpdateResult reports how UpdateFields resolved.
type UpdateResult struct {
	Outcome Outcome
	// Conflict names the colliding field when Outcome is OutcomeDuplicate.
	Conflict string
}

// AccountRepository owns account creation and lookup and enforces global uniqueness of username and email.
type AccountRepository interface {
	// Create inserts the account in one guarded statement. On OutcomeApplied the ID and timestamps are set.
	Create(ctx context.Context, account *entity.Account) (Outcome, error)

	FindByID(ctx context.Context, id int64) (*entity.Account, error)
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsernameOrEmail treats identifiers containing "@" as emails.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Account, error)

	// UpdateFields applies every provided field or none of them.
	UpdateFields(ctx context.Context, id int64, update entity.AccountUpdate) (UpdateResult, error)

	// Count returns the number of accounts.
	Count(ctx context.Context) (int64, error)
}

// IsEmailIdentifier reports whether a login identifier should be matched against emails.
func IsEmailIdentifier(identifier string) bool {
	return strings.Contains(identifier, "@")
}
