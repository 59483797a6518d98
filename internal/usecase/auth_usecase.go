// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput accepts either a username or an email as the identifier.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's identity.
type SignupOutput struct {
	AccountID int64
	Username  string
}

// LoginOutput carries the authenticated account. AccessToken is empty when token issuing is disabled.
type LoginOutput struct {
	AccountID   int64
	Username    string
	AccessToken string
	ExpiresAt   time.Time
}

// AuthUsecase defines account creation and credential checks.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
