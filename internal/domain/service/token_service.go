package service

import (
	"time"

	"majorexplorer/internal/errors"
)

// ErrInvalidToken is returned for tokens that are malformed, expired or signed with another key.
var ErrInvalidToken = errors.New("invalid or expired token")

// AccessToken is a signed bearer token for one account.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a short-lived access token whose subject is the account ID.
	GenerateAccessToken(accountID int64) (*AccessToken, error)

	// ValidateAccessToken checks the token and returns the account ID it was issued for.
	ValidateAccessToken(tokenString string) (int64, error)
}
