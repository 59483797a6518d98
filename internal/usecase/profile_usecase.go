package usecase

import (
	"context"

	"majorexplorer/internal/domain/entity"
)

// UpdateProfileInput is a partial update. Nil or empty fields are left unchanged.
type UpdateProfileInput struct {
	Username *string
	Email    *string
	Password *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, accountID int64) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID int64, input *UpdateProfileInput) error
}
