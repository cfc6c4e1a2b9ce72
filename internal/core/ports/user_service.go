package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// UpdateProfileInput carries a partial profile update for the caller.
type UpdateProfileInput struct {
	UserID      uuid.UUID
	Email       *string
	PhoneNumber *string
	ProfilePic  *string
	City        *string
	Region      *string
	ZipCode     *string
}

// UserService covers the caller-facing profile operations. UpdateProfile
// returns a freshly signed session token: identity claims are never mutated
// in place, a profile change re-issues the whole claim.
type UserService interface {
	GetSelf(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (string, *domain.User, error)
}
