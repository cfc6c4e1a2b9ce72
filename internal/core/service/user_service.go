package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
	"github.com/pechomax/pechomax-api/internal/core/token"
)

// UserService covers the caller's own profile. A profile change re-issues the
// session token instead of mutating the outstanding claim.
type UserService struct {
	repo   ports.UserRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, codec *token.Codec, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, codec: codec, logger: logger}
}

func (s *UserService) GetSelf(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies a partial profile edit and returns a freshly signed
// session token for the updated user.
func (s *UserService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (string, *domain.User, error) {
	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return "", nil, err
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.ProfilePic != nil {
		user.ProfilePic = *input.ProfilePic
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.Region != nil {
		user.Region = *input.Region
	}
	if input.ZipCode != nil {
		user.ZipCode = *input.ZipCode
	}

	updated, err := s.repo.UpdateProfile(ctx, user)
	if err != nil {
		return "", nil, err
	}

	tkn, err := s.codec.Issue(updated)
	if err != nil {
		return "", nil, err
	}
	return tkn, updated, nil
}
