package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
//
// IncrementScore and SetLevelIfScore together form the storage half of the
// progression engine: the increment is a single-statement atomic update (no
// read-modify-write across round trips), and the level write is guarded by
// the score it was resolved from.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// FindByCredential looks a user up by username or email.
	FindByCredential(ctx context.Context, credential string) (*domain.User, error)
	// CountAdmins reports how many Admin users exist (bootstrap guard).
	CountAdmins(ctx context.Context) (int64, error)
	// UpdateProfile persists mutable profile fields (never score or level).
	UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error)

	// IncrementScore applies "score = COALESCE(score, 0) + delta" in one
	// statement and returns the post-update score.
	IncrementScore(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
	// SetLevelIfScore writes levelID (nil clears the level) only while the
	// stored score still equals expectedScore. Returns domain.ErrStaleWrite
	// when a concurrent increment moved the score, domain.ErrUserNotFound
	// when the row is gone.
	SetLevelIfScore(ctx context.Context, id uuid.UUID, levelID *uuid.UUID, expectedScore int64) error
}
