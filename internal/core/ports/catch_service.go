package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// Actor identifies the authenticated caller for ownership checks and
// ranking-cache writes.
type Actor struct {
	UserID   uuid.UUID
	Username string
	Role     domain.Role
}

// CreateCatchInput carries all data needed to log a new catch. Length and
// Weight are the caller-supplied magnitudes multiplied into the point value.
type CreateCatchInput struct {
	Actor       Actor
	SpeciesID   uuid.UUID
	LocationID  *uuid.UUID
	Length      int64
	Weight      int64
	Description string
	Date        time.Time
	Pictures    []string
}

// UpdateCatchInput carries a partial catch update. Nil fields are left
// untouched.
type UpdateCatchInput struct {
	ID          uuid.UUID
	Actor       Actor
	Length      *int64
	Weight      *int64
	LocationID  *uuid.UUID
	Description *string
	Date        *time.Time
	Pictures    []string
}

// CatchService defines use-case operations for catches. Create and Update
// run the catch write and the score/level progression in one transaction:
// both land or neither does.
type CatchService interface {
	Create(ctx context.Context, input CreateCatchInput) (*domain.Catch, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Catch, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Catch, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Catch, error)
	Update(ctx context.Context, input UpdateCatchInput) (*domain.Catch, error)
	Delete(ctx context.Context, id uuid.UUID, actor Actor) error
}
