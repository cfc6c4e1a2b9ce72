package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// CreateLevelInput carries the fields of a new level. End is nil for the
// unbounded top tier.
type CreateLevelInput struct {
	Title string
	Value int
	Start int64
	End   *int64
}

// UpdateLevelInput carries a partial level update.
type UpdateLevelInput struct {
	ID    uuid.UUID
	Title *string
	Value *int
	Start *int64
	End   *int64
}

// LevelService defines the admin-facing ladder administration operations.
// Range integrity (no gaps, no overlaps, one unbounded tier) is the admin's
// responsibility; the service does not validate it transactionally.
type LevelService interface {
	Create(ctx context.Context, input CreateLevelInput) (*domain.Level, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Level, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Level, error)
	Update(ctx context.Context, input UpdateLevelInput) (*domain.Level, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
