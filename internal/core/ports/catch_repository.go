package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// CatchRepository defines persistence operations for catches.
//
// Update and Delete take an ownerID scope: uuid.Nil means no ownership
// filter (admin), any other value restricts the statement to rows owned by
// that user. The scoping lives in the query itself so a non-owner can never
// race past the check.
type CatchRepository interface {
	Create(ctx context.Context, c *domain.Catch) (*domain.Catch, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Catch, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Catch, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Catch, error)
	Update(ctx context.Context, c *domain.Catch, ownerID uuid.UUID) (*domain.Catch, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}
