package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// CreateSpeciesInput carries the fields of a new species.
type CreateSpeciesInput struct {
	Name       string
	PointValue int64
}

// UpdateSpeciesInput carries a partial species update.
type UpdateSpeciesInput struct {
	ID         uuid.UUID
	Name       *string
	PointValue *int64
}

// SpeciesService defines species catalogue operations.
type SpeciesService interface {
	Create(ctx context.Context, input CreateSpeciesInput) (*domain.Species, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Species, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Species, error)
	Update(ctx context.Context, input UpdateSpeciesInput) (*domain.Species, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
