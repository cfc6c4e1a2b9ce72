package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// SpeciesRepository defines persistence operations for species.
type SpeciesRepository interface {
	Create(ctx context.Context, s *domain.Species) (*domain.Species, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Species, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Species, error)
	Update(ctx context.Context, s *domain.Species) (*domain.Species, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
