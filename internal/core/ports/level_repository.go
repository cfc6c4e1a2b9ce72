package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// LevelRepository defines persistence operations for score levels.
type LevelRepository interface {
	Create(ctx context.Context, level *domain.Level) (*domain.Level, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Level, error)
	// ListOrderedByValue returns every level sorted ascending by ordinal,
	// the order the ladder resolves in.
	ListOrderedByValue(ctx context.Context) ([]domain.Level, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Level, error)
	Update(ctx context.Context, level *domain.Level) (*domain.Level, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
