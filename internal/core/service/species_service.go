package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
)

// SpeciesService implements the species catalogue. Changing a base point
// value only affects future catches; stored catch points are immutable.
type SpeciesService struct {
	repo   ports.SpeciesRepository
	logger zerolog.Logger
}

func NewSpeciesService(repo ports.SpeciesRepository, logger zerolog.Logger) *SpeciesService {
	return &SpeciesService{repo: repo, logger: logger}
}

func (s *SpeciesService) Create(ctx context.Context, input ports.CreateSpeciesInput) (*domain.Species, error) {
	created, err := s.repo.Create(ctx, &domain.Species{
		Name:       input.Name,
		PointValue: input.PointValue,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("species", created.Name).Int64("point_value", created.PointValue).Msg("species created")
	return created, nil
}

func (s *SpeciesService) Get(ctx context.Context, id uuid.UUID) (*domain.Species, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SpeciesService) List(ctx context.Context, page, pageSize int) ([]domain.Species, error) {
	return s.repo.List(ctx, page, pageSize)
}

func (s *SpeciesService) Update(ctx context.Context, input ports.UpdateSpeciesInput) (*domain.Species, error) {
	sp, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		sp.Name = *input.Name
	}
	if input.PointValue != nil {
		sp.PointValue = *input.PointValue
	}
	return s.repo.Update(ctx, sp)
}

func (s *SpeciesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
