package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
)

// LevelService implements ladder administration. Deleting a level that users
// still reference leaves their level unassigned; the next progression write
// re-resolves it.
type LevelService struct {
	repo   ports.LevelRepository
	logger zerolog.Logger
}

func NewLevelService(repo ports.LevelRepository, logger zerolog.Logger) *LevelService {
	return &LevelService{repo: repo, logger: logger}
}

func (s *LevelService) Create(ctx context.Context, input ports.CreateLevelInput) (*domain.Level, error) {
	created, err := s.repo.Create(ctx, &domain.Level{
		Title: input.Title,
		Value: input.Value,
		Start: input.Start,
		End:   input.End,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("level_id", created.ID.String()).Int("value", created.Value).Msg("level created")
	return created, nil
}

func (s *LevelService) Get(ctx context.Context, id uuid.UUID) (*domain.Level, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LevelService) List(ctx context.Context, page, pageSize int) ([]domain.Level, error) {
	return s.repo.List(ctx, page, pageSize)
}

func (s *LevelService) Update(ctx context.Context, input ports.UpdateLevelInput) (*domain.Level, error) {
	level, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		level.Title = *input.Title
	}
	if input.Value != nil {
		level.Value = *input.Value
	}
	if input.Start != nil {
		level.Start = *input.Start
	}
	if input.End != nil {
		level.End = input.End
	}
	return s.repo.Update(ctx, level)
}

func (s *LevelService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("level_id", id.String()).Msg("level deleted")
	return nil
}
