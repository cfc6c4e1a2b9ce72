package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pechomax/pechomax-api/internal/api/metrics"
	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
)

// CatchService implements catch logging. Creates and updates run the catch
// write and the score/level progression inside one transaction so the catch
// record and the score never diverge.
type CatchService struct {
	catches     ports.CatchRepository
	species     ports.SpeciesRepository
	progression ports.ProgressionEngine
	tx          ports.TxRunner
	cache       ports.ScoreCache
	logger      zerolog.Logger
}

func NewCatchService(
	catches ports.CatchRepository,
	species ports.SpeciesRepository,
	progression ports.ProgressionEngine,
	tx ports.TxRunner,
	cache ports.ScoreCache,
	logger zerolog.Logger,
) *CatchService {
	return &CatchService{
		catches:     catches,
		species:     species,
		progression: progression,
		tx:          tx,
		cache:       cache,
		logger:      logger,
	}
}

// ownerScope translates the actor into the ownership filter repositories
// apply: admins see every row, users only their own.
func ownerScope(actor ports.Actor) uuid.UUID {
	switch actor.Role {
	case domain.RoleAdmin:
		return uuid.Nil
	case domain.RoleUser:
		return actor.UserID
	}
	return actor.UserID
}

// Create logs a catch worth speciesBase × length × weight points and applies
// that delta to the owner's score and level in the same transaction.
func (s *CatchService) Create(ctx context.Context, input ports.CreateCatchInput) (*domain.Catch, error) {
	sp, err := s.species.FindByID(ctx, input.SpeciesID)
	if err != nil {
		return nil, err
	}

	c := &domain.Catch{
		UserID:      input.Actor.UserID,
		SpeciesID:   sp.ID,
		LocationID:  input.LocationID,
		Length:      input.Length,
		Weight:      input.Weight,
		Description: input.Description,
		Date:        input.Date,
		Pictures:    input.Pictures,
		PointValue:  domain.CatchPointValue(sp.PointValue, input.Length, input.Weight),
	}

	var newScore int64
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		created, err := s.catches.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("create catch: %w", err)
		}
		c = created

		newScore, _, err = s.progression.ApplyDelta(ctx, input.Actor.UserID, c.PointValue)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.CatchesLoggedTotal.WithLabelValues(sp.Name).Inc()
	s.logger.Info().
		Str("catch_id", c.ID.String()).
		Str("user_id", input.Actor.UserID.String()).
		Int64("points", c.PointValue).
		Msg("catch logged")

	s.refreshCache(ctx, input.Actor.Username, newScore)
	return c, nil
}

// Update applies a partial edit. When the magnitudes change, the point value
// is recomputed and the difference (possibly negative) is applied to the
// owner's score so stored points and score stay consistent.
func (s *CatchService) Update(ctx context.Context, input ports.UpdateCatchInput) (*domain.Catch, error) {
	scope := ownerScope(input.Actor)

	c, err := s.catches.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if scope != uuid.Nil && c.UserID != scope {
		return nil, domain.ErrCatchNotFound
	}

	oldPoints := c.PointValue
	if input.Length != nil {
		c.Length = *input.Length
	}
	if input.Weight != nil {
		c.Weight = *input.Weight
	}
	if input.LocationID != nil {
		c.LocationID = input.LocationID
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.Date != nil {
		c.Date = *input.Date
	}
	if input.Pictures != nil {
		c.Pictures = input.Pictures
	}

	if input.Length != nil || input.Weight != nil {
		sp, err := s.species.FindByID(ctx, c.SpeciesID)
		if err != nil {
			return nil, err
		}
		c.PointValue = domain.CatchPointValue(sp.PointValue, c.Length, c.Weight)
	}

	delta := c.PointValue - oldPoints
	var newScore int64
	scoreChanged := false
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		updated, err := s.catches.Update(ctx, c, scope)
		if err != nil {
			return err
		}
		c = updated

		if delta != 0 {
			newScore, _, err = s.progression.ApplyDelta(ctx, c.UserID, delta)
			scoreChanged = true
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if scoreChanged && input.Actor.UserID == c.UserID {
		s.refreshCache(ctx, input.Actor.Username, newScore)
	}
	return c, nil
}

// Delete removes a catch. Points already awarded are not reclaimed.
func (s *CatchService) Delete(ctx context.Context, id uuid.UUID, actor ports.Actor) error {
	return s.catches.Delete(ctx, id, ownerScope(actor))
}

func (s *CatchService) Get(ctx context.Context, id uuid.UUID) (*domain.Catch, error) {
	return s.catches.FindByID(ctx, id)
}

func (s *CatchService) List(ctx context.Context, page, pageSize int) ([]domain.Catch, error) {
	return s.catches.List(ctx, page, pageSize)
}

func (s *CatchService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Catch, error) {
	return s.catches.ListByUser(ctx, userID)
}

// refreshCache pushes the new score into the ranking cache. Best effort: the
// relational store stays authoritative, a miss only means a stale rank.
func (s *CatchService) refreshCache(ctx context.Context, username string, score int64) {
	if s.cache == nil || username == "" {
		return
	}
	if err := s.cache.Upsert(ctx, username, score); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("ranking cache refresh failed")
	}
}
