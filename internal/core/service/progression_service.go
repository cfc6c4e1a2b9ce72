package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"github.com/pechomax/pechomax-api/internal/api/metrics"
	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
)

const (
	levelWriteRetries = 5
	levelWriteBackoff = 5 * time.Millisecond
)

// ProgressionService keeps a user's score and level mutually consistent
// under concurrent catch activity. The score write is a single atomic
// increment at the store; the level write is guarded by the score it was
// resolved from and retried when a concurrent increment races it.
type ProgressionService struct {
	users  ports.UserRepository
	levels ports.LevelRepository
	logger zerolog.Logger
}

func NewProgressionService(users ports.UserRepository, levels ports.LevelRepository, logger zerolog.Logger) *ProgressionService {
	return &ProgressionService{users: users, levels: levels, logger: logger}
}

// ApplyDelta adds delta to the user's score and re-resolves their level
// against the post-update score. Returns the new score and the resolved
// level id (nil when no level covers it or the ladder is empty).
func (s *ProgressionService) ApplyDelta(ctx context.Context, userID uuid.UUID, delta int64) (int64, *uuid.UUID, error) {
	timer := time.Now()
	defer func() {
		metrics.ProgressionDuration.Observe(time.Since(timer).Seconds())
	}()

	newScore, err := s.users.IncrementScore(ctx, userID, delta)
	if err != nil {
		return 0, nil, err
	}

	sign := "positive"
	if delta < 0 {
		sign = "negative"
	}
	metrics.ScoreDeltasAppliedTotal.WithLabelValues(sign).Inc()

	levels, err := s.levels.ListOrderedByValue(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("load ladder: %w", err)
	}
	ladder := domain.NewLadder(levels)

	// The level must be resolved against the score the row actually holds.
	// If a concurrent increment moves the score between our increment and
	// the guarded write, re-read and resolve again.
	score := newScore
	var levelID *uuid.UUID
	backoff := retry.WithMaxRetries(levelWriteRetries, retry.NewExponential(levelWriteBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		target, rerr := s.resolve(ladder, score)
		if rerr != nil {
			return rerr
		}
		if werr := s.users.SetLevelIfScore(ctx, userID, target, score); werr != nil {
			if errors.Is(werr, domain.ErrStaleWrite) {
				metrics.ProgressionRetriesTotal.Inc()
				user, ferr := s.users.FindByID(ctx, userID)
				if ferr != nil {
					return ferr
				}
				score = user.CurrentScore()
				return retry.RetryableError(werr)
			}
			return werr
		}
		levelID = target
		return nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("level write: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Int64("delta", delta).
		Int64("score", score).
		Msg("progression applied")

	return score, levelID, nil
}

// resolve maps a score to a level id, degrading to "no level" when the
// ladder is empty or leaves the score uncovered.
func (s *ProgressionService) resolve(ladder domain.Ladder, score int64) (*uuid.UUID, error) {
	id, err := ladder.Resolve(score)
	switch {
	case err == nil:
		return &id, nil
	case errors.Is(err, domain.ErrNoLevelsConfigured), errors.Is(err, domain.ErrNoLevelForScore):
		s.logger.Warn().Int64("score", score).Err(err).Msg("score left without level")
		return nil, nil
	default:
		return nil, err
	}
}
