package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
)

func ptr(v int64) *int64 { return &v }

// stubUserRepo implements the atomic storage contract in memory: the
// increment is a single guarded mutation and the level write checks the
// score it was resolved from.
type stubUserRepo struct {
	mu      sync.Mutex
	exists  bool
	score   *int64
	levelID *uuid.UUID

	// staleWrites makes the next N level writes bump the score by 5 first
	// and fail, simulating a concurrent increment racing the CAS.
	staleWrites int
	levelCalls  int
}

func (r *stubUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.exists {
		return nil, domain.ErrUserNotFound
	}
	u := &domain.User{ID: id, LevelID: r.levelID}
	if r.score != nil {
		s := *r.score
		u.Score = &s
	}
	return u, nil
}

func (r *stubUserRepo) FindByCredential(ctx context.Context, credential string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) CountAdmins(ctx context.Context) (int64, error) { return 0, nil }

func (r *stubUserRepo) UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) IncrementScore(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.exists {
		return 0, domain.ErrUserNotFound
	}
	var current int64
	if r.score != nil {
		current = *r.score
	}
	current += delta
	r.score = &current
	return current, nil
}

func (r *stubUserRepo) SetLevelIfScore(ctx context.Context, id uuid.UUID, levelID *uuid.UUID, expectedScore int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levelCalls++
	if !r.exists {
		return domain.ErrUserNotFound
	}
	if r.staleWrites > 0 {
		r.staleWrites--
		bumped := expectedScore + 5
		r.score = &bumped
		return domain.ErrStaleWrite
	}
	var current int64
	if r.score != nil {
		current = *r.score
	}
	if current != expectedScore {
		return domain.ErrStaleWrite
	}
	r.levelID = levelID
	return nil
}

type stubLevelRepo struct {
	levels []domain.Level
}

func (r *stubLevelRepo) Create(ctx context.Context, l *domain.Level) (*domain.Level, error) {
	return l, nil
}

func (r *stubLevelRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Level, error) {
	for i := range r.levels {
		if r.levels[i].ID == id {
			return &r.levels[i], nil
		}
	}
	return nil, domain.ErrLevelNotFound
}

func (r *stubLevelRepo) ListOrderedByValue(ctx context.Context) ([]domain.Level, error) {
	return r.levels, nil
}

func (r *stubLevelRepo) List(ctx context.Context, page, pageSize int) ([]domain.Level, error) {
	return r.levels, nil
}

func (r *stubLevelRepo) Update(ctx context.Context, l *domain.Level) (*domain.Level, error) {
	return l, nil
}

func (r *stubLevelRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

var _ ports.UserRepository = (*stubUserRepo)(nil)
var _ ports.LevelRepository = (*stubLevelRepo)(nil)

func testLadderLevels() ([]domain.Level, [4]uuid.UUID) {
	var ids [4]uuid.UUID
	for i := range ids {
		ids[i] = uuid.New()
	}
	return []domain.Level{
		{ID: ids[0], Title: "Novice", Value: 1, Start: 0, End: ptr(100)},
		{ID: ids[1], Title: "Angler", Value: 2, Start: 100, End: ptr(200)},
		{ID: ids[2], Title: "Expert", Value: 3, Start: 200, End: ptr(300)},
		{ID: ids[3], Title: "Legend", Value: 4, Start: 300, End: nil},
	}, ids
}

func TestProgression_NullScoreResolvesAgainstNewScore(t *testing.T) {
	levels, ids := testLadderLevels()
	users := &stubUserRepo{exists: true} // score is NULL
	svc := NewProgressionService(users, &stubLevelRepo{levels: levels}, zerolog.Nop())

	newScore, levelID, err := svc.ApplyDelta(context.Background(), uuid.New(), 150)
	if err != nil {
		t.Fatalf("apply delta: %v", err)
	}
	if newScore != 150 {
		t.Fatalf("expected score 150, got %d", newScore)
	}
	// The level must come from the post-update score (150 → Angler), not
	// from the pre-update NULL-as-zero score.
	if levelID == nil || *levelID != ids[1] {
		t.Fatalf("expected level %s for score 150, got %v", ids[1], levelID)
	}
	if users.levelID == nil || *users.levelID != ids[1] {
		t.Fatalf("stored level does not match resolved level")
	}
}

func TestProgression_ConcurrentDeltasAllLand(t *testing.T) {
	levels, _ := testLadderLevels()
	users := &stubUserRepo{exists: true, score: ptr(50)}
	svc := NewProgressionService(users, &stubLevelRepo{levels: levels}, zerolog.Nop())

	userID := uuid.New()
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := svc.ApplyDelta(context.Background(), userID, 20); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("apply delta: %v", err)
	}

	if got := *users.score; got != 90 {
		t.Fatalf("lost update: expected 50+20+20=90, got %d", got)
	}
}

func TestProgression_StaleLevelWriteRetried(t *testing.T) {
	levels, ids := testLadderLevels()
	users := &stubUserRepo{exists: true, score: ptr(90), staleWrites: 1}
	svc := NewProgressionService(users, &stubLevelRepo{levels: levels}, zerolog.Nop())

	// +5 lands 95; the first level write is raced by another +5 (stub),
	// so the retry must re-read 100 and resolve the next tier.
	newScore, levelID, err := svc.ApplyDelta(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("apply delta: %v", err)
	}
	if newScore != 100 {
		t.Fatalf("expected re-read score 100, got %d", newScore)
	}
	if levelID == nil || *levelID != ids[1] {
		t.Fatalf("expected level resolved against re-read score, got %v", levelID)
	}
	if users.levelCalls != 2 {
		t.Fatalf("expected 2 level writes (stale then retry), got %d", users.levelCalls)
	}
}

func TestProgression_NoLevelsConfigured(t *testing.T) {
	users := &stubUserRepo{exists: true, score: ptr(10)}
	svc := NewProgressionService(users, &stubLevelRepo{}, zerolog.Nop())

	newScore, levelID, err := svc.ApplyDelta(context.Background(), uuid.New(), 40)
	if err != nil {
		t.Fatalf("apply delta must degrade, not fail: %v", err)
	}
	if newScore != 50 {
		t.Fatalf("expected score 50, got %d", newScore)
	}
	if levelID != nil {
		t.Fatalf("expected nil level with empty ladder, got %v", levelID)
	}
}

func TestProgression_UserNotFound(t *testing.T) {
	levels, _ := testLadderLevels()
	svc := NewProgressionService(&stubUserRepo{}, &stubLevelRepo{levels: levels}, zerolog.Nop())

	if _, _, err := svc.ApplyDelta(context.Background(), uuid.New(), 10); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProgression_NegativeDelta(t *testing.T) {
	levels, ids := testLadderLevels()
	users := &stubUserRepo{exists: true, score: ptr(210), levelID: &ids[2]}
	svc := NewProgressionService(users, &stubLevelRepo{levels: levels}, zerolog.Nop())

	newScore, levelID, err := svc.ApplyDelta(context.Background(), uuid.New(), -120)
	if err != nil {
		t.Fatalf("apply delta: %v", err)
	}
	if newScore != 90 {
		t.Fatalf("expected score 90, got %d", newScore)
	}
	if levelID == nil || *levelID != ids[0] {
		t.Fatalf("expected demotion to first tier, got %v", levelID)
	}
}
