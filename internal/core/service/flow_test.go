package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
)

// Exercises the full scoring path with the real progression engine behind
// the catch service: a fresh user (NULL score) logs catches, concurrently,
// and ends on the level their final score belongs to.
func TestCatchToLevelFlow(t *testing.T) {
	levels, ids := testLadderLevels()
	users := &stubUserRepo{exists: true} // fresh account, score NULL
	progression := NewProgressionService(users, &stubLevelRepo{levels: levels}, zerolog.Nop())

	trout := &domain.Species{ID: uuid.New(), Name: "Trout", PointValue: 10}
	catches := newCatchRepoStub()
	cache := &cacheStub{}
	svc := NewCatchService(catches, newSpeciesRepoStub(trout), progression, txStub{}, cache, zerolog.Nop())

	actor := ports.Actor{UserID: uuid.New(), Username: "alice", Role: domain.RoleUser}

	// First catch: 10*3*4 = 120 points → Angler tier.
	if _, err := svc.Create(context.Background(), ports.CreateCatchInput{
		Actor:     actor,
		SpeciesID: trout.ID,
		Length:    3,
		Weight:    4,
		Date:      time.Now(),
	}); err != nil {
		t.Fatalf("first catch: %v", err)
	}
	if got := *users.score; got != 120 {
		t.Fatalf("expected score 120 after first catch, got %d", got)
	}
	if users.levelID == nil || *users.levelID != ids[1] {
		t.Fatalf("expected Angler tier after 120 points, got %v", users.levelID)
	}

	// Two concurrent catches worth 10*3*3 = 90 each: 120+90+90 = 300.
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), ports.CreateCatchInput{
				Actor:     actor,
				SpeciesID: trout.ID,
				Length:    3,
				Weight:    3,
				Date:      time.Now(),
			})
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent catch: %v", err)
	}

	if got := *users.score; got != 300 {
		t.Fatalf("lost update: expected 300, got %d", got)
	}
	if users.levelID == nil || *users.levelID != ids[3] {
		t.Fatalf("expected top tier at 300 points, got %v", users.levelID)
	}

	// The cache is best-effort: concurrent upserts may land out of order,
	// but the entry must hold one of the scores the store actually had.
	if got := cache.get("alice"); got != 210 && got != 300 {
		t.Fatalf("ranking cache holds impossible score %d", got)
	}

	all, err := svc.List(context.Background(), 1, 15)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 catches logged, got %d", len(all))
	}
}
