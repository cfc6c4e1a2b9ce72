package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func ptr(v int64) *int64 { return &v }

func fourTierLadder() (Ladder, [4]uuid.UUID) {
	var ids [4]uuid.UUID
	for i := range ids {
		ids[i] = uuid.New()
	}
	levels := []Level{
		{ID: ids[3], Title: "Legend", Value: 4, Start: 300, End: nil},
		{ID: ids[0], Title: "Novice", Value: 1, Start: 0, End: ptr(100)},
		{ID: ids[2], Title: "Expert", Value: 3, Start: 200, End: ptr(300)},
		{ID: ids[1], Title: "Angler", Value: 2, Start: 100, End: ptr(200)},
	}
	return NewLadder(levels), ids
}

func TestLadder_ResolvePartition(t *testing.T) {
	ladder, ids := fourTierLadder()

	cases := []struct {
		score int64
		want  uuid.UUID
	}{
		{0, ids[0]},
		{99, ids[0]},
		{100, ids[1]},
		{199, ids[1]},
		{200, ids[2]},
		{299, ids[2]},
		{300, ids[3]},
		{10000, ids[3]},
	}
	for _, tc := range cases {
		got, err := ladder.Resolve(tc.score)
		if err != nil {
			t.Fatalf("resolve(%d): %v", tc.score, err)
		}
		if got != tc.want {
			t.Fatalf("resolve(%d): got %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestLadder_ResolveGapFallsToUnbounded(t *testing.T) {
	top := uuid.New()
	ladder := NewLadder([]Level{
		{ID: uuid.New(), Value: 1, Start: 0, End: ptr(50)},
		{ID: top, Value: 2, Start: 500, End: nil},
	})

	// 100 is in neither bounded range; the unbounded tier absorbs it.
	got, err := ladder.Resolve(100)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != top {
		t.Fatalf("expected fallback to unbounded tier, got %s", got)
	}
}

func TestLadder_ResolveOverlapPicksLowestValue(t *testing.T) {
	low := uuid.New()
	high := uuid.New()
	// Both bounded ranges contain 50; the lower ordinal must win regardless
	// of input order.
	ladder := NewLadder([]Level{
		{ID: high, Value: 2, Start: 0, End: ptr(200)},
		{ID: low, Value: 1, Start: 0, End: ptr(100)},
	})

	got, err := ladder.Resolve(50)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != low {
		t.Fatalf("expected lowest-ordinal level, got %s", got)
	}
}

func TestLadder_ResolveEmpty(t *testing.T) {
	ladder := NewLadder(nil)
	if _, err := ladder.Resolve(42); !errors.Is(err, ErrNoLevelsConfigured) {
		t.Fatalf("expected ErrNoLevelsConfigured, got %v", err)
	}
}

func TestLadder_ResolveAllBoundedNoMatch(t *testing.T) {
	ladder := NewLadder([]Level{
		{ID: uuid.New(), Value: 1, Start: 0, End: ptr(100)},
		{ID: uuid.New(), Value: 2, Start: 100, End: ptr(200)},
	})
	if _, err := ladder.Resolve(200); !errors.Is(err, ErrNoLevelForScore) {
		t.Fatalf("expected ErrNoLevelForScore, got %v", err)
	}
}

func TestLevel_ContainsBoundaries(t *testing.T) {
	bounded := Level{Start: 100, End: ptr(200)}
	if bounded.Contains(99) {
		t.Fatalf("score below start must not be contained")
	}
	if !bounded.Contains(100) {
		t.Fatalf("start is inclusive")
	}
	if bounded.Contains(200) {
		t.Fatalf("end is exclusive")
	}

	unbounded := Level{Start: 300}
	if !unbounded.Contains(300) || !unbounded.Contains(1 << 40) {
		t.Fatalf("unbounded level must contain every score at or above start")
	}
}
