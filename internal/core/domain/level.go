package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Level is an administrator-managed score tier. Start is inclusive, End is
// exclusive; a nil End marks the unbounded top tier. Value is the display
// ordinal, not a range bound.
type Level struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Value     int       `json:"value"`
	Start     int64     `json:"start"`
	End       *int64    `json:"end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contains reports whether score falls inside the level's [Start, End) range.
// Unbounded levels contain every score at or above Start.
func (l *Level) Contains(score int64) bool {
	if score < l.Start {
		return false
	}
	return l.End == nil || score < *l.End
}

// Ladder is the ordered set of levels used to resolve a score to a tier.
// Construction sorts by ascending Value so that, should an admin configure
// overlapping ranges, resolution deterministically picks the lowest ordinal.
type Ladder []Level

// NewLadder builds a ladder from levels in any order.
func NewLadder(levels []Level) Ladder {
	ladder := make(Ladder, len(levels))
	copy(ladder, levels)
	sort.SliceStable(ladder, func(i, j int) bool {
		return ladder[i].Value < ladder[j].Value
	})
	return ladder
}

// Resolve returns the id of the level whose range contains score. Scores past
// every bounded range land on the unbounded top tier; the same fallback
// applies when the bounded ranges leave a gap, since range integrity is an
// administrative responsibility the ladder does not enforce.
//
// Returns ErrNoLevelsConfigured for an empty ladder and ErrNoLevelForScore
// when every level is bounded and none contains the score.
func (ld Ladder) Resolve(score int64) (uuid.UUID, error) {
	if len(ld) == 0 {
		return uuid.Nil, ErrNoLevelsConfigured
	}

	var top *Level
	for i := range ld {
		l := &ld[i]
		if l.End == nil {
			if top == nil {
				top = l
			}
			continue
		}
		if l.Contains(score) {
			return l.ID, nil
		}
	}
	if top != nil {
		return top.ID, nil
	}
	return uuid.Nil, ErrNoLevelForScore
}
