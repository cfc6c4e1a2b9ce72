package domain

import (
	"time"

	"github.com/google/uuid"
)

// Catch is a logged fishing catch. PointValue is derived once at creation
// from the species base value and the submitted magnitudes and feeds the
// progression engine as a score delta.
type Catch struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	SpeciesID   uuid.UUID  `json:"species_id"`
	LocationID  *uuid.UUID `json:"location_id,omitempty"`
	Length      int64      `json:"length"`
	Weight      int64      `json:"weight"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Pictures    []string   `json:"pictures"`
	PointValue  int64      `json:"point_value"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CatchPointValue computes the points a catch is worth:
// species base value × length × weight. Growth is intentionally unclamped.
func CatchPointValue(baseValue, length, weight int64) int64 {
	return baseValue * length * weight
}
