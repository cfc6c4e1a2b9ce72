package domain

import (
	"time"

	"github.com/google/uuid"
)

// Species is a catchable fish species with the base point value that seeds
// catch scoring.
type Species struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PointValue int64     `json:"point_value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
