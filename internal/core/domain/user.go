package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of user roles. There is no hierarchy: an
// Admin-gated route is satisfied by RoleAdmin and nothing else.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User models a registered angler. Score and LevelID are nullable in the
// store and are mutated exclusively through the progression engine.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	ProfilePic   string     `json:"profile_pic,omitempty"`
	City         string     `json:"city,omitempty"`
	Region       string     `json:"region,omitempty"`
	ZipCode      string     `json:"zip_code,omitempty"`
	Score        *int64     `json:"score"`
	LevelID      *uuid.UUID `json:"level_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CurrentScore returns the stored score, treating NULL as zero.
func (u *User) CurrentScore() int64 {
	if u.Score == nil {
		return 0
	}
	return *u.Score
}
