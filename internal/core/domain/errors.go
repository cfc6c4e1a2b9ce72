package domain

import "errors"

var (
	// Authentication / authorization.
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Resources.
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrAdminExists     = errors.New("admin already exists")
	ErrCatchNotFound   = errors.New("catch not found")
	ErrLevelNotFound   = errors.New("level not found")
	ErrSpeciesNotFound = errors.New("species not found")
	ErrSpeciesExists   = errors.New("species already exists")

	// Progression.
	// ErrNoLevelsConfigured means the ladder is empty; callers leave the
	// user's level unassigned instead of failing the mutation.
	ErrNoLevelsConfigured = errors.New("no levels configured")
	// ErrNoLevelForScore means the configured ranges leave a gap that the
	// score falls into. Treated like an empty ladder by callers.
	ErrNoLevelForScore = errors.New("no level covers score")
	// ErrStaleWrite signals a concurrent score update raced the level write.
	// Retried internally by the progression engine, never surfaced.
	ErrStaleWrite = errors.New("stale score during level write")
)
