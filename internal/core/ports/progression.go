package ports

import (
	"context"

	"github.com/google/uuid"
)

// ProgressionEngine applies a score delta to a user atomically with
// re-resolution of their level, guaranteeing the stored level always matches
// the stored score under the ladder's partition. Safe under concurrent calls
// for the same user; different users never contend.
type ProgressionEngine interface {
	// ApplyDelta returns the post-update score and the newly resolved level
	// (nil when no ladder is configured). Fails with domain.ErrUserNotFound
	// when the user row is gone.
	ApplyDelta(ctx context.Context, userID uuid.UUID, delta int64) (int64, *uuid.UUID, error)
}
