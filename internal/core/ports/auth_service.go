package ports

import (
	"context"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// AuthService implements registration, login, and admin bootstrap. Login and
// Register return the signed session token alongside the user; the handler
// layer turns it into the session cookie.
type AuthService interface {
	// InitAdmin creates the first Admin account. Fails with
	// domain.ErrAdminExists once any admin exists.
	InitAdmin(ctx context.Context, username, email, password string) (*domain.User, error)
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	// Login accepts a username or an email as credential.
	Login(ctx context.Context, credential, password string) (string, *domain.User, error)
}
