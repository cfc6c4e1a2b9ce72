package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
	"github.com/pechomax/pechomax-api/internal/core/token"
)

const defaultProfilePic = "https://firebasestorage.googleapis.com/v0/b/pechomax-cfa82.appspot.com/o/profilePic%2Fdefault.png?alt=media&token=58d39852-07a3-489c-9c51-3a448ea90729"

// AuthService implements admin bootstrap, registration, and login.
type AuthService struct {
	repo   ports.UserRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// InitAdmin creates the first Admin account. Refused once any admin exists,
// so the endpoint is only useful on a fresh deployment.
func (s *AuthService) InitAdmin(ctx context.Context, username, email, password string) (*domain.User, error) {
	count, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("admin bootstrapped")
	return created, nil
}

// Register creates a User-role account and returns a signed session token
// alongside it.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		ProfilePic:   defaultProfilePic,
	})
	if err != nil {
		return "", nil, err
	}

	tkn, err := s.codec.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return tkn, created, nil
}

// Login authenticates by username or email and returns a signed session
// token. The cached score inside the token is a snapshot taken now.
func (s *AuthService) Login(ctx context.Context, credential, password string) (string, *domain.User, error) {
	if credential == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByCredential(ctx, credential)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrUserNotFound
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.codec.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return tkn, user, nil
}
