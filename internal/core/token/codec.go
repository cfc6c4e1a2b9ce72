// Package token implements the session token codec: a signed, time-bound
// HS256 JWT carrying the caller's identity claim. Tokens are bearer
// credentials with no server-side revocation list — logout is client-side
// cookie deletion, so a captured token stays valid until it expires.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

var (
	ErrMalformed        = errors.New("token malformed")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

// Subject is the identity block of the session payload. Score is a snapshot
// taken at issuance and is not authoritative for progression math.
type Subject struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Score    int64     `json:"score"`
}

// Claims is the full wire-visible session payload: sub.{id,username,score}
// and role, plus the registered exp/iat timestamps. Nothing else is carried,
// to keep the staleness surface minimal.
type Claims struct {
	Sub  Subject     `json:"sub"`
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens. The secret is process-wide
// configuration injected at construction; rotating it invalidates every
// outstanding session.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

const defaultTTL = 24 * time.Hour

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue serializes and signs a claim for the given user.
func (c *Codec) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Sub: Subject{
			ID:       user.ID,
			Username: user.Username,
			Score:    user.CurrentScore(),
		},
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// TTL returns the validity window applied to issued tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Verify parses and validates a token. No claim field may be trusted unless
// it came out of here.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !tkn.Valid {
		return nil, ErrInvalidSignature
	}
	if !claims.Role.Valid() {
		return nil, ErrMalformed
	}
	return claims, nil
}
