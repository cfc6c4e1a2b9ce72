package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

func testUser() *domain.User {
	score := int64(120)
	return &domain.User{
		ID:       uuid.New(),
		Username: "alice",
		Role:     domain.RoleUser,
		Score:    &score,
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	user := testUser()

	raw, err := codec.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := codec.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Sub.ID != user.ID {
		t.Fatalf("subject id: got %s, want %s", claims.Sub.ID, user.ID)
	}
	if claims.Sub.Username != "alice" {
		t.Fatalf("subject username: got %q", claims.Sub.Username)
	}
	if claims.Sub.Score != 120 {
		t.Fatalf("subject score: got %d", claims.Sub.Score)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("role: got %q", claims.Role)
	}
}

func TestCodec_NullScoreIssuesZero(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	user := testUser()
	user.Score = nil

	raw, err := codec.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := codec.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Sub.Score != 0 {
		t.Fatalf("null score must issue as 0, got %d", claims.Sub.Score)
	}
}

func TestCodec_TamperedPayloadRejected(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	raw, err := codec.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip one character in the payload segment.
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 JWT segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := codec.Verify(tampered); err == nil {
		t.Fatalf("tampered token must not verify")
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	issuer := NewCodec("secret-a", time.Hour)
	verifier := NewCodec("secret-b", time.Hour)

	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(raw); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestCodec_Expired(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	now := time.Now()
	claims := Claims{
		Sub:  Subject{ID: uuid.New(), Username: "bob"},
		Role: domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(raw); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Verify(raw); !errors.Is(err, ErrMalformed) {
			t.Fatalf("verify(%q): expected ErrMalformed, got %v", raw, err)
		}
	}
}

func TestCodec_UnknownRoleRejected(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	now := time.Now()
	claims := Claims{
		Sub:  Subject{ID: uuid.New(), Username: "eve"},
		Role: "SuperAdmin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(raw); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for unknown role, got %v", err)
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	codec := NewCodec("secret", 0)
	if codec.TTL() != 24*time.Hour {
		t.Fatalf("expected default TTL of 24h, got %s", codec.TTL())
	}
}
