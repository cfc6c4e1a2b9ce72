package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/api/metrics"
	"github.com/pechomax/pechomax-api/internal/core/token"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "access_token"

// ClaimsKey is the echo context key the verified claims are stored under.
const ClaimsKey = "session_claims"

// Session verifies the session cookie and injects the decoded claims into
// the context. It never touches the store; everything downstream trusts is
// what the codec verified. Routes that allow anonymous access simply omit
// this middleware.
func Session(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				metrics.SessionsRejectedTotal.WithLabelValues("missing_cookie").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				metrics.SessionsRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
