package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/api/middleware"
	"github.com/pechomax/pechomax-api/internal/core/ports"
	"github.com/pechomax/pechomax-api/internal/core/token"
)

// ctxClaims extracts the claims injected by the Session middleware. Presence
// proves the middleware ran; a handler reaching here without claims is a
// wiring error and is rejected rather than trusted.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*token.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxActor converts the verified claims into the actor identity services use
// for ownership checks.
func ctxActor(c echo.Context) (ports.Actor, error) {
	claims, err := ctxClaims(c)
	if err != nil {
		return ports.Actor{}, err
	}
	return ports.Actor{
		UserID:   claims.Sub.ID,
		Username: claims.Sub.Username,
		Role:     claims.Role,
	}, nil
}
