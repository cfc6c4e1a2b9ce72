package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/api/metrics"
	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/token"
)

// RBAC enforces role-based access control. Matching is exact: there is no
// role hierarchy, a route gated on Admin admits Admin and nothing else.
// Must run after Session.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(*token.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[claims.Role]; !ok {
				metrics.SessionsRejectedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
