package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/token"
)

func rbacContext(role domain.Role, withClaims bool) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if withClaims {
		c.Set(ClaimsKey, &token.Claims{
			Sub:  token.Subject{ID: uuid.New(), Username: "someone"},
			Role: role,
		})
	}
	return c
}

func TestRBAC_Matrix(t *testing.T) {
	cases := []struct {
		name       string
		allowed    []domain.Role
		role       domain.Role
		withClaims bool
		wantCode   int // 0 means next must run
	}{
		{"admin route, admin caller", []domain.Role{domain.RoleAdmin}, domain.RoleAdmin, true, 0},
		{"admin route, user caller", []domain.Role{domain.RoleAdmin}, domain.RoleUser, true, http.StatusForbidden},
		{"admin route, no session", []domain.Role{domain.RoleAdmin}, "", false, http.StatusUnauthorized},
		{"any-role route, user caller", []domain.Role{domain.RoleAdmin, domain.RoleUser}, domain.RoleUser, true, 0},
		{"any-role route, admin caller", []domain.Role{domain.RoleAdmin, domain.RoleUser}, domain.RoleAdmin, true, 0},
		{"any-role route, no session", []domain.Role{domain.RoleAdmin, domain.RoleUser}, "", false, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := rbacContext(tc.role, tc.withClaims)

			called := false
			handler := RBAC(tc.allowed...)(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})

			err := handler(c)
			if tc.wantCode == 0 {
				if err != nil {
					t.Fatalf("handler error: %v", err)
				}
				if !called {
					t.Fatalf("next not called")
				}
				return
			}

			if called {
				t.Fatalf("next must not run")
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != tc.wantCode {
				t.Fatalf("expected %d, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestRBAC_NoRoleHierarchy(t *testing.T) {
	// A User-only route does not admit admins: matching is exact.
	c := rbacContext(domain.RoleAdmin, true)

	handler := RBAC(domain.RoleUser)(func(c echo.Context) error {
		t.Fatalf("admin must not pass a User-only gate")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
