package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/api/middleware"
	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
)

type authServiceStub struct {
	initErr  error
	loginErr error
}

func (s *authServiceStub) InitAdmin(ctx context.Context, username, email, password string) (*domain.User, error) {
	if s.initErr != nil {
		return nil, s.initErr
	}
	return &domain.User{ID: uuid.New(), Username: username, Email: email, Role: domain.RoleAdmin}, nil
}

func (s *authServiceStub) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	return "signed-token", &domain.User{ID: uuid.New(), Username: username, Email: email, Role: domain.RoleUser}, nil
}

func (s *authServiceStub) Login(ctx context.Context, credential, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "signed-token", &domain.User{ID: uuid.New(), Username: credential, Role: domain.RoleUser}, nil
}

var _ ports.AuthService = (*authServiceStub)(nil)

func jsonContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, c := range res.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthHandler_RegisterSetsSessionCookie(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{}, time.Hour, false)
	c, rec := jsonContext(http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@pechomax.fr","password":"long-password"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("session cookie not set")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("cookie does not carry the issued token")
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("session cookie must be SameSite=Lax")
	}
}

func TestAuthHandler_RegisterRejectsShortPassword(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{}, time.Hour, false)
	c, _ := jsonContext(http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@pechomax.fr","password":"short"}`)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_LoginSetsSessionCookie(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{}, time.Hour, false)
	c, rec := jsonContext(http.MethodPost, "/auth/login",
		`{"credential":"alice","password":"long-password"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sessionCookie(rec) == nil {
		t.Fatalf("session cookie not set")
	}
}

func TestAuthHandler_LoginFailurePropagates(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{loginErr: domain.ErrInvalidCredentials}, time.Hour, false)
	c, rec := jsonContext(http.MethodPost, "/auth/login",
		`{"credential":"alice","password":"wrong"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("no cookie may be set on failed login")
	}
}

func TestAuthHandler_InitConflict(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{initErr: domain.ErrAdminExists}, time.Hour, false)
	c, _ := jsonContext(http.MethodPost, "/auth/init",
		`{"username":"root","email":"root@pechomax.fr","password":"long-password"}`)

	if err := h.Init(c); err != domain.ErrAdminExists {
		t.Fatalf("expected ErrAdminExists, got %v", err)
	}
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{}, time.Hour, false)
	c, rec := jsonContext(http.MethodGet, "/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("logout must rewrite the session cookie")
	}
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("logout cookie must be emptied and expired, got value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}
