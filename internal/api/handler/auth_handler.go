package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/api/metrics"
	"github.com/pechomax/pechomax-api/internal/api/middleware"
	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/ports"
)

// AuthHandler owns session issuance and teardown. Sessions are bearer
// tokens: logout only removes the cookie, it cannot invalidate a token
// someone already captured.
type AuthHandler struct {
	authService  ports.AuthService
	sessionTTL   time.Duration
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL, secureCookie: secureCookie}
}

type initRequest struct {
	Username string `json:"username" validate:"required,min=4"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=9"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=4"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=9"`
}

type loginRequest struct {
	Credential string `json:"credential" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Init bootstraps the first Admin account.
//
// @Summary      Create the initial admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      initRequest  true  "Admin account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/init [post]
func (h *AuthHandler) Init(c echo.Context) error {
	var req initRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.InitAdmin(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Register creates a new user account and opens a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tkn, user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, tkn)
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates by username or email and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tkn, user, err := h.authService.Login(c.Request().Context(), req.Credential, req.Password)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case domain.ErrUserNotFound:
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setSessionCookie(c, tkn)
	return c.JSON(http.StatusOK, user)
}

// Whoami echoes the verified session claims back to the caller.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  token.Claims
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [get]
func (h *AuthHandler) Whoami(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}

// Logout clears the session cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      plain
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.String(http.StatusOK, "Logged out")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, tkn string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tkn,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
