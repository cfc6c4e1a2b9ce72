package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/api/middleware"
	"github.com/pechomax/pechomax-api/internal/core/ports"
)

// UserHandler serves the caller's own profile.
type UserHandler struct {
	userService  ports.UserService
	sessionTTL   time.Duration
	secureCookie bool
}

func NewUserHandler(userService ports.UserService, sessionTTL time.Duration, secureCookie bool) *UserHandler {
	return &UserHandler{userService: userService, sessionTTL: sessionTTL, secureCookie: secureCookie}
}

type updateProfileRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	ProfilePic  *string `json:"profile_pic"`
	City        *string `json:"city"`
	Region      *string `json:"region"`
	ZipCode     *string `json:"zip_code"`
}

// GetSelf returns the caller's full profile from the store (the session
// claim only carries a snapshot).
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/self [get]
func (h *UserHandler) GetSelf(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	user, err := h.userService.GetSelf(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateSelf edits the caller's profile and rotates the session cookie, so
// the outstanding claim is replaced rather than left stale.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/self [put]
func (h *UserHandler) UpdateSelf(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tkn, user, err := h.userService.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		UserID:      actor.UserID,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		ProfilePic:  req.ProfilePic,
		City:        req.City,
		Region:      req.Region,
		ZipCode:     req.ZipCode,
	})
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tkn,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, user)
}
