package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/core/ports"
)

// LevelHandler serves ladder administration. Every route is Admin-gated at
// the router.
type LevelHandler struct {
	levelService ports.LevelService
	pageSize     int
}

func NewLevelHandler(levelService ports.LevelService, pageSize int) *LevelHandler {
	return &LevelHandler{levelService: levelService, pageSize: pageSize}
}

type createLevelRequest struct {
	Title string `json:"title" validate:"required"`
	Value int    `json:"value" validate:"required"`
	Start int64  `json:"start"`
	End   *int64 `json:"end"`
}

type updateLevelRequest struct {
	Title *string `json:"title"`
	Value *int    `json:"value"`
	Start *int64  `json:"start"`
	End   *int64  `json:"end"`
}

// List returns a page of levels in ladder order.
//
// @Summary      List levels
// @Tags         levels
// @Produce      json
// @Param        page  query     int  false  "1-based page number"
// @Success      200   {array}   domain.Level
// @Failure      403   {object}  map[string]string
// @Router       /levels [get]
func (h *LevelHandler) List(c echo.Context) error {
	levels, err := h.levelService.List(c.Request().Context(), queryPage(c), h.pageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, levels)
}

// Get returns a single level.
//
// @Summary      Get a level
// @Tags         levels
// @Produce      json
// @Param        id   path      string  true  "Level id"
// @Success      200  {object}  domain.Level
// @Failure      404  {object}  map[string]string
// @Router       /levels/{id} [get]
func (h *LevelHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	level, err := h.levelService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, level)
}

// Create adds a level to the ladder. Range integrity across levels is the
// admin's responsibility.
//
// @Summary      Create a level
// @Tags         levels
// @Accept       json
// @Produce      json
// @Param        body  body      createLevelRequest  true  "Level details"
// @Success      201   {object}  domain.Level
// @Failure      400   {object}  map[string]string
// @Router       /levels [post]
func (h *LevelHandler) Create(c echo.Context) error {
	var req createLevelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.levelService.Create(c.Request().Context(), ports.CreateLevelInput{
		Title: req.Title,
		Value: req.Value,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update edits a level.
//
// @Summary      Update a level
// @Tags         levels
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Level id"
// @Param        body  body      updateLevelRequest  true  "Fields to change"
// @Success      200   {object}  domain.Level
// @Failure      404   {object}  map[string]string
// @Router       /levels/{id} [put]
func (h *LevelHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateLevelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.levelService.Update(c.Request().Context(), ports.UpdateLevelInput{
		ID:    id,
		Title: req.Title,
		Value: req.Value,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a level. Users referencing it lose their level assignment
// until their next score change re-resolves it.
//
// @Summary      Delete a level
// @Tags         levels
// @Produce      json
// @Param        id   path      string  true  "Level id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /levels/{id} [delete]
func (h *LevelHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.levelService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "level deleted"})
}
