package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/core/ports"
)

// CatchHandler serves the catch log. Reads are public; mutations require a
// session and are scoped to the owner unless the caller is an admin.
type CatchHandler struct {
	catchService ports.CatchService
	pageSize     int
}

func NewCatchHandler(catchService ports.CatchService, pageSize int) *CatchHandler {
	return &CatchHandler{catchService: catchService, pageSize: pageSize}
}

type createCatchRequest struct {
	SpeciesID   string    `json:"species_id" validate:"required,uuid"`
	LocationID  string    `json:"location_id" validate:"omitempty,uuid"`
	Length      int64     `json:"length" validate:"required,gt=0"`
	Weight      int64     `json:"weight" validate:"required,gt=0"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Pictures    []string  `json:"pictures"`
}

type updateCatchRequest struct {
	Length      *int64     `json:"length" validate:"omitempty,gt=0"`
	Weight      *int64     `json:"weight" validate:"omitempty,gt=0"`
	LocationID  *string    `json:"location_id" validate:"omitempty,uuid"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Pictures    []string   `json:"pictures"`
}

// List returns a page of all catches, newest first.
//
// @Summary      List catches
// @Tags         catches
// @Produce      json
// @Param        page  query     int  false  "1-based page number"
// @Success      200   {array}   domain.Catch
// @Router       /catches [get]
func (h *CatchHandler) List(c echo.Context) error {
	page := queryPage(c)
	catches, err := h.catchService.List(c.Request().Context(), page, h.pageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catches)
}

// ListSelf returns the caller's catches.
//
// @Summary      List own catches
// @Tags         catches
// @Produce      json
// @Success      200  {array}   domain.Catch
// @Failure      401  {object}  map[string]string
// @Router       /catches/self [get]
func (h *CatchHandler) ListSelf(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	catches, err := h.catchService.ListByUser(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catches)
}

// Get returns a single catch by id.
//
// @Summary      Get a catch
// @Tags         catches
// @Produce      json
// @Param        id   path      string  true  "Catch id"
// @Success      200  {object}  domain.Catch
// @Failure      404  {object}  map[string]string
// @Router       /catches/{id} [get]
func (h *CatchHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := h.catchService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create logs a new catch and applies its points to the caller's score.
//
// @Summary      Log a catch
// @Tags         catches
// @Accept       json
// @Produce      json
// @Param        body  body      createCatchRequest  true  "Catch details"
// @Success      201   {object}  domain.Catch
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /catches [post]
func (h *CatchHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createCatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	speciesID, err := uuid.Parse(req.SpeciesID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid species id")
	}
	var locationID *uuid.UUID
	if req.LocationID != "" {
		id, err := uuid.Parse(req.LocationID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid location id")
		}
		locationID = &id
	}

	created, err := h.catchService.Create(c.Request().Context(), ports.CreateCatchInput{
		Actor:       actor,
		SpeciesID:   speciesID,
		LocationID:  locationID,
		Length:      req.Length,
		Weight:      req.Weight,
		Description: req.Description,
		Date:        req.Date,
		Pictures:    req.Pictures,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update edits a catch the caller owns (or any catch, for admins).
//
// @Summary      Update a catch
// @Tags         catches
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Catch id"
// @Param        body  body      updateCatchRequest  true  "Fields to change"
// @Success      200   {object}  domain.Catch
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /catches/{id} [put]
func (h *CatchHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateCatchInput{
		ID:          id,
		Actor:       actor,
		Length:      req.Length,
		Weight:      req.Weight,
		Description: req.Description,
		Date:        req.Date,
		Pictures:    req.Pictures,
	}
	if req.LocationID != nil {
		locID, err := uuid.Parse(*req.LocationID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid location id")
		}
		input.LocationID = &locID
	}

	updated, err := h.catchService.Update(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a catch the caller owns (or any catch, for admins).
//
// @Summary      Delete a catch
// @Tags         catches
// @Produce      json
// @Param        id   path      string  true  "Catch id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /catches/{id} [delete]
func (h *CatchHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catchService.Delete(c.Request().Context(), id, actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "catch deleted"})
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// queryPage parses the 1-based page query parameter, defaulting to 1.
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
