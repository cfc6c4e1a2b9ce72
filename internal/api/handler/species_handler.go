package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/core/ports"
)

// SpeciesHandler serves the species catalogue. Reads are public, mutations
// are Admin-gated at the router.
type SpeciesHandler struct {
	speciesService ports.SpeciesService
	pageSize       int
}

func NewSpeciesHandler(speciesService ports.SpeciesService, pageSize int) *SpeciesHandler {
	return &SpeciesHandler{speciesService: speciesService, pageSize: pageSize}
}

type createSpeciesRequest struct {
	Name       string `json:"name" validate:"required"`
	PointValue int64  `json:"point_value" validate:"required,gt=0"`
}

type updateSpeciesRequest struct {
	Name       *string `json:"name"`
	PointValue *int64  `json:"point_value" validate:"omitempty,gt=0"`
}

// List returns a page of species.
//
// @Summary      List species
// @Tags         species
// @Produce      json
// @Param        page  query    int  false  "1-based page number"
// @Success      200   {array}  domain.Species
// @Router       /species [get]
func (h *SpeciesHandler) List(c echo.Context) error {
	species, err := h.speciesService.List(c.Request().Context(), queryPage(c), h.pageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, species)
}

// Get returns a single species.
//
// @Summary      Get a species
// @Tags         species
// @Produce      json
// @Param        id   path      string  true  "Species id"
// @Success      200  {object}  domain.Species
// @Failure      404  {object}  map[string]string
// @Router       /species/{id} [get]
func (h *SpeciesHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	sp, err := h.speciesService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sp)
}

// Create adds a species. Its point value seeds future catch scoring only.
//
// @Summary      Create a species
// @Tags         species
// @Accept       json
// @Produce      json
// @Param        body  body      createSpeciesRequest  true  "Species details"
// @Success      201   {object}  domain.Species
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /species [post]
func (h *SpeciesHandler) Create(c echo.Context) error {
	var req createSpeciesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.speciesService.Create(c.Request().Context(), ports.CreateSpeciesInput{
		Name:       req.Name,
		PointValue: req.PointValue,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update edits a species.
//
// @Summary      Update a species
// @Tags         species
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Species id"
// @Param        body  body      updateSpeciesRequest  true  "Fields to change"
// @Success      200   {object}  domain.Species
// @Failure      404   {object}  map[string]string
// @Router       /species/{id} [put]
func (h *SpeciesHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateSpeciesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.speciesService.Update(c.Request().Context(), ports.UpdateSpeciesInput{
		ID:         id,
		Name:       req.Name,
		PointValue: req.PointValue,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a species.
//
// @Summary      Delete a species
// @Tags         species
// @Produce      json
// @Param        id   path      string  true  "Species id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /species/{id} [delete]
func (h *SpeciesHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.speciesService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "species deleted"})
}
