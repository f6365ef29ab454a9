package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

type LocationHandler struct {
	service ports.LocationService
}

func NewLocationHandler(service ports.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

type createLocationRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Type    string `json:"type" validate:"omitempty,oneof=office warehouse store"`
}

type updateLocationRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Type    *string `json:"type" validate:"omitempty,oneof=office warehouse store"`
}

// List returns all locations.
//
// @Summary      List locations
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Location
// @Router       /locations [get]
func (h *LocationHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	locations, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	return c.JSON(http.StatusOK, locations)
}

// Create adds a location.
//
// @Summary      Create a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLocationRequest  true  "Location details"
// @Success      201   {object}  domain.Location
// @Failure      403   {object}  map[string]string
// @Router       /locations [post]
func (h *LocationHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreateLocationInput{
		Name:    req.Name,
		Address: req.Address,
		Type:    domain.LocationType(req.Type),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update edits a location.
//
// @Summary      Update a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Location id"
// @Param        body  body      updateLocationRequest  true  "Fields to change"
// @Success      200   {object}  domain.Location
// @Router       /locations/{id} [put]
func (h *LocationHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateLocationInput{
		Name:    req.Name,
		Address: req.Address,
	}
	if req.Type != nil {
		typ := domain.LocationType(*req.Type)
		input.Type = &typ
	}

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a location. Refused with 409 while assets reference it.
//
// @Summary      Delete a location
// @Tags         locations
// @Security     BearerAuth
// @Param        id  path  string  true  "Location id"
// @Success      204
// @Failure      409  {object}  map[string]string
// @Router       /locations/{id} [delete]
func (h *LocationHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
