package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

type AssetHandler struct {
	service ports.AssetService
}

func NewAssetHandler(service ports.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

// List returns all assets.
//
// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Asset
// @Failure      403  {object}  map[string]string
// @Router       /assets [get]
func (h *AssetHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	assets, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return c.JSON(http.StatusOK, assets)
}

// Get returns a single asset.
//
// @Summary      Get an asset
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Asset id"
// @Success      200  {object}  domain.Asset
// @Failure      404  {object}  map[string]string
// @Router       /assets/{id} [get]
func (h *AssetHandler) Get(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	asset, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, asset)
}

// Create adds an asset.
//
// @Summary      Create an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAssetRequest  true  "Asset details"
// @Success      201   {object}  domain.Asset
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /assets [post]
func (h *AssetHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	purchased, err := parseDate(req.PurchaseDate)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreateAssetInput{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		CategoryID:   req.CategoryID,
		LocationID:   req.LocationID,
		PurchaseDate: purchased,
		Status:       domain.AssetStatus(req.Status),
		Quantity:     req.Quantity,
		Notes:        req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update applies a partial edit. Which fields actually change depends on
// the caller's role; disallowed fields in the payload are dropped.
//
// @Summary      Update an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Asset id"
// @Param        body  body      updateAssetRequest  true  "Fields to change"
// @Success      200   {object}  domain.Asset
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /assets/{id} [put]
func (h *AssetHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateAssetInput{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		CategoryID:   req.CategoryID,
		LocationID:   req.LocationID,
		Quantity:     req.Quantity,
		Notes:        req.Notes,
	}
	if req.Status != nil {
		status := domain.AssetStatus(*req.Status)
		input.Status = &status
	}
	if req.PurchaseDate != nil {
		var purchased time.Time
		if purchased, err = parseDate(*req.PurchaseDate); err != nil {
			return err
		}
		input.PurchaseDate = &purchased
	}

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an asset.
//
// @Summary      Delete an asset
// @Tags         assets
// @Security     BearerAuth
// @Param        id  path  string  true  "Asset id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /assets/{id} [delete]
func (h *AssetHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
