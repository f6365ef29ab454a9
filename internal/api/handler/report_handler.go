package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matalogics/inventory-api/internal/core/ports"
)

type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type locationCountResponse struct {
	LocationID string `json:"locationId"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

type summaryResponse struct {
	TotalAssets int                     `json:"totalAssets"`
	Available   int                     `json:"available"`
	InUse       int                     `json:"inUse"`
	InStock     int                     `json:"inStock"`
	InRepair    int                     `json:"inRepair"`
	LowStock    int                     `json:"lowStock"`
	Critical    int                     `json:"critical"`
	ByLocation  []locationCountResponse `json:"byLocation"`
}

// Summary returns the aggregate asset report.
//
// @Summary      Asset summary report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  summaryResponse
// @Failure      403  {object}  map[string]string
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	resp := summaryResponse{
		TotalAssets: summary.TotalAssets,
		Available:   summary.Available,
		InUse:       summary.InUse,
		InStock:     summary.InStock,
		InRepair:    summary.InRepair,
		LowStock:    summary.LowStock,
		Critical:    summary.Critical,
		ByLocation:  make([]locationCountResponse, 0, len(summary.ByLocation)),
	}
	for _, lc := range summary.ByLocation {
		resp.ByLocation = append(resp.ByLocation, locationCountResponse{
			LocationID: lc.LocationID,
			Name:       lc.Name,
			Count:      lc.Count,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
