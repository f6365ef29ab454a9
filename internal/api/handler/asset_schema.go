package handler

import (
	"time"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// Request types for the asset endpoints. Status values are validated as a
// closed set at the boundary; unknown values are rejected, never coerced.

type createAssetRequest struct {
	Name         string `json:"name"         validate:"required"`
	SerialNumber string `json:"serialNumber" validate:"required"`
	CategoryID   string `json:"categoryId"   validate:"required"`
	LocationID   string `json:"locationId"   validate:"required"`
	PurchaseDate string `json:"purchaseDate" validate:"required"`
	Status       string `json:"status"       validate:"omitempty,oneof=Available 'In Use' 'In Stock' 'In Repair'"`
	Quantity     int    `json:"quantity"     validate:"gte=0"`
	Notes        string `json:"notes"`
}

type updateAssetRequest struct {
	Name         *string `json:"name"`
	SerialNumber *string `json:"serialNumber"`
	CategoryID   *string `json:"categoryId"`
	LocationID   *string `json:"locationId"`
	PurchaseDate *string `json:"purchaseDate"`
	Status       *string `json:"status"   validate:"omitempty,oneof=Available 'In Use' 'In Stock' 'In Repair'"`
	Quantity     *int    `json:"quantity" validate:"omitempty,gte=0"`
	Notes        *string `json:"notes"`
}

// parseDate accepts the date-only form used by the browser client alongside
// full RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("purchaseDate")
	}
	return t, nil
}
