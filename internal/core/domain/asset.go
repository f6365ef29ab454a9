package domain

import "time"

// AssetStatus represents the operational state of an asset.
type AssetStatus string

const (
	AssetAvailable AssetStatus = "Available"
	AssetInUse     AssetStatus = "In Use"
	AssetInStock   AssetStatus = "In Stock"
	AssetInRepair  AssetStatus = "In Repair"
)

// Valid reports whether s is one of the known asset statuses.
func (s AssetStatus) Valid() bool {
	switch s {
	case AssetAvailable, AssetInUse, AssetInStock, AssetInRepair:
		return true
	}
	return false
}

// Stock thresholds used by reporting. Derived from quantity, never stored.
const (
	LowStockThreshold      = 5
	CriticalStockThreshold = 2
)

// Asset is a tracked inventory item. CategoryID and LocationID reference
// the Category and Location collections.
type Asset struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serialNumber"`
	CategoryID   string      `json:"categoryId"`
	LocationID   string      `json:"locationId"`
	PurchaseDate time.Time   `json:"purchaseDate"`
	Status       AssetStatus `json:"status"`
	Quantity     int         `json:"quantity"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// LowStock reports whether the asset quantity is below the low-stock threshold.
func (a Asset) LowStock() bool {
	return a.Quantity < LowStockThreshold
}

// CriticalStock reports whether the asset quantity is at or below the
// critical threshold.
func (a Asset) CriticalStock() bool {
	return a.Quantity <= CriticalStockThreshold
}
