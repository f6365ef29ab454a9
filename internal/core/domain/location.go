package domain

import "time"

// LocationType classifies where assets live.
type LocationType string

const (
	LocationOffice    LocationType = "office"
	LocationWarehouse LocationType = "warehouse"
	LocationStore     LocationType = "store"
)

// Valid reports whether t is one of the known location types.
func (t LocationType) Valid() bool {
	return t == LocationOffice || t == LocationWarehouse || t == LocationStore
}

// Location is a physical place that holds assets.
type Location struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Address   string       `json:"address,omitempty"`
	Type      LocationType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
