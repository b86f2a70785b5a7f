package dto

import "time"

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Name     string `json:"name"`
	Building string `json:"building"`
	Floor    string `json:"floor"`
}

// UpdateLocationRequest body para PUT /api/locations/:id.
type UpdateLocationRequest struct {
	Name     *string `json:"name,omitempty"`
	Building *string `json:"building,omitempty"`
	Floor    *string `json:"floor,omitempty"`
}

// LocationResponse representación HTTP de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Building  string    `json:"building"`
	Floor     string    `json:"floor"`
	Code      string    `json:"code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
