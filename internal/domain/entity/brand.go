package entity

import "time"

// Brand marca de un producto (catálogo simple).
type Brand struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
