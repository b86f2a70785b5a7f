package entity

import "time"

// Category categoría de producto (mobiliario, electrónica, papelería, etc.).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
