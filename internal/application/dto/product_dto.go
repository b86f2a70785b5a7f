package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	BrandID    string `json:"brand_id,omitempty"`
	CategoryID string `json:"category_id"`
	Unit       string `json:"unit"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name       *string `json:"name,omitempty"`
	BrandID    *string `json:"brand_id,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Unit       *string `json:"unit,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	BrandID    string    `json:"brand_id,omitempty"`
	CategoryID string    `json:"category_id"`
	Unit       string    `json:"unit"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
