package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
)

// CreateAssetRequest body para POST /api/assets (registro individual).
// El serial se genera con alcance de producto: {CODE}-{seq:04d}.
type CreateAssetRequest struct {
	ProductID      string            `json:"product_id"`
	LocationID     string            `json:"location_id"`
	Condition      string            `json:"condition,omitempty"` // default: baik
	PurchaseDate   *time.Time        `json:"purchase_date,omitempty"`
	EstimatedPrice *decimal.Decimal  `json:"estimated_price,omitempty"`
	Attributes     entity.Attributes `json:"attributes,omitempty"`
}

// UpdateAssetRequest body para PUT /api/assets/:id (mutación de condición,
// ubicación, precio o atributos; el serial y el producto no cambian).
type UpdateAssetRequest struct {
	LocationID     *string           `json:"location_id,omitempty"`
	Condition      *string           `json:"condition,omitempty"`
	PurchaseDate   *time.Time        `json:"purchase_date,omitempty"`
	EstimatedPrice *decimal.Decimal  `json:"estimated_price,omitempty"`
	Attributes     entity.Attributes `json:"attributes,omitempty"`
}

// AssetResponse representación HTTP de un activo.
type AssetResponse struct {
	ID             string            `json:"id"`
	SerialNumber   string            `json:"serial_number"`
	ProductID      string            `json:"product_id"`
	LocationID     string            `json:"location_id"`
	Condition      string            `json:"condition"`
	PurchaseDate   *time.Time        `json:"purchase_date,omitempty"`
	EstimatedPrice *decimal.Decimal  `json:"estimated_price,omitempty"`
	Attributes     entity.Attributes `json:"attributes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// AssetListResponse listado paginado de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// BulkItemRequest línea de la registración masiva: un producto, N unidades.
type BulkItemRequest struct {
	ProductID      string            `json:"product_id"`
	Quantity       int               `json:"quantity"`
	Condition      string            `json:"condition,omitempty"`
	PurchaseDate   *time.Time        `json:"purchase_date,omitempty"`
	EstimatedPrice *decimal.Decimal  `json:"estimated_price,omitempty"`
	Attributes     entity.Attributes `json:"attributes,omitempty"`
}

// BulkRegisterRequest body para POST /api/assets/bulk (registro por sala).
type BulkRegisterRequest struct {
	LocationID string            `json:"location_id"`
	Items      []BulkItemRequest `json:"items"`
}

// BulkRegisterResponse ids y seriales de los activos creados.
type BulkRegisterResponse struct {
	Created []CreatedAsset `json:"created"`
	Total   int            `json:"total"`
}

// CreatedAsset par (id, serial) de un activo recién registrado.
type CreatedAsset struct {
	ID           string `json:"id"`
	SerialNumber string `json:"serial_number"`
}

// NextSerialResponse respuesta de GET /api/assets/next-serial.
type NextSerialResponse struct {
	SerialNumber string `json:"serial_number"`
}
