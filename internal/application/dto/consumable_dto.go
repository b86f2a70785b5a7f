package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateConsumableRequest body para POST /api/consumables.
type CreateConsumableRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
}

// UpdateConsumableRequest body para PUT /api/consumables/:id.
type UpdateConsumableRequest struct {
	Name         *string          `json:"name,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	ReorderPoint *decimal.Decimal `json:"reorder_point,omitempty"`
}

// ConsumableResponse representación HTTP de un consumible del catálogo.
type ConsumableResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockTransactionRequest body para restock/usage de un consumible.
type StockTransactionRequest struct {
	LocationID string          `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Note       string          `json:"note,omitempty"`
}

// StockResponse saldo corriente después de una transacción.
type StockResponse struct {
	ConsumableID string          `json:"consumable_id"`
	LocationID   string          `json:"location_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ConsumableLogResponse entrada del ledger.
type ConsumableLogResponse struct {
	ID           string          `json:"id"`
	ConsumableID string          `json:"consumable_id"`
	LocationID   string          `json:"location_id"`
	Type         string          `json:"type"` // penambahan | pengambilan
	Quantity     decimal.Decimal `json:"quantity"`
	Note         string          `json:"note,omitempty"`
	CreatedBy    string          `json:"created_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BelowReorderResponse consumible en o bajo el punto de reorden, con la
// cantidad sugerida de pedido y prioridad por déficit (1 = más urgente).
type BelowReorderResponse struct {
	ConsumableID      string          `json:"consumable_id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	LocationID        string          `json:"location_id"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	ReorderPoint      decimal.Decimal `json:"reorder_point"`
	SuggestedOrderQty decimal.Decimal `json:"suggested_order_qty"`
	Priority          int             `json:"priority"`
}
