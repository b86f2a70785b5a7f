package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del ledger de consumibles.
const (
	LogTypeRestock = "penambahan"  // entrada de stock
	LogTypeUsage   = "pengambilan" // salida de stock
)

// ConsumableProduct entrada del catálogo de consumibles (tiza, papel, tóner).
type ConsumableProduct struct {
	ID           string
	Code         string
	Name         string
	Unit         string
	ReorderPoint decimal.Decimal // punto de reorden del saldo por ubicación
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ConsumableStock saldo corriente de un consumible en una ubicación.
// Se muta únicamente vía restock/usage, siempre junto con un ConsumableLog.
type ConsumableStock struct {
	ConsumableID string
	LocationID   string
	Quantity     decimal.Decimal
	UpdatedAt    time.Time
}

// ConsumableLog entrada inmutable del ledger de consumibles: quién cambió el
// saldo, cuánto y por qué. Un log por cada mutación del saldo.
type ConsumableLog struct {
	ID           string
	ConsumableID string
	LocationID   string
	Type         string // penambahan | pengambilan
	Quantity     decimal.Decimal
	Note         string
	CreatedBy    string // UserID
	CreatedAt    time.Time
}
