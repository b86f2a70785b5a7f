package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
)

// ConsumableRepository puerto de persistencia para el catálogo de consumibles.
type ConsumableRepository interface {
	Create(consumable *entity.ConsumableProduct) error
	GetByID(id string) (*entity.ConsumableProduct, error)
	Update(consumable *entity.ConsumableProduct) error
	List(limit, offset int) ([]*entity.ConsumableProduct, error)
	Delete(id string) error
}

// BelowReorderItem fila del reporte de consumibles en o bajo el punto de reorden.
type BelowReorderItem struct {
	ConsumableID string
	Code         string
	Name         string
	Unit         string
	LocationID   string
	Quantity     decimal.Decimal
	ReorderPoint decimal.Decimal
}

// ConsumableStockRepository puerto del saldo corriente por (consumible, ubicación).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de la transacción actual.
type ConsumableStockRepository interface {
	Get(consumableID, locationID string) (*entity.ConsumableStock, error)
	GetForUpdate(consumableID, locationID string) (*entity.ConsumableStock, error)
	Upsert(stock *entity.ConsumableStock) error
	ListBelowReorder(locationID string) ([]BelowReorderItem, error)
}

// ConsumableLogRepository puerto del ledger inmutable de consumibles (append-only).
type ConsumableLogRepository interface {
	Create(log *entity.ConsumableLog) error
	ListByConsumable(consumableID string, limit, offset int) ([]*entity.ConsumableLog, error)
}
