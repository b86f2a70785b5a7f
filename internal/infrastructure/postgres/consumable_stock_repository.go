package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

var _ repository.ConsumableStockRepository = (*ConsumableStockRepo)(nil)

// ConsumableStockRepo implementación del puerto ConsumableStockRepository
// sobre PostgreSQL (usable con pool o tx).
type ConsumableStockRepo struct {
	q Querier
}

// NewConsumableStockRepository construye el adaptador del saldo de consumibles. Pasar pool o tx (Querier).
func NewConsumableStockRepository(q Querier) *ConsumableStockRepo {
	return &ConsumableStockRepo{q: q}
}

// Get obtiene el saldo de (consumible, ubicación). Si la fila no existe
// devuelve un saldo en cero: el stock nace implícitamente en el primer restock.
func (r *ConsumableStockRepo) Get(consumableID, locationID string) (*entity.ConsumableStock, error) {
	return r.get(consumableID, locationID, false)
}

// GetForUpdate obtiene el saldo bloqueando la fila (SELECT FOR UPDATE). Debe
// llamarse dentro de una transacción; el lock se libera en Commit/Rollback.
func (r *ConsumableStockRepo) GetForUpdate(consumableID, locationID string) (*entity.ConsumableStock, error) {
	return r.get(consumableID, locationID, true)
}

func (r *ConsumableStockRepo) get(consumableID, locationID string, forUpdate bool) (*entity.ConsumableStock, error) {
	query := `
		SELECT consumable_id, location_id, quantity, updated_at
		FROM consumable_stocks
		WHERE consumable_id = $1 AND location_id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var s entity.ConsumableStock
	err := r.q.QueryRow(context.Background(), query, consumableID, locationID).Scan(
		&s.ConsumableID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ConsumableStock{
				ConsumableID: consumableID,
				LocationID:   locationID,
				Quantity:     decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get consumable stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza el saldo de (consumible, ubicación).
func (r *ConsumableStockRepo) Upsert(stock *entity.ConsumableStock) error {
	query := `
		INSERT INTO consumable_stocks (consumable_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (consumable_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		stock.ConsumableID, stock.LocationID, stock.Quantity, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert consumable stock: %w", err)
	}
	return nil
}

// ListBelowReorder devuelve los consumibles con saldo en o bajo su punto de
// reorden. locationID vacío consulta todas las ubicaciones.
func (r *ConsumableStockRepo) ListBelowReorder(locationID string) ([]repository.BelowReorderItem, error) {
	query := `
		SELECT c.id, c.code, c.name, c.unit, s.location_id, s.quantity, c.reorder_point
		FROM consumable_stocks s
		JOIN consumables c ON c.id = s.consumable_id
		WHERE s.quantity <= c.reorder_point`
	args := []any{}
	if locationID != "" {
		args = append(args, locationID)
		query += fmt.Sprintf(" AND s.location_id = $%d", len(args))
	}
	query += " ORDER BY c.code, s.location_id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list below reorder: %w", err)
	}
	defer rows.Close()

	var items []repository.BelowReorderItem
	for rows.Next() {
		var it repository.BelowReorderItem
		if err := rows.Scan(&it.ConsumableID, &it.Code, &it.Name, &it.Unit, &it.LocationID, &it.Quantity, &it.ReorderPoint); err != nil {
			return nil, fmt.Errorf("scan below reorder item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
