package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

var _ repository.ConsumableLogRepository = (*ConsumableLogRepo)(nil)

// ConsumableLogRepo implementación del puerto ConsumableLogRepository sobre
// PostgreSQL. El ledger es append-only: solo INSERT y SELECT.
type ConsumableLogRepo struct {
	q Querier
}

// NewConsumableLogRepository construye el adaptador del ledger de consumibles. Pasar pool o tx (Querier).
func NewConsumableLogRepository(q Querier) *ConsumableLogRepo {
	return &ConsumableLogRepo{q: q}
}

// Create agrega una entrada al ledger.
func (r *ConsumableLogRepo) Create(log *entity.ConsumableLog) error {
	query := `
		INSERT INTO consumable_logs (id, consumable_id, location_id, type, quantity, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ConsumableID, log.LocationID, log.Type,
		log.Quantity, log.Note, log.CreatedBy, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consumable log: %w", err)
	}
	return nil
}

// ListByConsumable devuelve el ledger de un consumible, del más reciente al más antiguo.
func (r *ConsumableLogRepo) ListByConsumable(consumableID string, limit, offset int) ([]*entity.ConsumableLog, error) {
	query := `
		SELECT id, consumable_id, location_id, type, quantity, note, created_by, created_at
		FROM consumable_logs
		WHERE consumable_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, consumableID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list consumable logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.ConsumableLog
	for rows.Next() {
		var l entity.ConsumableLog
		if err := rows.Scan(&l.ID, &l.ConsumableID, &l.LocationID, &l.Type, &l.Quantity, &l.Note, &l.CreatedBy, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan consumable log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
