package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

var _ repository.ConsumableRepository = (*ConsumableRepo)(nil)

// ConsumableRepo implementación del puerto ConsumableRepository sobre PostgreSQL.
type ConsumableRepo struct {
	q Querier
}

// NewConsumableRepository construye el adaptador de persistencia para el catálogo de consumibles.
func NewConsumableRepository(q Querier) *ConsumableRepo {
	return &ConsumableRepo{q: q}
}

func (r *ConsumableRepo) Create(consumable *entity.ConsumableProduct) error {
	query := `
		INSERT INTO consumables (id, code, name, unit, reorder_point, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		consumable.ID, consumable.Code, consumable.Name, consumable.Unit,
		consumable.ReorderPoint, consumable.CreatedAt, consumable.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert consumable: %w", err)
	}
	return nil
}

func (r *ConsumableRepo) GetByID(id string) (*entity.ConsumableProduct, error) {
	query := `
		SELECT id, code, name, unit, reorder_point, created_at, updated_at
		FROM consumables WHERE id = $1`
	var c entity.ConsumableProduct
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Code, &c.Name, &c.Unit, &c.ReorderPoint, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consumable: %w", err)
	}
	return &c, nil
}

func (r *ConsumableRepo) Update(consumable *entity.ConsumableProduct) error {
	query := `
		UPDATE consumables
		SET name = $2, unit = $3, reorder_point = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		consumable.ID, consumable.Name, consumable.Unit,
		consumable.ReorderPoint, consumable.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update consumable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ConsumableRepo) List(limit, offset int) ([]*entity.ConsumableProduct, error) {
	query := `
		SELECT id, code, name, unit, reorder_point, created_at, updated_at
		FROM consumables ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list consumables: %w", err)
	}
	defer rows.Close()

	var consumables []*entity.ConsumableProduct
	for rows.Next() {
		var c entity.ConsumableProduct
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Unit, &c.ReorderPoint, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan consumable: %w", err)
		}
		consumables = append(consumables, &c)
	}
	return consumables, rows.Err()
}

func (r *ConsumableRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM consumables WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete consumable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
