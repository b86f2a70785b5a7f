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

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, serial_number, product_id, location_id, condition, purchase_date, estimated_price, attributes, created_at, updated_at`

// Create persiste un activo. El índice único sobre serial_number es el
// respaldo contra seriales duplicados generados por requests concurrentes.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.SerialNumber, asset.ProductID, asset.LocationID, asset.Condition,
		asset.PurchaseDate, asset.EstimatedPrice, asset.Attributes, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// CreateBatch inserta el lote completo. Pensado para correr dentro de una
// transacción (Querier = tx): un error en cualquier unidad revierte todo.
func (r *AssetRepo) CreateBatch(assets []*entity.Asset) error {
	for _, a := range assets {
		if err := r.Create(a); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene un activo por ID.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza un activo. Serial y producto son inmutables.
func (r *AssetRepo) Update(asset *entity.Asset) error {
	query := `
		UPDATE assets
		SET location_id = $2, condition = $3, purchase_date = $4, estimated_price = $5, attributes = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.LocationID, asset.Condition, asset.PurchaseDate,
		asset.EstimatedPrice, asset.Attributes, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve activos paginados con filtros opcionales por producto,
// ubicación y condición.
func (r *AssetRepo) List(filter repository.AssetFilter, limit, offset int) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE 1=1`
	args := []any{}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		query += fmt.Sprintf(" AND product_id = $%d", len(args))
	}
	if filter.LocationID != "" {
		args = append(args, filter.LocationID)
		query += fmt.Sprintf(" AND location_id = $%d", len(args))
	}
	if filter.Condition != "" {
		args = append(args, filter.Condition)
		query += fmt.Sprintf(" AND condition = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY serial_number LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByLocation devuelve todos los activos de una ubicación (para reportes).
func (r *AssetRepo) ListByLocation(locationID string) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE location_id = $1 ORDER BY serial_number`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list assets by location: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Delete elimina un activo por ID.
func (r *AssetRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByProductCode cuenta los activos existentes del producto con el código
// dado. Alimenta la secuencia del serial por producto.
func (r *AssetRepo) CountByProductCode(code string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM assets a
		JOIN products p ON p.id = a.product_id
		WHERE p.code = $1`
	var count int64
	if err := r.q.QueryRow(context.Background(), query, code).Scan(&count); err != nil {
		return 0, fmt.Errorf("count assets by product code: %w", err)
	}
	return count, nil
}

// CountByProductCodeAndLocation acota el conteo a una ubicación. Alimenta la
// secuencia del serial por ubicación en la registración masiva.
func (r *AssetRepo) CountByProductCodeAndLocation(code, locationID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM assets a
		JOIN products p ON p.id = a.product_id
		WHERE p.code = $1 AND a.location_id = $2`
	var count int64
	if err := r.q.QueryRow(context.Background(), query, code, locationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count assets by product code and location: %w", err)
	}
	return count, nil
}

// ExistsByLocation indica si la ubicación tiene al menos un activo asignado.
func (r *AssetRepo) ExistsByLocation(locationID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM assets WHERE location_id = $1)`, locationID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists assets by location: %w", err)
	}
	return exists, nil
}

func (r *AssetRepo) scanOne(row pgx.Row) (*entity.Asset, error) {
	var a entity.Asset
	err := row.Scan(
		&a.ID, &a.SerialNumber, &a.ProductID, &a.LocationID, &a.Condition,
		&a.PurchaseDate, &a.EstimatedPrice, &a.Attributes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan asset: %w", err)
	}
	return &a, nil
}

func (r *AssetRepo) scanAll(rows pgx.Rows) ([]*entity.Asset, error) {
	var assets []*entity.Asset
	for rows.Next() {
		a, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
