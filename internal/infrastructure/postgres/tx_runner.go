package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/sarpras-api/internal/application/assets"
	"github.com/tu-usuario/sarpras-api/internal/application/consumable"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

var _ assets.TxRunner = (*AssetTxRunner)(nil)
var _ consumable.TxRunner = (*ConsumableTxRunner)(nil)

// AssetTxRunner ejecuta callbacks dentro de una transacción PostgreSQL con un
// repositorio de activos atado a la tx. Usado por la registración masiva por
// sala: o se insertan todas las unidades del lote o ninguna.
type AssetTxRunner struct {
	pool *pgxpool.Pool
}

// NewAssetTxRunner construye el runner con el pool.
func NewAssetTxRunner(pool *pgxpool.Pool) *AssetTxRunner {
	return &AssetTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn y hace Commit; cualquier error
// produce Rollback completo.
func (r *AssetTxRunner) Run(ctx context.Context, fn func(assetRepo repository.AssetRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAssetRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ConsumableTxRunner ejecuta callbacks dentro de una transacción PostgreSQL
// con los repos de saldo y ledger de consumibles atados a la tx. Mantiene
// saldo corriente y ledger consistentes: ambos cambian o ninguno.
type ConsumableTxRunner struct {
	pool *pgxpool.Pool
}

// NewConsumableTxRunner construye el runner con el pool.
func NewConsumableTxRunner(pool *pgxpool.Pool) *ConsumableTxRunner {
	return &ConsumableTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn y hace Commit; cualquier error
// produce Rollback completo.
func (r *ConsumableTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.ConsumableStockRepository,
	logRepo repository.ConsumableLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewConsumableStockRepository(tx), NewConsumableLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
