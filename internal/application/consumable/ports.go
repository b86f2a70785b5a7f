package consumable

import (
	"context"

	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios de saldo y ledger atados a esa tx. Mantiene consistentes el
// saldo corriente y el ledger append-only: ambos cambian o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.ConsumableStockRepository,
		logRepo repository.ConsumableLogRepository,
	) error) error
}
