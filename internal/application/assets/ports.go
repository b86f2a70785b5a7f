package assets

import (
	"context"

	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de activos atado a esa tx. Garantiza atomicidad del lote:
// o se insertan todas las unidades o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(assetRepo repository.AssetRepository) error) error
}
