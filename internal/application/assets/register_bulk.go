package assets

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
	"github.com/tu-usuario/sarpras-api/internal/domain/serial"
)

// BulkRegisterUseCase registra muchos activos para una ubicación en una sola
// operación lógica: genera un serial por unidad (alcance ubicación+producto)
// y hace el insert múltiple dentro de una transacción (todo o nada).
//
// Los seriales se asignan en orden de línea y, dentro de una línea, en orden
// de unidad. La secuencia por (producto, ubicación) se siembra UNA vez desde
// el conteo en BD dentro de la transacción y avanza con un contador local por
// unidad generada, de modo que dos unidades del mismo producto en un lote
// nunca reciben el mismo serial.
type BulkRegisterUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewBulkRegisterUseCase construye el caso de uso.
func NewBulkRegisterUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *BulkRegisterUseCase {
	return &BulkRegisterUseCase{txRunner: txRunner, productRepo: productRepo, locationRepo: locationRepo}
}

// Register valida el lote, genera los seriales y persiste todas las unidades
// en una transacción. Fallas:
//
//	ErrInvalidInput  → location_id o items vacíos, cantidad <= 0, condición inválida
//	                   (antes de generar serial alguno);
//	ErrNotFound      → ubicación o algún producto inexistente (aborta el lote completo);
//	ErrDuplicate     → colisión de serial en el insert (la transacción revierte todo).
func (uc *BulkRegisterUseCase) Register(ctx context.Context, userID string, in dto.BulkRegisterRequest) (*dto.BulkRegisterResponse, error) {
	// Validación estructural completa antes de tocar la BD.
	if in.LocationID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.Condition != "" && !entity.ValidCondition(item.Condition) {
			return nil, domain.ErrInvalidInput
		}
	}

	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var created []dto.CreatedAsset

	err = uc.txRunner.Run(ctx, func(assetRepo repository.AssetRepository) error {
		// Contador local por código de producto, sembrado desde el conteo en BD
		// la primera vez que el código aparece en el lote.
		counters := make(map[string]int64)
		var batch []*entity.Asset

		for _, item := range in.Items {
			product, err := uc.productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.Code == "" {
				return domain.ErrNotFound
			}
			seq, ok := counters[product.Code]
			if !ok {
				seq, err = assetRepo.CountByProductCodeAndLocation(product.Code, location.ID)
				if err != nil {
					return err
				}
			}
			condition := item.Condition
			if condition == "" {
				condition = entity.ConditionGood
			}
			for unit := 0; unit < item.Quantity; unit++ {
				sn := serial.LocationScoped(location.Building, location.Floor, location.Name, product.Code, seq)
				seq++
				asset := &entity.Asset{
					ID:             uuid.New().String(),
					SerialNumber:   sn,
					ProductID:      product.ID,
					LocationID:     location.ID,
					Condition:      condition,
					PurchaseDate:   item.PurchaseDate,
					EstimatedPrice: item.EstimatedPrice,
					Attributes:     item.Attributes,
					CreatedAt:      now,
					UpdatedAt:      now,
				}
				batch = append(batch, asset)
			}
			counters[product.Code] = seq
		}

		if err := assetRepo.CreateBatch(batch); err != nil {
			return err
		}
		created = make([]dto.CreatedAsset, 0, len(batch))
		for _, a := range batch {
			created = append(created, dto.CreatedAsset{ID: a.ID, SerialNumber: a.SerialNumber})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.BulkRegisterResponse{Created: created, Total: len(created)}, nil
}
