package consumable

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

// StockUseCase transacciones de stock de consumibles: restock (penambahan) y
// uso (pengambilan). Cada operación bloquea la fila del saldo (SELECT FOR
// UPDATE), lo muta y agrega exactamente UNA entrada al ledger, todo dentro de
// la misma transacción.
type StockUseCase struct {
	txRunner  TxRunner
	repo      repository.ConsumableRepository
	stockRepo repository.ConsumableStockRepository
	logRepo   repository.ConsumableLogRepository
	locRepo   repository.LocationRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	repo repository.ConsumableRepository,
	stockRepo repository.ConsumableStockRepository,
	logRepo repository.ConsumableLogRepository,
	locRepo repository.LocationRepository,
) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, repo: repo, stockRepo: stockRepo, logRepo: logRepo, locRepo: locRepo}
}

// Restock suma cantidad al saldo de (consumible, ubicación) y registra una
// entrada penambahan en el ledger.
func (uc *StockUseCase) Restock(ctx context.Context, userID, consumableID string, in dto.StockTransactionRequest) (*dto.StockResponse, error) {
	return uc.apply(ctx, userID, consumableID, in, entity.LogTypeRestock)
}

// Use resta cantidad del saldo de (consumible, ubicación) y registra una
// entrada pengambilan. ErrInsufficientStock si el saldo no alcanza.
func (uc *StockUseCase) Use(ctx context.Context, userID, consumableID string, in dto.StockTransactionRequest) (*dto.StockResponse, error) {
	return uc.apply(ctx, userID, consumableID, in, entity.LogTypeUsage)
}

func (uc *StockUseCase) apply(ctx context.Context, userID, consumableID string, in dto.StockTransactionRequest, logType string) (*dto.StockResponse, error) {
	if consumableID == "" || in.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	consumable, err := uc.repo.GetByID(consumableID)
	if err != nil {
		return nil, err
	}
	if consumable == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var out *dto.StockResponse

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.ConsumableStockRepository,
		logRepo repository.ConsumableLogRepository,
	) error {
		// Bloquea la fila del saldo para evitar carreras entre transacciones concurrentes.
		stock, err := stockRepo.GetForUpdate(consumableID, location.ID)
		if err != nil {
			return err
		}
		switch logType {
		case entity.LogTypeRestock:
			stock.Quantity = stock.Quantity.Add(in.Quantity)
		case entity.LogTypeUsage:
			if stock.Quantity.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
			stock.Quantity = stock.Quantity.Sub(in.Quantity)
		default:
			return domain.ErrInvalidInput
		}
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		log := &entity.ConsumableLog{
			ID:           uuid.New().String(),
			ConsumableID: consumableID,
			LocationID:   location.ID,
			Type:         logType,
			Quantity:     in.Quantity,
			Note:         in.Note,
			CreatedBy:    userID,
			CreatedAt:    now,
		}
		if err := logRepo.Create(log); err != nil {
			return err
		}
		out = &dto.StockResponse{
			ConsumableID: consumableID,
			LocationID:   location.ID,
			Quantity:     stock.Quantity,
			UpdatedAt:    now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Logs devuelve el ledger de un consumible, paginado y del más reciente al más antiguo.
func (uc *StockUseCase) Logs(ctx context.Context, consumableID string, limit, offset int) ([]dto.ConsumableLogResponse, error) {
	consumable, err := uc.repo.GetByID(consumableID)
	if err != nil {
		return nil, err
	}
	if consumable == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.logRepo.ListByConsumable(consumableID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConsumableLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.ConsumableLogResponse{
			ID:           l.ID,
			ConsumableID: l.ConsumableID,
			LocationID:   l.LocationID,
			Type:         l.Type,
			Quantity:     l.Quantity,
			Note:         l.Note,
			CreatedBy:    l.CreatedBy,
			CreatedAt:    l.CreatedAt,
		})
	}
	return items, nil
}

// BelowReorder devuelve los consumibles en o bajo su punto de reorden con la
// cantidad sugerida de pedido (hasta el punto de reorden) y prioridad por
// déficit relativo (1 = más urgente). locationID vacío = todas las ubicaciones.
func (uc *StockUseCase) BelowReorder(ctx context.Context, locationID string) ([]dto.BelowReorderResponse, error) {
	rows, err := uc.stockRepo.ListBelowReorder(locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BelowReorderResponse, 0, len(rows))
	for _, r := range rows {
		suggested := r.ReorderPoint.Sub(r.Quantity)
		if suggested.LessThan(decimal.Zero) {
			suggested = decimal.Zero
		}
		out = append(out, dto.BelowReorderResponse{
			ConsumableID:      r.ConsumableID,
			Code:              r.Code,
			Name:              r.Name,
			Unit:              r.Unit,
			LocationID:        r.LocationID,
			CurrentStock:      r.Quantity,
			ReorderPoint:      r.ReorderPoint,
			SuggestedOrderQty: suggested,
		})
	}
	// Mayor déficit primero; empate por código para salida estable.
	sort.SliceStable(out, func(i, j int) bool {
		defI := out[i].ReorderPoint.Sub(out[i].CurrentStock)
		defJ := out[j].ReorderPoint.Sub(out[j].CurrentStock)
		if !defI.Equal(defJ) {
			return defI.GreaterThan(defJ)
		}
		return out[i].Code < out[j].Code
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
