package consumable

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

// CatalogUseCase CRUD del catálogo de consumibles.
type CatalogUseCase struct {
	repo repository.ConsumableRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ConsumableRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create crea un consumible. El punto de reorden no puede ser negativo.
func (uc *CatalogUseCase) Create(in dto.CreateConsumableRequest) (*dto.ConsumableResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" || in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderPoint.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	consumable := &entity.ConsumableProduct{
		ID:           uuid.New().String(),
		Code:         code,
		Name:         in.Name,
		Unit:         in.Unit,
		ReorderPoint: in.ReorderPoint,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(consumable); err != nil {
		return nil, err
	}
	return toConsumableResponse(consumable), nil
}

// GetByID obtiene un consumible por ID.
func (uc *CatalogUseCase) GetByID(id string) (*dto.ConsumableResponse, error) {
	consumable, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if consumable == nil {
		return nil, nil
	}
	return toConsumableResponse(consumable), nil
}

// Update actualiza nombre, unidad o punto de reorden. El código es inmutable.
func (uc *CatalogUseCase) Update(id string, in dto.UpdateConsumableRequest) (*dto.ConsumableResponse, error) {
	consumable, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if consumable == nil {
		return nil, nil
	}
	if in.Name != nil {
		consumable.Name = *in.Name
	}
	if in.Unit != nil {
		consumable.Unit = *in.Unit
	}
	if in.ReorderPoint != nil {
		if in.ReorderPoint.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		consumable.ReorderPoint = *in.ReorderPoint
	}
	consumable.UpdatedAt = time.Now()
	if err := uc.repo.Update(consumable); err != nil {
		return nil, err
	}
	return toConsumableResponse(consumable), nil
}

// List lista consumibles con paginación.
func (uc *CatalogUseCase) List(limit, offset int) ([]dto.ConsumableResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConsumableResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConsumableResponse(c))
	}
	return items, nil
}

// Delete elimina un consumible por ID.
func (uc *CatalogUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toConsumableResponse(c *entity.ConsumableProduct) *dto.ConsumableResponse {
	if c == nil {
		return nil
	}
	return &dto.ConsumableResponse{
		ID:           c.ID,
		Code:         c.Code,
		Name:         c.Name,
		Unit:         c.Unit,
		ReorderPoint: c.ReorderPoint,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
