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

// AssetUseCase registro individual, consulta y mutación de activos físicos.
// El registro individual usa el serial con alcance de producto ({CODE}-{seq:04d});
// el registro por sala vive en BulkRegisterUseCase.
type AssetUseCase struct {
	repo         repository.AssetRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(
	repo repository.AssetRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *AssetUseCase {
	return &AssetUseCase{repo: repo, productRepo: productRepo, locationRepo: locationRepo}
}

// Create registra un activo individual con serial {CODE}-{seq:04d}.
// Una colisión de serial en el insert surge como ErrConflict (el caller decide reintentar o no).
func (uc *AssetUseCase) Create(ctx context.Context, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if in.ProductID == "" || in.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Condition != "" && !entity.ValidCondition(in.Condition) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Code == "" {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	count, err := uc.repo.CountByProductCode(product.Code)
	if err != nil {
		return nil, err
	}
	condition := in.Condition
	if condition == "" {
		condition = entity.ConditionGood
	}
	now := time.Now()
	asset := &entity.Asset{
		ID:             uuid.New().String(),
		SerialNumber:   serial.ProductScoped(product.Code, count),
		ProductID:      product.ID,
		LocationID:     location.ID,
		Condition:      condition,
		PurchaseDate:   in.PurchaseDate,
		EstimatedPrice: in.EstimatedPrice,
		Attributes:     in.Attributes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// GetByID obtiene un activo por ID.
func (uc *AssetUseCase) GetByID(ctx context.Context, id string) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	return toAssetResponse(asset), nil
}

// Update muta condición, ubicación, precio estimado o atributos de un activo.
// El serial y el producto son inmutables.
func (uc *AssetUseCase) Update(ctx context.Context, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	if in.Condition != nil {
		if !entity.ValidCondition(*in.Condition) {
			return nil, domain.ErrInvalidInput
		}
		asset.Condition = *in.Condition
	}
	if in.LocationID != nil {
		location, err := uc.locationRepo.GetByID(*in.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.ErrNotFound
		}
		asset.LocationID = location.ID
	}
	if in.PurchaseDate != nil {
		asset.PurchaseDate = in.PurchaseDate
	}
	if in.EstimatedPrice != nil {
		asset.EstimatedPrice = in.EstimatedPrice
	}
	if len(in.Attributes) > 0 {
		asset.Attributes = in.Attributes
	}
	asset.UpdatedAt = time.Now()
	if err := uc.repo.Update(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// List lista activos con filtros opcionales (producto, ubicación, condición) y paginación.
func (uc *AssetUseCase) List(ctx context.Context, filter repository.AssetFilter, limit, offset int) (*dto.AssetListResponse, error) {
	if filter.Condition != "" && !entity.ValidCondition(filter.Condition) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un activo por ID (solo actor autorizado; el RBAC vive en el router).
func (uc *AssetUseCase) Delete(ctx context.Context, id string) error {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		ID:             a.ID,
		SerialNumber:   a.SerialNumber,
		ProductID:      a.ProductID,
		LocationID:     a.LocationID,
		Condition:      a.Condition,
		PurchaseDate:   a.PurchaseDate,
		EstimatedPrice: a.EstimatedPrice,
		Attributes:     a.Attributes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
