package assets

import (
	"context"

	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
	"github.com/tu-usuario/sarpras-api/internal/domain/serial"
)

// SerialUseCase genera el siguiente número de serie para un activo nuevo.
// Es una operación de solo lectura: cuenta los activos existentes del alcance
// y formatea el sufijo secuencial. La unicidad final la garantiza el índice
// único de la tabla al insertar (la generación concurrente sobre el mismo
// alcance puede producir el mismo serial; ver DESIGN.md).
type SerialUseCase struct {
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	assetRepo    repository.AssetRepository
}

// NewSerialUseCase construye el generador.
func NewSerialUseCase(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	assetRepo repository.AssetRepository,
) *SerialUseCase {
	return &SerialUseCase{productRepo: productRepo, locationRepo: locationRepo, assetRepo: assetRepo}
}

// NextProductSerial devuelve el siguiente serial con alcance de producto:
// {CODE}-{seq:04d}. ErrNotFound si el producto no existe. Sin efectos de escritura.
func (uc *SerialUseCase) NextProductSerial(ctx context.Context, productID string) (string, error) {
	if productID == "" {
		return "", domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return "", err
	}
	if product == nil || product.Code == "" {
		return "", domain.ErrNotFound
	}
	count, err := uc.assetRepo.CountByProductCode(product.Code)
	if err != nil {
		return "", err
	}
	return serial.ProductScoped(product.Code, count), nil
}

// NextLocationSerial devuelve el siguiente serial con alcance ubicación+producto:
// G{edificio}/L{piso}/R{sala}/{CODE}{seq:03d}. ErrNotFound si el producto o la
// ubicación no existen. Sin efectos de escritura.
func (uc *SerialUseCase) NextLocationSerial(ctx context.Context, productID, locationID string) (string, error) {
	if productID == "" || locationID == "" {
		return "", domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return "", err
	}
	if product == nil || product.Code == "" {
		return "", domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return "", err
	}
	if location == nil {
		return "", domain.ErrNotFound
	}
	count, err := uc.assetRepo.CountByProductCodeAndLocation(product.Code, location.ID)
	if err != nil {
		return "", err
	}
	return serial.LocationScoped(location.Building, location.Floor, location.Name, product.Code, count), nil
}
