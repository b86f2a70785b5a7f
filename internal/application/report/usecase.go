package report

import (
	"context"

	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

// AssetRow fila del reporte de inventario: un activo con los datos de su
// producto ya resueltos.
type AssetRow struct {
	SerialNumber string
	ProductCode  string
	ProductName  string
	Unit         string
	Condition    string
	Asset        *entity.Asset
}

// PDFGenerator puerto del generador de PDF del reporte de inventario.
type PDFGenerator interface {
	GenerateAssetReport(ctx context.Context, location *entity.Location, rows []AssetRow) ([]byte, error)
}

// UseCase arma el recap de inventario de activos por ubicación y delega el
// render a un PDFGenerator.
type UseCase struct {
	locRepo     repository.LocationRepository
	assetRepo   repository.AssetRepository
	productRepo repository.ProductRepository
	gen         PDFGenerator
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	locRepo repository.LocationRepository,
	assetRepo repository.AssetRepository,
	productRepo repository.ProductRepository,
	gen PDFGenerator,
) *UseCase {
	return &UseCase{locRepo: locRepo, assetRepo: assetRepo, productRepo: productRepo, gen: gen}
}

// AssetsByLocation genera el PDF con todos los activos de la ubicación,
// ordenados por serial.
func (uc *UseCase) AssetsByLocation(ctx context.Context, locationID string) ([]byte, error) {
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.locRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	assets, err := uc.assetRepo.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}

	// Cache de productos: un lote suele repetir pocos productos muchas veces.
	products := make(map[string]*entity.Product)
	rows := make([]AssetRow, 0, len(assets))
	for _, a := range assets {
		p, ok := products[a.ProductID]
		if !ok {
			p, err = uc.productRepo.GetByID(a.ProductID)
			if err != nil {
				return nil, err
			}
			products[a.ProductID] = p
		}
		row := AssetRow{SerialNumber: a.SerialNumber, Condition: a.Condition, Asset: a}
		if p != nil {
			row.ProductCode = p.Code
			row.ProductName = p.Name
			row.Unit = p.Unit
		}
		rows = append(rows, row)
	}
	return uc.gen.GenerateAssetReport(ctx, location, rows)
}
