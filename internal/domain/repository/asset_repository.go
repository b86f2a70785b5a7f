package repository

import "github.com/tu-usuario/sarpras-api/internal/domain/entity"

// AssetFilter filtros opcionales para el listado de activos.
type AssetFilter struct {
	ProductID  string
	LocationID string
	Condition  string
}

// AssetRepository puerto de persistencia para Asset.
//
// CountByProductCode cuenta los activos cuyo producto resuelve al código dado;
// CountByProductCodeAndLocation lo acota además a una ubicación. Estos conteos
// alimentan la secuencia del generador de seriales (invariante derivado, no un
// contador almacenado).
type AssetRepository interface {
	Create(asset *entity.Asset) error
	CreateBatch(assets []*entity.Asset) error
	GetByID(id string) (*entity.Asset, error)
	Update(asset *entity.Asset) error
	List(filter AssetFilter, limit, offset int) ([]*entity.Asset, error)
	ListByLocation(locationID string) ([]*entity.Asset, error)
	Delete(id string) error
	CountByProductCode(code string) (int64, error)
	CountByProductCodeAndLocation(code, locationID string) (int64, error)
	ExistsByLocation(locationID string) (bool, error)
}
