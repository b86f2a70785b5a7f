package repository

import "github.com/tu-usuario/sarpras-api/internal/domain/entity"

// LocationRepository puerto de persistencia para Location.
// La tripleta (name, building, floor) tiene constraint único en la tabla.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetByTriple(name, building, floor string) (*entity.Location, error)
	Update(location *entity.Location) error
	List(limit, offset int) ([]*entity.Location, error)
	Delete(id string) error
}
