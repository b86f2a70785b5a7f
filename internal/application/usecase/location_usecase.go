package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
	"github.com/tu-usuario/sarpras-api/internal/domain/serial"
)

// LocationUseCase CRUD de ubicaciones físicas. La tripleta (name, building, floor)
// es única y la eliminación se bloquea mientras existan activos en la ubicación.
type LocationUseCase struct {
	repo      repository.LocationRepository
	assetRepo repository.AssetRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, assetRepo repository.AssetRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, assetRepo: assetRepo}
}

// Create crea una ubicación con su código derivado (G{edificio}-L{piso}-R{sala}).
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" || in.Building == "" || in.Floor == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByTriple(in.Name, in.Building, in.Floor)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Building:  in.Building,
		Floor:     in.Floor,
		Code:      deriveLocationCode(in.Building, in.Floor, in.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza una ubicación y recalcula su código derivado.
// La tripleta resultante debe seguir siendo única.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Building != nil {
		location.Building = *in.Building
	}
	if in.Floor != nil {
		location.Floor = *in.Floor
	}
	if location.Name == "" || location.Building == "" || location.Floor == "" {
		return nil, domain.ErrInvalidInput
	}
	other, _ := uc.repo.GetByTriple(location.Name, location.Building, location.Floor)
	if other != nil && other.ID != location.ID {
		return nil, domain.ErrDuplicate
	}
	location.Code = deriveLocationCode(location.Building, location.Floor, location.Name)
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones con paginación.
func (uc *LocationUseCase) List(limit, offset int) ([]dto.LocationResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Delete elimina una ubicación. Bloqueado con ErrLocationInUse mientras algún
// activo la referencie.
func (uc *LocationUseCase) Delete(id string) error {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	inUse, err := uc.assetRepo.ExistsByLocation(id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrLocationInUse
	}
	return uc.repo.Delete(id)
}

// deriveLocationCode arma el código legible de la ubicación a partir del
// edificio, el piso y el prefijo numérico del nombre.
func deriveLocationCode(building, floor, name string) string {
	return fmt.Sprintf("G%s-L%s-R%s", building, floor, serial.RoomNumber(name))
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Building:  l.Building,
		Floor:     l.Floor,
		Code:      l.Code,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
