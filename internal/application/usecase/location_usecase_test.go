package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/application/usecase"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

type fakeLocationRepo struct {
	locations map[string]*entity.Location
	deleted   []string
}

func newFakeLocationRepo(locations ...*entity.Location) *fakeLocationRepo {
	m := make(map[string]*entity.Location)
	for _, l := range locations {
		m[l.ID] = l
	}
	return &fakeLocationRepo{locations: m}
}

func (f *fakeLocationRepo) Create(l *entity.Location) error {
	f.locations[l.ID] = l
	return nil
}

func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.locations[id], nil
}

func (f *fakeLocationRepo) GetByTriple(name, building, floor string) (*entity.Location, error) {
	for _, l := range f.locations {
		if l.Name == name && l.Building == building && l.Floor == floor {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLocationRepo) Update(l *entity.Location) error {
	f.locations[l.ID] = l
	return nil
}

func (f *fakeLocationRepo) List(limit, offset int) ([]*entity.Location, error) { return nil, nil }

func (f *fakeLocationRepo) Delete(id string) error {
	delete(f.locations, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeAssetExistence solo responde ExistsByLocation; el resto no se usa aquí.
type fakeAssetExistence struct {
	occupied map[string]bool
}

func (f *fakeAssetExistence) Create(a *entity.Asset) error            { return nil }
func (f *fakeAssetExistence) CreateBatch(a []*entity.Asset) error     { return nil }
func (f *fakeAssetExistence) GetByID(id string) (*entity.Asset, error) { return nil, nil }
func (f *fakeAssetExistence) Update(a *entity.Asset) error            { return nil }
func (f *fakeAssetExistence) List(filter repository.AssetFilter, limit, offset int) ([]*entity.Asset, error) {
	return nil, nil
}
func (f *fakeAssetExistence) ListByLocation(locationID string) ([]*entity.Asset, error) {
	return nil, nil
}
func (f *fakeAssetExistence) Delete(id string) error { return nil }
func (f *fakeAssetExistence) CountByProductCode(code string) (int64, error) { return 0, nil }
func (f *fakeAssetExistence) CountByProductCodeAndLocation(code, locationID string) (int64, error) {
	return 0, nil
}
func (f *fakeAssetExistence) ExistsByLocation(locationID string) (bool, error) {
	return f.occupied[locationID], nil
}

func TestLocationCreate_DerivaCodigo(t *testing.T) {
	repo := newFakeLocationRepo()
	uc := usecase.NewLocationUseCase(repo, &fakeAssetExistence{})

	out, err := uc.Create(dto.CreateLocationRequest{Name: "301 Lab Komputer", Building: "A", Floor: "3"})
	require.NoError(t, err)
	assert.Equal(t, "GA-L3-R301", out.Code)
}

// Nombre sin prefijo numérico: el componente de sala cae al marcador N/A.
func TestLocationCreate_SinNumeroDeSala(t *testing.T) {
	repo := newFakeLocationRepo()
	uc := usecase.NewLocationUseCase(repo, &fakeAssetExistence{})

	out, err := uc.Create(dto.CreateLocationRequest{Name: "Gudang ATK", Building: "B", Floor: "1"})
	require.NoError(t, err)
	assert.Equal(t, "GB-L1-RN/A", out.Code)
}

func TestLocationCreate_TripletaDuplicada(t *testing.T) {
	repo := newFakeLocationRepo(&entity.Location{
		ID: "loc-1", Name: "301 Lab Komputer", Building: "A", Floor: "3",
	})
	uc := usecase.NewLocationUseCase(repo, &fakeAssetExistence{})

	_, err := uc.Create(dto.CreateLocationRequest{Name: "301 Lab Komputer", Building: "A", Floor: "3"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El mismo nombre en otro edificio es otra ubicación válida.
	out, err := uc.Create(dto.CreateLocationRequest{Name: "301 Lab Komputer", Building: "B", Floor: "3"})
	require.NoError(t, err)
	assert.Equal(t, "GB-L3-R301", out.Code)
}

func TestLocationUpdate_RecalculaCodigo(t *testing.T) {
	repo := newFakeLocationRepo(&entity.Location{
		ID: "loc-1", Name: "301 Lab Komputer", Building: "A", Floor: "3", Code: "GA-L3-R301",
	})
	uc := usecase.NewLocationUseCase(repo, &fakeAssetExistence{})

	newName := "402 Lab Bahasa"
	newFloor := "4"
	out, err := uc.Update("loc-1", dto.UpdateLocationRequest{Name: &newName, Floor: &newFloor})
	require.NoError(t, err)
	assert.Equal(t, "GA-L4-R402", out.Code)
}

func TestLocationDelete_BloqueadaConActivos(t *testing.T) {
	repo := newFakeLocationRepo(&entity.Location{ID: "loc-1", Name: "301 Lab", Building: "A", Floor: "3"})
	uc := usecase.NewLocationUseCase(repo, &fakeAssetExistence{occupied: map[string]bool{"loc-1": true}})

	err := uc.Delete("loc-1")
	assert.ErrorIs(t, err, domain.ErrLocationInUse)
	assert.Empty(t, repo.deleted)
}

func TestLocationDelete_VaciaYExistente(t *testing.T) {
	repo := newFakeLocationRepo(&entity.Location{ID: "loc-1", Name: "301 Lab", Building: "A", Floor: "3"})
	uc := usecase.NewLocationUseCase(repo, &fakeAssetExistence{})

	require.NoError(t, uc.Delete("loc-1"))
	assert.Equal(t, []string{"loc-1"}, repo.deleted)
}

func TestLocationDelete_Inexistente(t *testing.T) {
	repo := newFakeLocationRepo()
	uc := usecase.NewLocationUseCase(repo, &fakeAssetExistence{})

	err := uc.Delete("loc-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
