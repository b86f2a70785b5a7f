package assets_test

import (
	"context"
	"strings"

	"github.com/tu-usuario/sarpras-api/internal/application/assets"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) Delete(id string) error { return nil }

type fakeLocationRepo struct {
	locations map[string]*entity.Location
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

func (f *fakeLocationRepo) Update(l *entity.Location) error { return nil }

func (f *fakeLocationRepo) List(limit, offset int) ([]*entity.Location, error) { return nil, nil }

func (f *fakeLocationRepo) Delete(id string) error { return nil }

// fakeAssetRepo resuelve el código de producto contra el fakeProductRepo para
// los conteos, igual que el JOIN de la implementación real.
type fakeAssetRepo struct {
	products *fakeProductRepo
	assets   []*entity.Asset
}

func newFakeAssetRepo(products *fakeProductRepo, assets ...*entity.Asset) *fakeAssetRepo {
	return &fakeAssetRepo{products: products, assets: assets}
}

func (f *fakeAssetRepo) Create(a *entity.Asset) error {
	for _, existing := range f.assets {
		if existing.SerialNumber == a.SerialNumber {
			return domain.ErrConflict
		}
	}
	f.assets = append(f.assets, a)
	return nil
}

func (f *fakeAssetRepo) CreateBatch(batch []*entity.Asset) error {
	for _, a := range batch {
		if err := f.Create(a); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeAssetRepo) GetByID(id string) (*entity.Asset, error) {
	for _, a := range f.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAssetRepo) Update(a *entity.Asset) error { return nil }

func (f *fakeAssetRepo) List(filter repository.AssetFilter, limit, offset int) ([]*entity.Asset, error) {
	return f.assets, nil
}

func (f *fakeAssetRepo) ListByLocation(locationID string) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range f.assets {
		if a.LocationID == locationID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) Delete(id string) error { return nil }

func (f *fakeAssetRepo) codeOf(productID string) string {
	if p := f.products.products[productID]; p != nil {
		return p.Code
	}
	return ""
}

func (f *fakeAssetRepo) CountByProductCode(code string) (int64, error) {
	var n int64
	for _, a := range f.assets {
		if strings.EqualFold(f.codeOf(a.ProductID), code) {
			n++
		}
	}
	return n, nil
}

func (f *fakeAssetRepo) CountByProductCodeAndLocation(code, locationID string) (int64, error) {
	var n int64
	for _, a := range f.assets {
		if a.LocationID == locationID && strings.EqualFold(f.codeOf(a.ProductID), code) {
			n++
		}
	}
	return n, nil
}

func (f *fakeAssetRepo) ExistsByLocation(locationID string) (bool, error) {
	for _, a := range f.assets {
		if a.LocationID == locationID {
			return true, nil
		}
	}
	return false, nil
}

// fakeTxRunner simula la semántica transaccional: si el callback falla,
// restaura el estado previo del repositorio de activos.
type fakeTxRunner struct {
	repo *fakeAssetRepo
}

var _ assets.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(ctx context.Context, fn func(assetRepo repository.AssetRepository) error) error {
	snapshot := make([]*entity.Asset, len(f.repo.assets))
	copy(snapshot, f.repo.assets)
	if err := fn(f.repo); err != nil {
		f.repo.assets = snapshot
		return err
	}
	return nil
}
