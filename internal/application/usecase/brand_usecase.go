package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

// BrandUseCase CRUD del catálogo de marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una marca.
func (uc *BrandUseCase) Create(in dto.NameRequest) (*dto.BrandResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	brand := &entity.Brand{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(id string) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	return toBrandResponse(brand), nil
}

// Update renombra una marca.
func (uc *BrandUseCase) Update(id string, in dto.NameRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand.Name = in.Name
	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// List lista marcas con paginación.
func (uc *BrandUseCase) List(limit, offset int) ([]dto.BrandResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBrandResponse(b))
	}
	return items, nil
}

// Delete elimina una marca por ID.
func (uc *BrandUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	if b == nil {
		return nil
	}
	return &dto.BrandResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}
