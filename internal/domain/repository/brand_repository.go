package repository

import "github.com/tu-usuario/sarpras-api/internal/domain/entity"

// BrandRepository puerto de persistencia para Brand.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	Update(brand *entity.Brand) error
	List(limit, offset int) ([]*entity.Brand, error)
	Delete(id string) error
}
