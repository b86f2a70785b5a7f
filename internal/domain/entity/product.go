package entity

import "time"

// Unidades de medida permitidas para un producto del catálogo escolar.
const (
	UnitPcs   = "Pcs"
	UnitMeter = "Meter"
	UnitSusun = "Susun"
	UnitSet   = "Set"
	UnitBox   = "Box"
	UnitRim   = "Rim"
	UnitKg    = "Kg"
	UnitLusin = "Lusin"
)

// ValidUnit indica si la unidad de medida pertenece al catálogo permitido.
func ValidUnit(u string) bool {
	switch u {
	case UnitPcs, UnitMeter, UnitSusun, UnitSet, UnitBox, UnitRim, UnitKg, UnitLusin:
		return true
	}
	return false
}

// Product representa una entrada del catálogo de activos fijos.
// Code es único y siempre en mayúsculas; los seriales de los activos se derivan de él.
type Product struct {
	ID         string
	Code       string
	Name       string
	BrandID    string // opcional (vacío = sin marca)
	CategoryID string
	Unit       string // Pcs, Meter, Susun, Set, Box, Rim, Kg, Lusin
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
