package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de condición de un activo físico.
const (
	ConditionGood        = "baik"
	ConditionLightDamage = "rusak ringan"
	ConditionHeavyDamage = "rusak berat"
	ConditionRepair      = "perbaikan"
)

// ValidCondition indica si el estado de condición es uno de los permitidos.
func ValidCondition(c string) bool {
	switch c {
	case ConditionGood, ConditionLightDamage, ConditionHeavyDamage, ConditionRepair:
		return true
	}
	return false
}

// Asset representa una unidad física individual del inventario.
// SerialNumber es único a nivel global; ProductID y LocationID son obligatorios
// durante toda la vida del activo.
type Asset struct {
	ID             string
	SerialNumber   string
	ProductID      string
	LocationID     string
	Condition      string // baik (default), rusak ringan, rusak berat, perbaikan
	PurchaseDate   *time.Time
	EstimatedPrice *decimal.Decimal
	Attributes     Attributes // campos extra por producto (ej. largo en metros)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
