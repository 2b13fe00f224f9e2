package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del kardex. Exactamente dos valores.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Razones estándar de movimiento.
const (
	ReasonInitialStock = "STOCK_INICIAL"
	ReasonCounterSale  = "VENTA_MOSTRADOR"
)

// InventoryMovement asiento inmutable del kardex. Nunca se actualiza ni se
// borra después de creado; el stock cacheado del producto se deriva de la
// suma con signo de estos registros.
type InventoryMovement struct {
	ID               string
	ProductID        string
	ProductName      string // solo para visualización
	Type             string // IN | OUT
	Quantity         int    // siempre positivo; el signo lo da Type
	UnitCost         decimal.Decimal
	Reason           string
	Reference        string // id de venta u otro documento, opcional
	PerformedBy      string // id del usuario
	PerformedByEmail string // solo para visualización
	CreatedAt        time.Time
}

// SignedQuantity delta que el movimiento aplica al stock cacheado.
func (m *InventoryMovement) SignedQuantity() int {
	if m.Type == MovementTypeIN {
		return m.Quantity
	}
	return -m.Quantity
}
