package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en mostrador.
const (
	PaymentCash     = "CASH"
	PaymentTransfer = "TRANSFER"
	PaymentCard     = "CARD"
)

// ValidPaymentMethod indica si el método pertenece al conjunto aceptado.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentTransfer || m == PaymentCard
}

// SaleItem línea de venta con total calculado.
type SaleItem struct {
	ProductID   string
	ProductName string // solo para visualización
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// Sale venta de mostrador. Crear una venta valida stock de todas las líneas,
// persiste la venta, y por cada línea registra un movimiento OUT en el kardex
// y descuenta el cache de stock, todo como una sola unidad de trabajo.
type Sale struct {
	ID               string
	Items            []SaleItem
	TotalAmount      decimal.Decimal
	PaymentMethod    string
	PerformedBy      string
	PerformedByEmail string // solo para visualización
	CreatedAt        time.Time
}
