package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category categoría de productos de la tienda.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Unit unidad de medida de productos.
type Unit struct {
	ID           string
	Name         string
	Abbreviation string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product producto de la tienda. CurrentStock es un cache denormalizado: debe
// ser siempre igual a la suma con signo de los movimientos del kardex que lo
// referencian, y solo se actualiza con incrementos atómicos.
type Product struct {
	ID            string
	Name          string
	Description   string
	Barcode       string // opcional; único cuando está presente
	CategoryID    string
	CategoryName  string // solo para visualización (JOIN en listados)
	UnitID        string
	UnitName      string // solo para visualización
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	CurrentStock  int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
