package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest / UpdateCategoryRequest categorías de producto.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// CategoryResponse categoría serializada.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateUnitRequest / UpdateUnitRequest unidades de medida.
type CreateUnitRequest struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type UpdateUnitRequest struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	IsActive     bool   `json:"isActive"`
}

// UnitResponse unidad serializada.
type UnitResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateProductRequest alta de producto. InitialStock > 0 genera un
// movimiento IN con razón STOCK_INICIAL en la misma unidad de trabajo.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Barcode       string          `json:"barcode"`
	CategoryID    string          `json:"categoryId"`
	UnitID        string          `json:"unitId"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	InitialStock  int             `json:"currentStock"`
}

// UpdateProductRequest actualización parcial de producto. El stock NO se
// actualiza por aquí: solo lo mueven el kardex y las ventas.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Barcode       *string          `json:"barcode"`
	CategoryID    *string          `json:"categoryId"`
	UnitID        *string          `json:"unitId"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	IsActive      *bool            `json:"isActive"`
}

// ProductResponse producto serializado.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Barcode       string          `json:"barcode,omitempty"`
	CategoryID    string          `json:"categoryId"`
	CategoryName  string          `json:"categoryName,omitempty"`
	UnitID        string          `json:"unitId"`
	UnitName      string          `json:"unitName,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	CurrentStock  int             `json:"currentStock"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// RegisterMovementRequest alta manual de movimiento de kardex.
type RegisterMovementRequest struct {
	ProductID string          `json:"productId"`
	Type      string          `json:"type"` // IN | OUT
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	Reason    string          `json:"reason"`
	Reference string          `json:"reference"`
}

// MovementResponse movimiento serializado.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Type        string          `json:"type"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Reason      string          `json:"reason"`
	Reference   string          `json:"reference,omitempty"`
	PerformedBy string          `json:"performedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SaleItemRequest línea de venta entrante.
type SaleItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateSaleRequest venta de mostrador.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"paymentMethod"`
}

// SaleItemResponse línea de venta serializada.
type SaleItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse venta serializada.
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	PaymentMethod string             `json:"paymentMethod"`
	PerformedBy   string             `json:"performedBy"`
	CreatedAt     time.Time          `json:"createdAt"`
}
