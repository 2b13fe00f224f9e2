package repository

import "github.com/jhoicas/hostal-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías de producto.
type CategoryRepository interface {
	Create(category *entity.Category) error
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	FindByID(id string) (*entity.Category, error)
}

// UnitRepository puerto de persistencia para unidades de medida.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	List() ([]*entity.Unit, error)
	Update(unit *entity.Unit) error
	Delete(id string) error
	FindByID(id string) (*entity.Unit, error)
}

// ProductRepository puerto de persistencia para productos. Las
// implementaciones deben poder atarse a un pool o a una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	List() ([]*entity.Product, error)
	FindByID(id string) (*entity.Product, error)
	FindByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error

	// GetForUpdate carga el producto bloqueando su fila (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción. Devuelve nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)

	// ApplyStockDelta aplica un incremento atómico al stock cacheado
	// (current_stock = current_stock + delta).
	ApplyStockDelta(id string, delta int) error
}

// MovementFilter filtros del listado de kardex.
type MovementFilter struct {
	ProductID string
	Type      string
}

// MovementRepository puerto del kardex: solo inserción y lectura, los
// movimientos son inmutables.
type MovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	List(filter MovementFilter) ([]*entity.InventoryMovement, error)
}

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	// Create inserta la venta y sus líneas.
	Create(sale *entity.Sale) error
	List() ([]*entity.Sale, error)
}
