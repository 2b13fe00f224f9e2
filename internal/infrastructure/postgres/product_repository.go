package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El barcode vacío se guarda como NULL para
// que el índice único solo aplique cuando existe.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, barcode, category_id, unit_id, purchase_price, sale_price, current_stock, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Barcode,
		product.CategoryID, product.UnitID, product.PurchasePrice, product.SalePrice,
		product.CurrentStock, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBarcodeExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// List lista todos los productos con nombres de categoría y unidad resueltos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, COALESCE(p.barcode, ''), p.category_id, c.name,
		       p.unit_id, u.name, p.purchase_price, p.sale_price, p.current_stock, p.is_active,
		       p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN units u ON u.id = p.unit_id
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Barcode, &p.CategoryID, &p.CategoryName,
			&p.UnitID, &p.UnitName, &p.PurchasePrice, &p.SalePrice, &p.CurrentStock, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// FindByID obtiene un producto por ID.
func (r *ProductRepo) FindByID(id string) (*entity.Product, error) {
	return r.findOne(`WHERE p.id = $1`, id)
}

// FindByBarcode obtiene un producto por código de barras.
func (r *ProductRepo) FindByBarcode(barcode string) (*entity.Product, error) {
	return r.findOne(`WHERE p.barcode = $1`, barcode)
}

func (r *ProductRepo) findOne(where string, arg any) (*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, COALESCE(p.barcode, ''), p.category_id, c.name,
		       p.unit_id, u.name, p.purchase_price, p.sale_price, p.current_stock, p.is_active,
		       p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN units u ON u.id = p.unit_id ` + where
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Description, &p.Barcode, &p.CategoryID, &p.CategoryName,
		&p.UnitID, &p.UnitName, &p.PurchasePrice, &p.SalePrice, &p.CurrentStock, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update persiste los campos editables del producto. El stock no se toca por
// aquí: solo ApplyStockDelta lo modifica.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, barcode = NULLIF($4, ''), category_id = $5,
		    unit_id = $6, purchase_price = $7, sale_price = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Barcode, product.CategoryID,
		product.UnitID, product.PurchasePrice, product.SalePrice, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBarcodeExists
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// GetForUpdate carga el producto bloqueando su fila. Solo tiene sentido dentro
// de una transacción; devuelve nil si no existe.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, COALESCE(barcode, ''), category_id, unit_id,
		       purchase_price, sale_price, current_stock, is_active, created_at, updated_at
		FROM products WHERE id = $1 FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Barcode, &p.CategoryID, &p.UnitID,
		&p.PurchasePrice, &p.SalePrice, &p.CurrentStock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock product: %w", err)
	}
	return &p, nil
}

// ApplyStockDelta incremento atómico del stock cacheado.
func (r *ProductRepo) ApplyStockDelta(id string, delta int) error {
	query := `UPDATE products SET current_stock = current_stock + $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
