package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta y todas sus líneas. Se espera ser llamado dentro de
// una transacción junto con los movimientos de kardex que genera.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, total_amount, payment_method, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		sale.ID, sale.TotalAmount, sale.PaymentMethod, sale.PerformedBy, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i, item := range sale.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, line, product_id, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			sale.ID, i+1, item.ProductID, item.Quantity, item.UnitPrice, item.Total,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// List lista ventas con sus líneas, más recientes primero.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT s.id, s.total_amount, s.payment_method, s.performed_by, COALESCE(u.email, ''), s.created_at
		FROM sales s
		LEFT JOIN users u ON u.id = s.performed_by
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	index := make(map[string]*entity.Sale)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.TotalAmount, &s.PaymentMethod, &s.PerformedBy, &s.PerformedByEmail, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
		index[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.q.Query(ctx, `
		SELECT i.sale_id, i.product_id, p.name, i.quantity, i.unit_price, i.total
		FROM sale_items i
		JOIN products p ON p.id = i.product_id
		ORDER BY i.sale_id, i.line`)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var saleID string
		var item entity.SaleItem
		if err := itemRows.Scan(&saleID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		if s, ok := index[saleID]; ok {
			s.Items = append(s.Items, item)
		}
	}
	return sales, itemRows.Err()
}
