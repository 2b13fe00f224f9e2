package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del kardex sobre PostgreSQL. Solo INSERT y
// SELECT: los asientos son inmutables.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia del kardex. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un asiento del kardex.
func (r *MovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, product_id, type, quantity, unit_cost, reason, reference, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.UnitCost, movement.Reason, movement.Reference, movement.PerformedBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List lista asientos con nombre de producto y email del operador, más
// recientes primero. Los filtros vacíos no aplican.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT m.id, m.product_id, p.name, m.type, m.quantity, m.unit_cost, m.reason,
		       m.reference, m.performed_by, COALESCE(u.email, ''), m.created_at
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.performed_by
		WHERE ($1 = '' OR m.product_id = $1)
		  AND ($2 = '' OR m.type = $2)
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, filter.ProductID, filter.Type)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity, &m.UnitCost, &m.Reason,
			&m.Reference, &m.PerformedBy, &m.PerformedByEmail, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}
