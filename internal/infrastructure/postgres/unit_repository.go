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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de persistencia para unidades de medida.
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una nueva unidad.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO units (id, name, abbreviation, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		unit.ID, unit.Name, unit.Abbreviation, unit.IsActive, unit.CreatedAt, unit.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// List lista unidades ordenadas por nombre.
func (r *UnitRepo) List() ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, abbreviation, is_active, created_at, updated_at FROM units ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, &u)
	}
	return units, rows.Err()
}

// FindByID obtiene una unidad por ID. Devuelve nil si no existe.
func (r *UnitRepo) FindByID(id string) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, abbreviation, is_active, created_at, updated_at FROM units WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Abbreviation, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// Update persiste cambios de la unidad.
func (r *UnitRepo) Update(unit *entity.Unit) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE units SET name = $2, abbreviation = $3, is_active = $4, updated_at = $5
		WHERE id = $1`,
		unit.ID, unit.Name, unit.Abbreviation, unit.IsActive, unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// Delete elimina una unidad.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}
