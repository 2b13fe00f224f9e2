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

var _ repository.FloorRepository = (*FloorRepo)(nil)

// FloorRepo implementación del puerto FloorRepository sobre PostgreSQL.
type FloorRepo struct {
	q Querier
}

// NewFloorRepository construye el adaptador de persistencia para pisos.
func NewFloorRepository(q Querier) *FloorRepo {
	return &FloorRepo{q: q}
}

const floorColumns = `id, number, name, description, is_active, created_at, updated_at`

func scanFloor(row pgx.Row) (*entity.Floor, error) {
	var f entity.Floor
	err := row.Scan(&f.ID, &f.Number, &f.Name, &f.Description, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get floor: %w", err)
	}
	return &f, nil
}

// FindAll lista pisos ordenados por número.
func (r *FloorRepo) FindAll() ([]*entity.Floor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+floorColumns+` FROM floors ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}
	defer rows.Close()

	var floors []*entity.Floor
	for rows.Next() {
		var f entity.Floor
		if err := rows.Scan(&f.ID, &f.Number, &f.Name, &f.Description, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan floor: %w", err)
		}
		floors = append(floors, &f)
	}
	return floors, rows.Err()
}

// FindByID obtiene un piso por ID. Devuelve nil si no existe.
func (r *FloorRepo) FindByID(id string) (*entity.Floor, error) {
	return scanFloor(r.q.QueryRow(context.Background(),
		`SELECT `+floorColumns+` FROM floors WHERE id = $1`, id))
}

// FindByNumber obtiene un piso por número. Devuelve nil si no existe.
func (r *FloorRepo) FindByNumber(number int) (*entity.Floor, error) {
	return scanFloor(r.q.QueryRow(context.Background(),
		`SELECT `+floorColumns+` FROM floors WHERE number = $1`, number))
}

// HasRooms indica si el piso tiene habitaciones asociadas.
func (r *FloorRepo) HasRooms(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM rooms WHERE floor_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check floor rooms: %w", err)
	}
	return exists, nil
}

// Save persiste un nuevo piso.
func (r *FloorRepo) Save(floor *entity.Floor) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO floors (id, number, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		floor.ID, floor.Number, floor.Name, floor.Description, floor.IsActive, floor.CreatedAt, floor.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFloorNumberExists
		}
		return fmt.Errorf("insert floor: %w", err)
	}
	return nil
}

// Update persiste cambios del piso.
func (r *FloorRepo) Update(floor *entity.Floor) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE floors SET number = $2, name = $3, description = $4, is_active = $5, updated_at = $6
		WHERE id = $1`,
		floor.ID, floor.Number, floor.Name, floor.Description, floor.IsActive, floor.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFloorNumberExists
		}
		return fmt.Errorf("update floor: %w", err)
	}
	return nil
}

// Delete elimina un piso. El caso de uso valida antes que no tenga habitaciones.
func (r *FloorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM floors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete floor: %w", err)
	}
	return nil
}
