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

var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo implementación del puerto RoomRepository sobre PostgreSQL.
type RoomRepo struct {
	q Querier
}

// NewRoomRepository construye el adaptador de persistencia para habitaciones.
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

const roomColumns = `id, code, floor_id, type_id, status, base_price, description, is_active, created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var rm entity.Room
	err := row.Scan(&rm.ID, &rm.Code, &rm.FloorID, &rm.TypeID, &rm.Status, &rm.BasePrice,
		&rm.Description, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &rm, nil
}

// FindAll lista todas las habitaciones ordenadas por código.
func (r *RoomRepo) FindAll() ([]*entity.Room, error) {
	return r.list(`SELECT `+roomColumns+` FROM rooms ORDER BY code`)
}

// FindByFloor lista las habitaciones de un piso.
func (r *RoomRepo) FindByFloor(floorID string) ([]*entity.Room, error) {
	return r.list(`SELECT `+roomColumns+` FROM rooms WHERE floor_id = $1 ORDER BY code`, floorID)
}

func (r *RoomRepo) list(query string, args ...any) ([]*entity.Room, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var rm entity.Room
		if err := rows.Scan(&rm.ID, &rm.Code, &rm.FloorID, &rm.TypeID, &rm.Status, &rm.BasePrice,
			&rm.Description, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, &rm)
	}
	return rooms, rows.Err()
}

// FindByID obtiene una habitación por ID. Devuelve nil si no existe.
func (r *RoomRepo) FindByID(id string) (*entity.Room, error) {
	return scanRoom(r.q.QueryRow(context.Background(),
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
}

// FindByCode obtiene una habitación por código dentro de un piso. Devuelve nil
// si no existe.
func (r *RoomRepo) FindByCode(code, floorID string) (*entity.Room, error) {
	return scanRoom(r.q.QueryRow(context.Background(),
		`SELECT `+roomColumns+` FROM rooms WHERE code = $1 AND floor_id = $2`, code, floorID))
}

// Save persiste una nueva habitación.
func (r *RoomRepo) Save(room *entity.Room) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO rooms (id, code, floor_id, type_id, status, base_price, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		room.ID, room.Code, room.FloorID, room.TypeID, string(room.Status), room.BasePrice,
		room.Description, room.IsActive, room.CreatedAt, room.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoomCodeExists
		}
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

// UpdateStatus fija el estado operativo de la habitación.
func (r *RoomRepo) UpdateStatus(id string, status entity.RoomStatus) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE rooms SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update room status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una habitación.
func (r *RoomRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
