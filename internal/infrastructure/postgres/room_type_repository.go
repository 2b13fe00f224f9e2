package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

var _ repository.RoomTypeRepository = (*RoomTypeRepo)(nil)

// RoomTypeRepo implementación del puerto RoomTypeRepository sobre PostgreSQL.
type RoomTypeRepo struct {
	q Querier
}

// NewRoomTypeRepository construye el adaptador de persistencia para tipos de habitación.
func NewRoomTypeRepository(q Querier) *RoomTypeRepo {
	return &RoomTypeRepo{q: q}
}

const roomTypeColumns = `id, name, description, capacity, base_price, extra_person_price, is_active, created_at, updated_at`

// FindAll lista tipos de habitación ordenados por nombre.
func (r *RoomTypeRepo) FindAll() ([]*entity.RoomType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+roomTypeColumns+` FROM room_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer rows.Close()

	var types []*entity.RoomType
	for rows.Next() {
		var t entity.RoomType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Capacity, &t.BasePrice,
			&t.ExtraPersonPrice, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan room type: %w", err)
		}
		types = append(types, &t)
	}
	return types, rows.Err()
}

// FindByID obtiene un tipo de habitación por ID. Devuelve nil si no existe.
func (r *RoomTypeRepo) FindByID(id string) (*entity.RoomType, error) {
	var t entity.RoomType
	err := r.q.QueryRow(context.Background(),
		`SELECT `+roomTypeColumns+` FROM room_types WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.Capacity, &t.BasePrice,
		&t.ExtraPersonPrice, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room type: %w", err)
	}
	return &t, nil
}

// Save persiste un nuevo tipo de habitación.
func (r *RoomTypeRepo) Save(roomType *entity.RoomType) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO room_types (id, name, description, capacity, base_price, extra_person_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		roomType.ID, roomType.Name, roomType.Description, roomType.Capacity,
		roomType.BasePrice, roomType.ExtraPersonPrice, roomType.IsActive,
		roomType.CreatedAt, roomType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert room type: %w", err)
	}
	return nil
}

// Update persiste cambios del tipo de habitación.
func (r *RoomTypeRepo) Update(roomType *entity.RoomType) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE room_types SET name = $2, description = $3, capacity = $4, base_price = $5,
		       extra_person_price = $6, is_active = $7, updated_at = $8
		WHERE id = $1`,
		roomType.ID, roomType.Name, roomType.Description, roomType.Capacity,
		roomType.BasePrice, roomType.ExtraPersonPrice, roomType.IsActive, roomType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update room type: %w", err)
	}
	return nil
}

// Delete elimina un tipo de habitación.
func (r *RoomTypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room type: %w", err)
	}
	return nil
}
