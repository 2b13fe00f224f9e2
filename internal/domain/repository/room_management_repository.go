package repository

import "github.com/jhoicas/hostal-api/internal/domain/entity"

// FloorRepository puerto de persistencia para pisos.
type FloorRepository interface {
	FindAll() ([]*entity.Floor, error)
	FindByID(id string) (*entity.Floor, error)
	FindByNumber(number int) (*entity.Floor, error)
	HasRooms(id string) (bool, error)
	Save(floor *entity.Floor) error
	Update(floor *entity.Floor) error
	Delete(id string) error
}

// RoomTypeRepository puerto de persistencia para tipos de habitación.
type RoomTypeRepository interface {
	FindAll() ([]*entity.RoomType, error)
	FindByID(id string) (*entity.RoomType, error)
	Save(roomType *entity.RoomType) error
	Update(roomType *entity.RoomType) error
	Delete(id string) error
}

// RoomRepository puerto de persistencia para habitaciones.
type RoomRepository interface {
	FindAll() ([]*entity.Room, error)
	FindByFloor(floorID string) ([]*entity.Room, error)
	FindByID(id string) (*entity.Room, error)
	FindByCode(code, floorID string) (*entity.Room, error)
	Save(room *entity.Room) error
	UpdateStatus(id string, status entity.RoomStatus) error
	Delete(id string) error
}
