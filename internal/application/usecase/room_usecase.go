package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// RoomUseCase casos de uso para habitaciones.
type RoomUseCase struct {
	roomRepo     repository.RoomRepository
	roomTypeRepo repository.RoomTypeRepository
	floorRepo    repository.FloorRepository
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(roomRepo repository.RoomRepository, roomTypeRepo repository.RoomTypeRepository, floorRepo repository.FloorRepository) *RoomUseCase {
	return &RoomUseCase{roomRepo: roomRepo, roomTypeRepo: roomTypeRepo, floorRepo: floorRepo}
}

// Create crea una habitación. El código es único dentro del piso y el precio
// base se hereda del tipo.
func (uc *RoomUseCase) Create(in dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	floor, err := uc.floorRepo.FindByID(in.FloorID)
	if err != nil {
		return nil, err
	}
	if floor == nil {
		return nil, domain.ErrFloorNotFound
	}

	existing, err := uc.roomRepo.FindByCode(in.Code, in.FloorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrRoomCodeExists
	}

	roomType, err := uc.roomTypeRepo.FindByID(in.TypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, domain.ErrInvalidRoomType
	}

	now := time.Now()
	room := &entity.Room{
		ID:          uuid.New().String(),
		Code:        in.Code,
		FloorID:     in.FloorID,
		TypeID:      in.TypeID,
		Status:      entity.RoomAvailable,
		BasePrice:   roomType.BasePrice,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roomRepo.Save(room); err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// List lista habitaciones, opcionalmente filtradas por piso.
func (uc *RoomUseCase) List(floorID string) ([]dto.RoomResponse, error) {
	var rooms []*entity.Room
	var err error
	if floorID != "" {
		rooms, err = uc.roomRepo.FindByFloor(floorID)
	} else {
		rooms, err = uc.roomRepo.FindAll()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, *toRoomResponse(r))
	}
	return out, nil
}

// UpdateStatus fija el estado de la habitación. Cualquier estado del enum es
// aceptado desde cualquier otro; no existe tabla de transiciones.
func (uc *RoomUseCase) UpdateStatus(id string, status entity.RoomStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidInput
	}
	room, err := uc.roomRepo.FindByID(id)
	if err != nil {
		return err
	}
	if room == nil {
		return domain.ErrNotFound
	}
	return uc.roomRepo.UpdateStatus(id, status)
}

// Delete elimina una habitación.
func (uc *RoomUseCase) Delete(id string) error {
	return uc.roomRepo.Delete(id)
}

func toRoomResponse(r *entity.Room) *dto.RoomResponse {
	if r == nil {
		return nil
	}
	return &dto.RoomResponse{
		ID:          r.ID,
		Code:        r.Code,
		FloorID:     r.FloorID,
		TypeID:      r.TypeID,
		Status:      string(r.Status),
		BasePrice:   r.BasePrice,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
