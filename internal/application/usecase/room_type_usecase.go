package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// RoomTypeUseCase casos de uso CRUD para tipos de habitación.
type RoomTypeUseCase struct {
	repo repository.RoomTypeRepository
}

// NewRoomTypeUseCase construye el caso de uso.
func NewRoomTypeUseCase(repo repository.RoomTypeRepository) *RoomTypeUseCase {
	return &RoomTypeUseCase{repo: repo}
}

// Create crea un tipo de habitación.
func (uc *RoomTypeUseCase) Create(in dto.CreateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	now := time.Now()
	rt := &entity.RoomType{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Description:      in.Description,
		BasePrice:        in.BasePrice,
		Capacity:         in.Capacity,
		ExtraPersonPrice: in.ExtraPersonPrice,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Save(rt); err != nil {
		return nil, err
	}
	return toRoomTypeResponse(rt), nil
}

// List lista todos los tipos de habitación.
func (uc *RoomTypeUseCase) List() ([]dto.RoomTypeResponse, error) {
	list, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoomTypeResponse, 0, len(list))
	for _, rt := range list {
		out = append(out, *toRoomTypeResponse(rt))
	}
	return out, nil
}

// Update actualiza un tipo de habitación existente.
func (uc *RoomTypeUseCase) Update(id string, in dto.UpdateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	rt, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, domain.ErrRoomTypeNotFound
	}

	rt.Name = in.Name
	rt.Description = in.Description
	rt.BasePrice = in.BasePrice
	rt.Capacity = in.Capacity
	rt.ExtraPersonPrice = in.ExtraPersonPrice
	rt.IsActive = in.IsActive
	rt.UpdatedAt = time.Now()
	if err := uc.repo.Update(rt); err != nil {
		return nil, err
	}
	return toRoomTypeResponse(rt), nil
}

// Delete elimina un tipo de habitación.
func (uc *RoomTypeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toRoomTypeResponse(rt *entity.RoomType) *dto.RoomTypeResponse {
	if rt == nil {
		return nil
	}
	return &dto.RoomTypeResponse{
		ID:               rt.ID,
		Name:             rt.Name,
		Description:      rt.Description,
		BasePrice:        rt.BasePrice,
		Capacity:         rt.Capacity,
		ExtraPersonPrice: rt.ExtraPersonPrice,
		IsActive:         rt.IsActive,
		CreatedAt:        rt.CreatedAt,
		UpdatedAt:        rt.UpdatedAt,
	}
}
