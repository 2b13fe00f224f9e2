package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// FloorUseCase casos de uso CRUD para pisos.
type FloorUseCase struct {
	repo repository.FloorRepository
}

// NewFloorUseCase construye el caso de uso.
func NewFloorUseCase(repo repository.FloorRepository) *FloorUseCase {
	return &FloorUseCase{repo: repo}
}

// Create crea un piso. El número de piso es único en todo el hotel.
func (uc *FloorUseCase) Create(in dto.CreateFloorRequest) (*dto.FloorResponse, error) {
	existing, err := uc.repo.FindByNumber(in.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrFloorNumberExists
	}

	now := time.Now()
	floor := &entity.Floor{
		ID:          uuid.New().String(),
		Number:      in.Number,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Save(floor); err != nil {
		return nil, err
	}
	return toFloorResponse(floor), nil
}

// List lista todos los pisos.
func (uc *FloorUseCase) List() ([]dto.FloorResponse, error) {
	floors, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FloorResponse, 0, len(floors))
	for _, f := range floors {
		out = append(out, *toFloorResponse(f))
	}
	return out, nil
}

// Update actualiza un piso existente conservando su fecha de creación.
func (uc *FloorUseCase) Update(id string, in dto.UpdateFloorRequest) (*dto.FloorResponse, error) {
	floor, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if floor == nil {
		return nil, domain.ErrFloorNotFound
	}

	floor.Number = in.Number
	floor.Name = in.Name
	floor.Description = in.Description
	floor.IsActive = in.IsActive
	floor.UpdatedAt = time.Now()
	if err := uc.repo.Update(floor); err != nil {
		return nil, err
	}
	return toFloorResponse(floor), nil
}

// Delete elimina un piso solo si no tiene habitaciones asociadas.
func (uc *FloorUseCase) Delete(id string) error {
	hasRooms, err := uc.repo.HasRooms(id)
	if err != nil {
		return err
	}
	if hasRooms {
		return domain.ErrFloorHasRooms
	}
	return uc.repo.Delete(id)
}

func toFloorResponse(f *entity.Floor) *dto.FloorResponse {
	if f == nil {
		return nil
	}
	return &dto.FloorResponse{
		ID:          f.ID,
		Number:      f.Number,
		Name:        f.Name,
		Description: f.Description,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
