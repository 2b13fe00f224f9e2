package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/application/usecase"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
)

// fakeFloorRepo repositorio de pisos en memoria.
type fakeFloorRepo struct {
	floors map[string]*entity.Floor
	// roomsByFloor simula las habitaciones asociadas para HasRooms.
	roomsByFloor map[string]int
}

func newFakeFloorRepo() *fakeFloorRepo {
	return &fakeFloorRepo{
		floors:       make(map[string]*entity.Floor),
		roomsByFloor: make(map[string]int),
	}
}

func (f *fakeFloorRepo) FindAll() ([]*entity.Floor, error) {
	var out []*entity.Floor
	for _, fl := range f.floors {
		out = append(out, fl)
	}
	return out, nil
}

func (f *fakeFloorRepo) FindByID(id string) (*entity.Floor, error) {
	return f.floors[id], nil
}

func (f *fakeFloorRepo) FindByNumber(number int) (*entity.Floor, error) {
	for _, fl := range f.floors {
		if fl.Number == number {
			return fl, nil
		}
	}
	return nil, nil
}

func (f *fakeFloorRepo) HasRooms(id string) (bool, error) {
	return f.roomsByFloor[id] > 0, nil
}

func (f *fakeFloorRepo) Save(floor *entity.Floor) error {
	f.floors[floor.ID] = floor
	return nil
}

func (f *fakeFloorRepo) Update(floor *entity.Floor) error {
	f.floors[floor.ID] = floor
	return nil
}

func (f *fakeFloorRepo) Delete(id string) error {
	delete(f.floors, id)
	return nil
}

// fakeRoomTypeRepo repositorio de tipos en memoria.
type fakeRoomTypeRepo struct {
	types map[string]*entity.RoomType
}

func newFakeRoomTypeRepo() *fakeRoomTypeRepo {
	return &fakeRoomTypeRepo{types: make(map[string]*entity.RoomType)}
}

func (f *fakeRoomTypeRepo) FindAll() ([]*entity.RoomType, error) {
	var out []*entity.RoomType
	for _, t := range f.types {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRoomTypeRepo) FindByID(id string) (*entity.RoomType, error) {
	return f.types[id], nil
}

func (f *fakeRoomTypeRepo) Save(t *entity.RoomType) error {
	f.types[t.ID] = t
	return nil
}

func (f *fakeRoomTypeRepo) Update(t *entity.RoomType) error {
	f.types[t.ID] = t
	return nil
}

func (f *fakeRoomTypeRepo) Delete(id string) error {
	delete(f.types, id)
	return nil
}

// fakeRoomRepo repositorio de habitaciones en memoria.
type fakeRoomRepo struct {
	rooms map[string]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*entity.Room)}
}

func (f *fakeRoomRepo) FindAll() ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) FindByFloor(floorID string) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.rooms {
		if r.FloorID == floorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) FindByID(id string) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindByCode(code, floorID string) (*entity.Room, error) {
	for _, r := range f.rooms {
		if r.Code == code && r.FloorID == floorID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) Save(room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) UpdateStatus(id string, status entity.RoomStatus) error {
	r, ok := f.rooms[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeRoomRepo) Delete(id string) error {
	delete(f.rooms, id)
	return nil
}

func seedFloor(repo *fakeFloorRepo, id string, number int) *entity.Floor {
	fl := &entity.Floor{ID: id, Number: number, Name: "Piso", IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	repo.floors[id] = fl
	return fl
}

func seedRoomType(repo *fakeRoomTypeRepo, id, name string, basePrice string) *entity.RoomType {
	t := &entity.RoomType{
		ID:        id,
		Name:      name,
		BasePrice: decimal.RequireFromString(basePrice),
		Capacity:  2,
		IsActive:  true,
	}
	repo.types[id] = t
	return t
}

// ─── Pisos ───

func TestFloorCreate_NumeroDuplicado_ErrFloorNumberExists(t *testing.T) {
	repo := newFakeFloorRepo()
	seedFloor(repo, "f1", 1)
	uc := usecase.NewFloorUseCase(repo)

	_, err := uc.Create(dto.CreateFloorRequest{Number: 1, Name: "Primer piso"})
	assert.ErrorIs(t, err, domain.ErrFloorNumberExists)
}

func TestFloorCreate_NumeroLibre_Crea(t *testing.T) {
	repo := newFakeFloorRepo()
	uc := usecase.NewFloorUseCase(repo)

	out, err := uc.Create(dto.CreateFloorRequest{Number: 2, Name: "Segundo piso"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Number)
	assert.True(t, out.IsActive)
}

func TestFloorUpdate_Inexistente_ErrFloorNotFound(t *testing.T) {
	uc := usecase.NewFloorUseCase(newFakeFloorRepo())

	_, err := uc.Update("fantasma", dto.UpdateFloorRequest{Number: 1, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrFloorNotFound)
}

func TestFloorDelete_ConHabitaciones_ErrFloorHasRooms(t *testing.T) {
	repo := newFakeFloorRepo()
	seedFloor(repo, "f1", 1)
	repo.roomsByFloor["f1"] = 3
	uc := usecase.NewFloorUseCase(repo)

	err := uc.Delete("f1")
	assert.ErrorIs(t, err, domain.ErrFloorHasRooms)
	assert.NotNil(t, repo.floors["f1"], "el piso sigue existiendo")
}

func TestFloorDelete_SinHabitaciones_Elimina(t *testing.T) {
	repo := newFakeFloorRepo()
	seedFloor(repo, "f1", 1)
	uc := usecase.NewFloorUseCase(repo)

	require.NoError(t, uc.Delete("f1"))
	assert.Nil(t, repo.floors["f1"])
}

// ─── Habitaciones ───

func newRoomUC(roomRepo *fakeRoomRepo, typeRepo *fakeRoomTypeRepo, floorRepo *fakeFloorRepo) *usecase.RoomUseCase {
	return usecase.NewRoomUseCase(roomRepo, typeRepo, floorRepo)
}

func TestRoomCreate_HeredaPrecioDelTipo(t *testing.T) {
	floorRepo := newFakeFloorRepo()
	seedFloor(floorRepo, "f1", 1)
	typeRepo := newFakeRoomTypeRepo()
	seedRoomType(typeRepo, "t1", "Matrimonial", "80.00")
	roomRepo := newFakeRoomRepo()
	uc := newRoomUC(roomRepo, typeRepo, floorRepo)

	out, err := uc.Create(dto.CreateRoomRequest{Code: "101", FloorID: "f1", TypeID: "t1"})
	require.NoError(t, err)
	assert.True(t, out.BasePrice.Equal(decimal.RequireFromString("80.00")),
		"la habitación hereda el precio base del tipo")
	assert.Equal(t, string(entity.RoomAvailable), out.Status, "las habitaciones nacen AVAILABLE")
}

func TestRoomCreate_CodigoDuplicadoEnPiso_ErrRoomCodeExists(t *testing.T) {
	floorRepo := newFakeFloorRepo()
	seedFloor(floorRepo, "f1", 1)
	typeRepo := newFakeRoomTypeRepo()
	seedRoomType(typeRepo, "t1", "Matrimonial", "80.00")
	roomRepo := newFakeRoomRepo()
	uc := newRoomUC(roomRepo, typeRepo, floorRepo)

	_, err := uc.Create(dto.CreateRoomRequest{Code: "101", FloorID: "f1", TypeID: "t1"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateRoomRequest{Code: "101", FloorID: "f1", TypeID: "t1"})
	assert.ErrorIs(t, err, domain.ErrRoomCodeExists)
}

// El mismo código en OTRO piso es válido: la unicidad es por piso.
func TestRoomCreate_MismoCodigoOtroPiso_Permite(t *testing.T) {
	floorRepo := newFakeFloorRepo()
	seedFloor(floorRepo, "f1", 1)
	seedFloor(floorRepo, "f2", 2)
	typeRepo := newFakeRoomTypeRepo()
	seedRoomType(typeRepo, "t1", "Matrimonial", "80.00")
	roomRepo := newFakeRoomRepo()
	uc := newRoomUC(roomRepo, typeRepo, floorRepo)

	_, err := uc.Create(dto.CreateRoomRequest{Code: "101", FloorID: "f1", TypeID: "t1"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateRoomRequest{Code: "101", FloorID: "f2", TypeID: "t1"})
	assert.NoError(t, err)
}

func TestRoomCreate_TipoInexistente_ErrInvalidRoomType(t *testing.T) {
	floorRepo := newFakeFloorRepo()
	seedFloor(floorRepo, "f1", 1)
	uc := newRoomUC(newFakeRoomRepo(), newFakeRoomTypeRepo(), floorRepo)

	_, err := uc.Create(dto.CreateRoomRequest{Code: "101", FloorID: "f1", TypeID: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrInvalidRoomType)
}

func TestRoomCreate_PisoInexistente_ErrFloorNotFound(t *testing.T) {
	typeRepo := newFakeRoomTypeRepo()
	seedRoomType(typeRepo, "t1", "Matrimonial", "80.00")
	uc := newRoomUC(newFakeRoomRepo(), typeRepo, newFakeFloorRepo())

	_, err := uc.Create(dto.CreateRoomRequest{Code: "101", FloorID: "fantasma", TypeID: "t1"})
	assert.ErrorIs(t, err, domain.ErrFloorNotFound)
}

func TestRoomUpdateStatus_EstadoInvalido_ErrInvalidInput(t *testing.T) {
	floorRepo := newFakeFloorRepo()
	seedFloor(floorRepo, "f1", 1)
	typeRepo := newFakeRoomTypeRepo()
	seedRoomType(typeRepo, "t1", "Matrimonial", "80.00")
	roomRepo := newFakeRoomRepo()
	uc := newRoomUC(roomRepo, typeRepo, floorRepo)

	out, err := uc.Create(dto.CreateRoomRequest{Code: "101", FloorID: "f1", TypeID: "t1"})
	require.NoError(t, err)

	err = uc.UpdateStatus(out.ID, entity.RoomStatus("VOLANDO"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// No hay tabla de transiciones: cualquier estado del enum puede fijarse desde
// cualquier otro.
func TestRoomUpdateStatus_CualquierTransicionValida(t *testing.T) {
	floorRepo := newFakeFloorRepo()
	seedFloor(floorRepo, "f1", 1)
	typeRepo := newFakeRoomTypeRepo()
	seedRoomType(typeRepo, "t1", "Matrimonial", "80.00")
	roomRepo := newFakeRoomRepo()
	uc := newRoomUC(roomRepo, typeRepo, floorRepo)

	out, err := uc.Create(dto.CreateRoomRequest{Code: "101", FloorID: "f1", TypeID: "t1"})
	require.NoError(t, err)

	for _, status := range []entity.RoomStatus{
		entity.RoomOccupied, entity.RoomCleaning, entity.RoomMaintenance,
		entity.RoomReserved, entity.RoomAvailable,
	} {
		require.NoError(t, uc.UpdateStatus(out.ID, status))
		room, _ := roomRepo.FindByID(out.ID)
		assert.Equal(t, status, room.Status)
	}
}

func TestRoomUpdateStatus_Inexistente_ErrNotFound(t *testing.T) {
	uc := newRoomUC(newFakeRoomRepo(), newFakeRoomTypeRepo(), newFakeFloorRepo())

	err := uc.UpdateStatus("fantasma", entity.RoomAvailable)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
