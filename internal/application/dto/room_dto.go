package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFloorRequest alta de piso.
type CreateFloorRequest struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateFloorRequest actualización de piso.
type UpdateFloorRequest struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// FloorResponse piso serializado.
type FloorResponse struct {
	ID          string    `json:"id"`
	Number      int       `json:"number"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateRoomTypeRequest alta de tipo de habitación.
type CreateRoomTypeRequest struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	BasePrice        decimal.Decimal `json:"basePrice"`
	Capacity         int             `json:"capacity"`
	ExtraPersonPrice decimal.Decimal `json:"extraPersonPrice"`
}

// UpdateRoomTypeRequest actualización de tipo de habitación.
type UpdateRoomTypeRequest struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	BasePrice        decimal.Decimal `json:"basePrice"`
	Capacity         int             `json:"capacity"`
	ExtraPersonPrice decimal.Decimal `json:"extraPersonPrice"`
	IsActive         bool            `json:"isActive"`
}

// RoomTypeResponse tipo de habitación serializado.
type RoomTypeResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	BasePrice        decimal.Decimal `json:"basePrice"`
	Capacity         int             `json:"capacity"`
	ExtraPersonPrice decimal.Decimal `json:"extraPersonPrice"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// CreateRoomRequest alta de habitación.
type CreateRoomRequest struct {
	Code        string `json:"code"`
	FloorID     string `json:"floorId"`
	TypeID      string `json:"typeId"`
	Description string `json:"description"`
}

// UpdateRoomStatusRequest cambio de estado de habitación.
type UpdateRoomStatusRequest struct {
	Status string `json:"status"`
}

// RoomResponse habitación serializada.
type RoomResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	FloorID     string          `json:"floorId"`
	TypeID      string          `json:"typeId"`
	Status      string          `json:"status"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
