package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomStatus estado operativo de una habitación.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomReserved    RoomStatus = "RESERVED"
	RoomCleaning    RoomStatus = "CLEANING"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// Valid indica si el estado pertenece al enum.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomReserved, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

// Room habitación: pertenece a un Floor y a un RoomType; Code es único dentro
// del piso. No hay tabla de transiciones de estado: cualquier estado puede
// fijarse desde el endpoint de actualización.
type Room struct {
	ID          string
	Code        string
	FloorID     string
	TypeID      string
	Status      RoomStatus
	BasePrice   decimal.Decimal
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
