package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomType tipo de habitación; las habitaciones heredan BasePrice al crearse.
type RoomType struct {
	ID               string
	Name             string
	Description      string
	BasePrice        decimal.Decimal
	Capacity         int
	ExtraPersonPrice decimal.Decimal
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
