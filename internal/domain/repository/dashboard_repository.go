package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hostal-api/internal/domain/entity"
)

// DashboardRepository consultas read-only para el resumen del panel.
type DashboardRepository interface {
	CountRoomsByStatus(ctx context.Context) (map[entity.RoomStatus]int, error)
	SalesSummary(ctx context.Context, from, to time.Time) (count int, total decimal.Decimal, err error)
	CountLowStockProducts(ctx context.Context, threshold int) (int, error)
}
