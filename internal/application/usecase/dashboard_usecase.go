package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// DashboardUseCase resumen operativo del panel: ocupación de habitaciones,
// ventas del día y productos con stock bajo.
type DashboardUseCase struct {
	repo              repository.DashboardRepository
	lowStockThreshold int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, lowStockThreshold int) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, lowStockThreshold: lowStockThreshold}
}

// GetSummary lanza las tres consultas en paralelo y arma el resumen.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	type roomsResult struct {
		byStatus map[entity.RoomStatus]int
		err      error
	}
	type salesResult struct {
		count int
		total decimal.Decimal
		err   error
	}
	type lowStockResult struct {
		count int
		err   error
	}

	roomsCh := make(chan roomsResult, 1)
	salesCh := make(chan salesResult, 1)
	stockCh := make(chan lowStockResult, 1)

	go func() {
		byStatus, err := uc.repo.CountRoomsByStatus(ctx)
		roomsCh <- roomsResult{byStatus, err}
	}()
	go func() {
		count, total, err := uc.repo.SalesSummary(ctx, todayStart, todayEnd)
		salesCh <- salesResult{count, total, err}
	}()
	go func() {
		count, err := uc.repo.CountLowStockProducts(ctx, uc.lowStockThreshold)
		stockCh <- lowStockResult{count, err}
	}()

	rooms := <-roomsCh
	sales := <-salesCh
	stock := <-stockCh

	if rooms.err != nil {
		return nil, rooms.err
	}
	if sales.err != nil {
		return nil, sales.err
	}
	if stock.err != nil {
		return nil, stock.err
	}

	byStatus := make(map[string]int, len(rooms.byStatus))
	for status, count := range rooms.byStatus {
		byStatus[string(status)] = count
	}

	return &dto.DashboardSummaryResponse{
		RoomsByStatus:    byStatus,
		TodaySalesCount:  sales.count,
		TodaySalesTotal:  sales.total,
		LowStockProducts: stock.count,
	}, nil
}
