package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas read-only para el panel.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas del panel.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountRoomsByStatus cuenta habitaciones agrupadas por estado.
func (r *DashboardRepo) CountRoomsByStatus(ctx context.Context) (map[entity.RoomStatus]int, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM rooms GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count rooms by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.RoomStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan room count: %w", err)
		}
		counts[entity.RoomStatus(status)] = count
	}
	return counts, rows.Err()
}

// SalesSummary cuenta y suma las ventas en el rango [from, to).
func (r *DashboardRepo) SalesSummary(ctx context.Context, from, to time.Time) (int, decimal.Decimal, error) {
	var count int
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales WHERE created_at >= $1 AND created_at < $2`, from, to,
	).Scan(&count, &total)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales summary: %w", err)
	}
	return count, total, nil
}

// CountLowStockProducts cuenta productos activos con stock en o bajo el umbral.
func (r *DashboardRepo) CountLowStockProducts(ctx context.Context, threshold int) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM products WHERE is_active AND current_stock <= $1`, threshold,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}
