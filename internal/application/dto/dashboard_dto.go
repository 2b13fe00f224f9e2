package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse resumen operativo del día para el panel.
type DashboardSummaryResponse struct {
	RoomsByStatus    map[string]int  `json:"roomsByStatus"`
	TodaySalesCount  int             `json:"todaySalesCount"`
	TodaySalesTotal  decimal.Decimal `json:"todaySalesTotal"`
	LowStockProducts int             `json:"lowStockProducts"`
}
