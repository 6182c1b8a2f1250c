package response

import (
	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase"
)

type DashboardResponse struct {
	TotalCount     int             `json:"totalCount"`
	PendingCount   int             `json:"pendingCount"`
	CompletedCount int             `json:"completedCount"`
	TotalRevenue   entities.Money  `json:"totalRevenue"`
	StaleBlocked   []OrderResponse `json:"staleBlocked"`
	RecentOrders   []OrderResponse `json:"recentOrders"`
}

func FromStats(stats usecase.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalCount:     stats.TotalCount,
		PendingCount:   stats.PendingCount,
		CompletedCount: stats.CompletedCount,
		TotalRevenue:   stats.TotalRevenue,
		StaleBlocked:   FromOrders(stats.StaleBlocked),
		RecentOrders:   FromOrders(stats.RecentOrders),
	}
}
