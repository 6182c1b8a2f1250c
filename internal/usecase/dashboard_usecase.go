package usecase

import (
	"context"
	"time"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

// StaleBlockedAfter is how long an order may sit in AGUARDANDO PEÇAS
// before the dashboard flags it for operator attention. The flag is a
// monitoring signal only; it never moves the order's status.
const StaleBlockedAfter = 3 * 24 * time.Hour

// RecentOrdersLimit caps the dashboard's recent-orders list.
const RecentOrdersLimit = 5

// DashboardStats is derived from the full order set; nothing here is
// persisted.
type DashboardStats struct {
	TotalCount     int
	PendingCount   int
	CompletedCount int
	TotalRevenue   entities.Money
	StaleBlocked   []entities.ServiceOrder
	RecentOrders   []entities.ServiceOrder
}

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	orders interfaces.IServiceOrderRepository
	now    func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders interfaces.IServiceOrderRepository) *DashboardUseCase {
	return &DashboardUseCase{
		orders: orders,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	orders, err := u.orders.GetAll(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	return ComputeStats(orders, u.now()), nil
}

// ComputeStats is the pure aggregation over an order collection.
//
// Revenue counts only concluded orders. Staleness compares against
// updatedAt, falling back to createdAt when no update was ever stamped.
// Recent orders rely on insertion order being the collection's natural
// order (order numbers are monotonic with insertion).
func ComputeStats(orders []entities.ServiceOrder, now time.Time) DashboardStats {
	stats := DashboardStats{TotalCount: len(orders)}
	staleCutoff := now.Add(-StaleBlockedAfter)

	for _, os := range orders {
		switch os.Status {
		case entities.OrderStatusOpen, entities.OrderStatusInProgress:
			stats.PendingCount++
		case entities.OrderStatusCompleted:
			stats.CompletedCount++
			stats.TotalRevenue += os.TotalAmount
		case entities.OrderStatusPendingParts:
			ref := os.UpdatedAt
			if ref.IsZero() {
				ref = os.CreatedAt
			}
			if ref.Before(staleCutoff) {
				stats.StaleBlocked = append(stats.StaleBlocked, os)
			}
		}
	}

	n := len(orders)
	limit := RecentOrdersLimit
	if n < limit {
		limit = n
	}
	for i := 0; i < limit; i++ {
		stats.RecentOrders = append(stats.RecentOrders, orders[n-1-i])
	}

	return stats
}
