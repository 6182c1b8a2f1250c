package repository

import (
	"context"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

// firstOrderNumber is where the human-facing OS sequence starts.
const firstOrderNumber = 1001

// ServiceOrderRepository persists the order collection as one blob.
//
// Upsert on a new id assigns the order number right here, and nowhere
// else: max(existing)+1, or 1001 on an empty collection. Re-saving an
// existing id replaces the record in place and never touches its
// number. Orders are never deleted.
type ServiceOrderRepository struct {
	store BlobStore
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func NewServiceOrderRepository(store BlobStore) *ServiceOrderRepository {
	return &ServiceOrderRepository{store: store}
}

func (r *ServiceOrderRepository) GetAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders, _, err := readCollection[entities.ServiceOrder](ctx, r.store, CollectionOrders)
	return orders, err
}

func (r *ServiceOrderRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	for _, os := range orders {
		if os.ID == id {
			return os, nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *ServiceOrderRepository) Upsert(ctx context.Context, os entities.ServiceOrder) (entities.ServiceOrder, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	for i := range orders {
		if orders[i].ID == os.ID {
			// Existing order: full-record overwrite, number preserved.
			os.OrderNumber = orders[i].OrderNumber
			orders[i] = os
			if err := writeCollection(ctx, r.store, CollectionOrders, orders); err != nil {
				return entities.ServiceOrder{}, err
			}
			return os, nil
		}
	}

	os.OrderNumber = nextOrderNumber(orders)
	orders = append(orders, os)
	if err := writeCollection(ctx, r.store, CollectionOrders, orders); err != nil {
		return entities.ServiceOrder{}, err
	}
	return os, nil
}

func nextOrderNumber(orders []entities.ServiceOrder) int {
	if len(orders) == 0 {
		return firstOrderNumber
	}
	max := 0
	for _, os := range orders {
		if os.OrderNumber > max {
			max = os.OrderNumber
		}
	}
	return max + 1
}

func (r *ServiceOrderRepository) ReplaceAll(ctx context.Context, orders []entities.ServiceOrder) error {
	return writeCollection(ctx, r.store, CollectionOrders, orders)
}
