package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"os_pro/internal/domain/entities"
	"os_pro/internal/domain/ledger"
	"os_pro/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("service order not found")
	ErrInvalidOrderID     = errors.New("invalid service order id")
	ErrMissingCustomer    = errors.New("order has no customer selected")
	ErrUnknownCustomer    = errors.New("order customer does not exist")
	ErrNoLineItems        = errors.New("order has no line items")
	ErrInvalidQuantity    = errors.New("line item quantity must be positive")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// ChangedOrders is the logical collection name reported to change
// listeners; the sibling constants below follow the same scheme.
const (
	ChangedOrders    = "service_orders"
	ChangedCustomers = "customers"
	ChangedItems     = "items"
	ChangedCompany   = "company"
)

// IOrderUseCase exposes the service-order lifecycle.
type IOrderUseCase interface {
	Save(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
}

type OrderUseCase struct {
	orders    interfaces.IServiceOrderRepository
	customers interfaces.ICustomerRepository
	items     interfaces.ICatalogItemRepository
	listener  interfaces.IChangeListener
	now       func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IServiceOrderRepository, customers interfaces.ICustomerRepository, items interfaces.ICatalogItemRepository, listener interfaces.IChangeListener) *OrderUseCase {
	if listener == nil {
		listener = interfaces.NoopChangeListener{}
	}
	return &OrderUseCase{
		orders:    orders,
		customers: customers,
		items:     items,
		listener:  listener,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Save validates and commits a composed order.
//
// Line-item names and unit prices are never taken from the caller: a
// line already on the persisted order keeps the snapshot captured when
// it was first added, and a new line snapshots the current catalog
// price. The total is always recomputed from the resolved lines.
// createdAt is stamped only on first save, updatedAt on every save.
// Order numbering is delegated to the repository upsert. Validation
// failures happen before any write.
func (u *OrderUseCase) Save(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error) {
	draft.ID = strings.TrimSpace(draft.ID)
	draft.CustomerID = strings.TrimSpace(draft.CustomerID)

	if draft.Status == "" {
		draft.Status = entities.OrderStatusOpen
	}
	if !draft.Status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}
	if draft.CustomerID == "" {
		return entities.ServiceOrder{}, ErrMissingCustomer
	}
	if len(draft.Items) == 0 {
		return entities.ServiceOrder{}, ErrNoLineItems
	}
	for _, li := range draft.Items {
		if li.Quantity < 1 {
			return entities.ServiceOrder{}, ErrInvalidQuantity
		}
	}

	customer, err := u.customers.GetByID(ctx, draft.CustomerID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if customer.ID == "" {
		return entities.ServiceOrder{}, ErrUnknownCustomer
	}
	draft.CustomerName = customer.Name

	var existing entities.ServiceOrder
	if draft.ID != "" {
		existing, err = u.orders.GetByID(ctx, draft.ID)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
	}

	catalog, err := u.items.GetAll(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	draft.Items = resolveLines(draft.Items, existing.Items, catalog)
	if len(draft.Items) == 0 {
		return entities.ServiceOrder{}, ErrNoLineItems
	}

	draft.Items = ledger.Normalize(draft.Items)
	draft.TotalAmount = ledger.ComputeTotal(draft.Items)

	now := u.now()
	draft.UpdatedAt = now

	if draft.ID == "" {
		draft.ID = uuid.NewString()
		draft.CreatedAt = now
	} else if existing.ID != "" {
		draft.CreatedAt = existing.CreatedAt
	} else if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}

	saved, err := u.orders.Upsert(ctx, draft)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	u.listener.DataChanged(ChangedOrders)
	return saved, nil
}

// resolveLines materializes the name and unit price of every incoming
// line. A line already present on the persisted order keeps the
// snapshot captured when it was first added, regardless of later
// catalog price changes. A new line snapshots the current catalog
// price; when its id no longer resolves the line is silently dropped
// rather than trusted with wire-supplied values.
func resolveLines(incoming, persisted []entities.OrderLineItem, catalog []entities.CatalogItem) []entities.OrderLineItem {
	out := make([]entities.OrderLineItem, 0, len(incoming))
	for _, li := range incoming {
		if prev, ok := findLine(persisted, li.ItemID); ok {
			li.Name = prev.Name
			li.UnitPrice = prev.UnitPrice
			out = append(out, li)
			continue
		}
		snapshot, ok := ledger.Resolve(catalog, li.ItemID)
		if !ok {
			continue
		}
		li.Name = snapshot.Name
		li.UnitPrice = snapshot.UnitPrice
		out = append(out, li)
	}
	return out
}

func findLine(items []entities.OrderLineItem, itemID string) (entities.OrderLineItem, bool) {
	for _, li := range items {
		if li.ItemID == itemID {
			return li, true
		}
	}
	return entities.OrderLineItem{}, false
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	os, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if os.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return os, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.orders.GetAll(ctx)
}
